package tailor

import "github.com/kossylee/fashionhive-backend/internal/pkg/errs"

// Specialty is a skill tag a tailor can hold. An order derives its required
// specialties from item customizations; a tailor only qualifies when their
// specialty set covers every required tag.
type Specialty string

const (
	Dresses      Specialty = "dresses"
	Suits        Specialty = "suits"
	Alterations  Specialty = "alterations"
	CustomDesign Specialty = "custom_design"
	Traditional  Specialty = "traditional"
)

func validSpecialties() map[Specialty]bool {
	return map[Specialty]bool{
		Dresses:      true,
		Suits:        true,
		Alterations:  true,
		CustomDesign: true,
		Traditional:  true,
	}
}

// Validate checks that the specialty is one of the defined skill tags.
func (s Specialty) Validate() error {
	if !validSpecialties()[s] {
		return errs.NewValueIsInvalidError("specialty")
	}
	return nil
}

// String returns the persisted representation of the specialty.
func (s Specialty) String() string {
	return string(s)
}

// SpecialtyFromString parses a persisted specialty value.
func SpecialtyFromString(raw string) (Specialty, error) {
	s := Specialty(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
