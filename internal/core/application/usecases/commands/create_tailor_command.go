package commands

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrCreateTailorCommandIsNotConstructed = errors.New(
	"CreateTailorCommand must be created via NewCreateTailorCommand constructor",
)

// CreateTailorCommand represents a request to register a new tailor.
// A non-positive capacity selects tailor.DefaultWeeklyCapacity.
type CreateTailorCommand struct { //nolint:recvcheck //using for validation
	tailorID          kernel.UUID
	name              string
	specialties       []tailor.Specialty
	maxWeeklyCapacity int

	guard guard.ConstructorGuard
}

// NewCreateTailorCommand creates a command to register a tailor.
// Requires a valid ID, a name and at least one known specialty.
func NewCreateTailorCommand(
	tailorID kernel.UUID,
	name string,
	specialties []tailor.Specialty,
	maxWeeklyCapacity int,
) (CreateTailorCommand, error) {
	if maxWeeklyCapacity <= 0 {
		maxWeeklyCapacity = tailor.DefaultWeeklyCapacity
	}

	cmd := CreateTailorCommand{
		maxWeeklyCapacity: maxWeeklyCapacity,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTailorID(tailorID),
		cmd.setName(name),
		cmd.setSpecialties(specialties),
	); err != nil {
		return CreateTailorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTailorCommand) Validate() error {
	return c.guard.Validate(ErrCreateTailorCommandIsNotConstructed)
}

// TailorID returns the unique identifier for the new tailor.
func (c CreateTailorCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// Name returns the tailor's name.
func (c CreateTailorCommand) Name() string {
	return c.name
}

// Specialties returns the skill tags.
func (c CreateTailorCommand) Specialties() []tailor.Specialty {
	return c.specialties
}

// MaxWeeklyCapacity returns the weekly order capacity.
func (c CreateTailorCommand) MaxWeeklyCapacity() int {
	return c.maxWeeklyCapacity
}

func (c *CreateTailorCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}

func (c *CreateTailorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateTailorCommand) setSpecialties(specialties []tailor.Specialty) error {
	if len(specialties) == 0 {
		return errs.NewValueIsRequiredError("specialties")
	}

	for _, s := range specialties {
		if err := s.Validate(); err != nil {
			return err
		}
	}

	c.specialties = specialties
	return nil
}
