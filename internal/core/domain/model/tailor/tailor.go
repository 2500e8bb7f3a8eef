// Package tailor contains the Tailor aggregate: the contended worker resource
// whose weekly workload is arbitrated during order production.
package tailor

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

// ErrTailorIsNotConstructed is returned when a Tailor instance was not created
// through NewTailor or RestoreTailor.
var ErrTailorIsNotConstructed = errors.New("Tailor must be created via NewTailor constructor")

// DefaultWeeklyCapacity is the default number of orders a tailor can take per week.
const DefaultWeeklyCapacity = 40

// Tailor is an aggregate root for one tailor's identity, skills and weekly
// workload.
//
// Invariants:
//   - currentWorkload is never negative
//   - isAvailable is recomputed as currentWorkload < maxWeeklyCapacity on
//     every workload mutation; it is derived state, never set directly
//
// Workload mutations happen under a storage row lock held by the enclosing
// transaction; the aggregate itself only guards the arithmetic invariants.
type Tailor struct {
	id                kernel.UUID
	name              string
	specialties       []Specialty
	currentWorkload   int
	maxWeeklyCapacity int
	isAvailable       bool

	guard guard.ConstructorGuard
}

// NewTailor creates a tailor with zero workload.
// At least one specialty is required and capacity must be positive.
func NewTailor(id kernel.UUID, name string, specialties []Specialty, maxWeeklyCapacity int) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSpecialties(specialties),
		t.setMaxWeeklyCapacity(maxWeeklyCapacity),
	); err != nil {
		return nil, err
	}

	t.currentWorkload = 0
	t.isAvailable = true
	return t, nil
}

// RestoreTailor reconstructs a tailor from persistence.
// Availability is re-derived from workload and capacity rather than trusted
// from storage, so the invariant holds even if the stored flag drifted.
func RestoreTailor(
	id kernel.UUID,
	name string,
	specialties []Specialty,
	currentWorkload, maxWeeklyCapacity int,
) (*Tailor, error) {
	t := &Tailor{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setSpecialties(specialties),
		t.setMaxWeeklyCapacity(maxWeeklyCapacity),
	); err != nil {
		return nil, err
	}

	if currentWorkload < 0 {
		return nil, errs.NewValueIsOutOfRangeError("currentWorkload", currentWorkload, 0, maxWeeklyCapacity)
	}

	t.currentWorkload = currentWorkload
	t.recomputeAvailability()
	return t, nil
}

// Validate ensures the Tailor was properly constructed.
func (t *Tailor) Validate() error {
	if t == nil {
		return ErrTailorIsNotConstructed
	}
	return t.guard.Validate(ErrTailorIsNotConstructed)
}

// IsEqual compares two tailors by their unique identifiers.
func (t *Tailor) IsEqual(other *Tailor) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ApplyWorkloadDelta is the single workload mutator: it applies the delta and
// recomputes availability. A delta that would drive the workload negative is
// rejected and leaves the tailor unchanged.
func (t *Tailor) ApplyWorkloadDelta(delta int) error {
	next := t.currentWorkload + delta
	if next < 0 {
		return errs.NewValueIsOutOfRangeError("currentWorkload", next, 0, t.maxWeeklyCapacity)
	}

	t.currentWorkload = next
	t.recomputeAvailability()
	return nil
}

// ResetWorkload clears the weekly workload and restores availability.
func (t *Tailor) ResetWorkload() {
	t.currentWorkload = 0
	t.isAvailable = true
}

// CanTakeOrder reports whether the tailor can accept one more order.
func (t *Tailor) CanTakeOrder() bool {
	return t.isAvailable && t.currentWorkload < t.maxWeeklyCapacity
}

// HasSpecialties reports whether the tailor's specialty set covers every
// required tag. An empty requirement is always covered.
func (t *Tailor) HasSpecialties(required []Specialty) bool {
	owned := make(map[Specialty]bool, len(t.specialties))
	for _, s := range t.specialties {
		owned[s] = true
	}
	for _, s := range required {
		if !owned[s] {
			return false
		}
	}
	return true
}

// ID returns the tailor's unique identifier.
func (t *Tailor) ID() kernel.UUID {
	return t.id
}

// Name returns the tailor's name.
func (t *Tailor) Name() string {
	return t.name
}

// Specialties returns the skill tags. The slice must be treated as read-only.
func (t *Tailor) Specialties() []Specialty {
	return t.specialties
}

// CurrentWorkload returns the number of currently assigned orders.
func (t *Tailor) CurrentWorkload() int {
	return t.currentWorkload
}

// MaxWeeklyCapacity returns the weekly order capacity.
func (t *Tailor) MaxWeeklyCapacity() int {
	return t.maxWeeklyCapacity
}

// IsAvailable reports the derived availability flag.
func (t *Tailor) IsAvailable() bool {
	return t.isAvailable
}

func (t *Tailor) recomputeAvailability() {
	t.isAvailable = t.currentWorkload < t.maxWeeklyCapacity
}

func (t *Tailor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tailor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Tailor) setSpecialties(specialties []Specialty) error {
	if len(specialties) == 0 {
		return errs.NewValueIsRequiredError("specialties")
	}
	for _, s := range specialties {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	t.specialties = specialties
	return nil
}

func (t *Tailor) setMaxWeeklyCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidError("maxWeeklyCapacity")
	}
	t.maxWeeklyCapacity = capacity
	return nil
}
