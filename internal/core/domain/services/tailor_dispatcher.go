package services

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
)

// ErrNoAvailableTailor is returned when no candidate can take the order:
// either no tailor has free capacity, or none of those that do covers the
// required specialty tags.
var ErrNoAvailableTailor = errors.New("no available tailor with matching specialties found")

// TailorDispatcher is a domain service that selects the tailor for an order
// entering production.
//
// Candidates are expected to arrive ordered ascending by current workload (the
// repository query guarantees this). Selection walks that order and takes the
// FIRST candidate whose specialty set covers the required tags. This is
// ordering-then-filtering on purpose: a higher-workload tailor with the right
// specialty wins over an idle tailor without it, and among qualified tailors
// the least loaded one wins.
//
// The dispatcher is pure selection. Locking the chosen row, re-verifying
// availability under the lock, and incrementing the workload are the
// coordinator's responsibility inside the enclosing transaction.
type TailorDispatcher struct{}

// NewTailorDispatcher creates a TailorDispatcher instance.
func NewTailorDispatcher() TailorDispatcher {
	return TailorDispatcher{}
}

// SelectFor picks the tailor for the given specialty requirements from
// workload-ordered candidates. Returns ErrNoAvailableTailor if no candidate
// both has free capacity and covers every required tag.
func (d TailorDispatcher) SelectFor(
	required []tailor.Specialty,
	candidates []*tailor.Tailor,
) (*tailor.Tailor, error) {
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.CanTakeOrder() {
			continue
		}

		if candidate.HasSpecialties(required) {
			return candidate, nil
		}
	}

	return nil, ErrNoAvailableTailor
}
