// Package pgerr maps low-level postgres failures onto the domain error
// taxonomy shared by all repository implementations.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

// SQLSTATE codes the repositories care about. Anything else passes through
// untouched and surfaces as an unexpected storage error.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
	serializationFail   = "40001"
	lockNotAvailable    = "55P03"
)

// Translate converts a postgres error into its domain counterpart.
// Foreign key violations become ReferenceNotFound; serialization failures and
// lock timeouts become ConcurrentUpdateConflict, which callers treat as
// retryable. Unique violations become DuplicateKey: the collision is
// permanent, so it must stay out of the retryable conflict class.
func Translate(err error, resource string) error {
	if err == nil {
		return nil
	}

	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return err
	}

	switch pgError.Code {
	case foreignKeyViolation:
		return errs.NewReferenceNotFoundErrorWithCause(resource, err)
	case uniqueViolation:
		return errs.NewDuplicateKeyErrorWithCause(resource, err)
	case serializationFail, lockNotAvailable:
		return errs.NewConcurrentUpdateConflictErrorWithCause(resource, err)
	default:
		return err
	}
}
