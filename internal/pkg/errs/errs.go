package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrObjectNotFound           = errors.New("object not found")
	ErrValueIsInvalid           = errors.New("value is invalid")
	ErrValueIsOutOfRange        = errors.New("value is out of range")
	ErrValueIsRequired          = errors.New("value is required")
	ErrConcurrentUpdateConflict = errors.New("concurrent update conflict")
	ErrReferenceNotFound        = errors.New("referenced resource not found")
	ErrDuplicateKey             = errors.New("duplicate key")
)

// sanitize flattens multi-line values so error messages stay single-line.
func sanitize(v interface{}) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        interface{}
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id interface{}) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id interface{}, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     interface{}
	Min       interface{}
	Max       interface{}
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue interface{}) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue interface{}, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitize(fmt.Sprint(e.Value)), e.ParamName, e.Min, e.Max, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(fmt.Sprint(e.Value)), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConcurrentUpdateConflictError indicates that another transaction won a race on the
// same row: a failed compare-and-swap, a serialization failure, or a lock-wait timeout.
// Callers may retry the same call unchanged.
type ConcurrentUpdateConflictError struct {
	Resource string
	Cause    error
}

// NewConcurrentUpdateConflictError creates a ConcurrentUpdateConflictError without an underlying cause.
func NewConcurrentUpdateConflictError(resource string) *ConcurrentUpdateConflictError {
	return &ConcurrentUpdateConflictError{Resource: resource}
}

// NewConcurrentUpdateConflictErrorWithCause creates a ConcurrentUpdateConflictError wrapping an underlying cause.
func NewConcurrentUpdateConflictErrorWithCause(resource string, cause error) *ConcurrentUpdateConflictError {
	return &ConcurrentUpdateConflictError{Resource: resource, Cause: cause}
}

func (e *ConcurrentUpdateConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConcurrentUpdateConflict, e.Resource, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConcurrentUpdateConflict, e.Resource)
}

func (e *ConcurrentUpdateConflictError) Unwrap() error {
	return ErrConcurrentUpdateConflict
}

// DuplicateKeyError indicates a unique-constraint violation: the row being
// written collides with an existing key. Unlike ConcurrentUpdateConflictError
// this is permanent; retrying the same call unchanged can never succeed.
type DuplicateKeyError struct {
	Resource string
	Cause    error
}

// NewDuplicateKeyError creates a DuplicateKeyError without an underlying cause.
func NewDuplicateKeyError(resource string) *DuplicateKeyError {
	return &DuplicateKeyError{Resource: resource}
}

// NewDuplicateKeyErrorWithCause creates a DuplicateKeyError wrapping an underlying cause.
func NewDuplicateKeyErrorWithCause(resource string, cause error) *DuplicateKeyError {
	return &DuplicateKeyError{Resource: resource, Cause: cause}
}

func (e *DuplicateKeyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrDuplicateKey, e.Resource, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateKey, e.Resource)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// ReferenceNotFoundError indicates a foreign-key violation translated into domain terms:
// the row being written referenced an entity that does not exist.
type ReferenceNotFoundError struct {
	Reference string
	Cause     error
}

// NewReferenceNotFoundError creates a ReferenceNotFoundError without an underlying cause.
func NewReferenceNotFoundError(reference string) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Reference: reference}
}

// NewReferenceNotFoundErrorWithCause creates a ReferenceNotFoundError wrapping an underlying cause.
func NewReferenceNotFoundErrorWithCause(reference string, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Reference: reference, Cause: cause}
}

func (e *ReferenceNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrReferenceNotFound, e.Reference, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrReferenceNotFound, e.Reference)
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}
