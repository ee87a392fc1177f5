package apperrors

import "errors"

// Failure taxonomy. Every error surfaced by the record services unwraps to
// exactly one of the base errors below.
var (
	// ErrValidationFailed marks malformed or missing input. Detected before
	// any store access.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDuplicateKey marks a natural-key or composite-key collision, either
	// from the service-level pre-check or the store's unique constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferentialViolation marks an enrollment referencing a student or
	// course that does not exist.
	ErrReferentialViolation = errors.New("referential violation")

	// ErrNotFound marks an operation targeting an id with no record.
	ErrNotFound = errors.New("resource not found")

	// ErrPersistence marks a store failure not otherwise classified. The
	// underlying driver error is wrapped, never swallowed.
	ErrPersistence = errors.New("persistence failure")
)

// Entity-specific not-found errors. All unwrap to ErrNotFound.
var (
	ErrStudentNotFound    = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrCourseNotFound     = &CustomError{Err: ErrNotFound, Message: "course not found"}
	ErrEnrollmentNotFound = &CustomError{Err: ErrNotFound, Message: "enrollment not found"}
)

// Duplicate natural-key errors. All unwrap to ErrDuplicateKey.
var (
	ErrRegistrationNumberExists = &CustomError{Err: ErrDuplicateKey, Message: "registration number already exists"}
	ErrCourseCodeExists         = &CustomError{Err: ErrDuplicateKey, Message: "course code already exists"}
	ErrEnrollmentExists         = &CustomError{Err: ErrDuplicateKey, Message: "student is already enrolled in this course for this term"}
)

// CustomError carries a message on top of a base taxonomy error.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates an invalid-argument error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewReferentialViolationError creates a referential-violation error naming
// the missing reference.
func NewReferentialViolationError(message string) error {
	return &CustomError{Err: ErrReferentialViolation, Message: message}
}

// PersistenceError classifies a store failure while keeping the driver
// error reachable through errors.Is/As.
type PersistenceError struct {
	Cause error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Cause.Error()
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Cause}
}

// NewPersistenceError wraps a store failure without classifying it further.
func NewPersistenceError(cause error) error {
	return &PersistenceError{Cause: cause}
}
