package usecase

import (
	"errors"
	"fmt"

	"hireboard/internal/domain/authz"
	"hireboard/internal/domain/moderation"
)

// The error taxonomy every procedure maps its outcome into. Handlers translate
// these to HTTP statuses; nothing else crosses the delivery boundary.
var (
	ErrUnauthenticated    = authz.ErrUnauthenticated
	ErrForbidden          = authz.ErrForbidden
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTransition  = moderation.ErrInvalidTransition
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Specific validation failures, each still matching ErrInvalidInput.
var (
	ErrResumeExists   = fmt.Errorf("%w: resume already exists", ErrInvalidInput)
	ErrResumeRequired = fmt.Errorf("%w: create a resume first", ErrInvalidInput)
	ErrAlreadyApplied = fmt.Errorf("%w: already applied to this job", ErrInvalidInput)
	ErrSalaryRange    = fmt.Errorf("%w: salary minimum exceeds maximum", ErrInvalidInput)
)

// storageErr wraps an unexpected repository failure. Validation and guard
// errors pass through untouched.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
