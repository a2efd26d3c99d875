package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMenuNotFound          = errors.New("menu not found")
	ErrItemNotFound          = errors.New("menu item not found")
	ErrItemAlreadyExists     = errors.New("menu item already exists on this menu")
	ErrJobNotFound           = errors.New("import job not found")
	ErrUnsupportedFormat     = errors.New("unsupported document format")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrEmptyDocument         = errors.New("document contains no readable records")
	ErrInvalidItem           = errors.New("item rejected by validation")
	ErrRepositoryUnavailable = errors.New("menu repository unavailable")
)

// FormatError is raised by a format reader when bytes cannot be decoded as
// the declared format. It is fatal for the whole document: no partial parse
// result is produced.
type FormatError struct {
	Format MenuFormat
	Cause  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot read %s document: %v", e.Format, e.Cause)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}

// NewFormatError wraps a decode failure for the given format.
func NewFormatError(format MenuFormat, cause error) *FormatError {
	return &FormatError{Format: format, Cause: cause}
}

// InvalidPlanError rejects a resolution plan in full at commit time:
// an unresolved manual action, a duplicate or out-of-range candidate index,
// or an update entry without a target item. No partial application happens.
type InvalidPlanError struct {
	Reason string
}

func (e *InvalidPlanError) Error() string {
	return fmt.Sprintf("invalid resolution plan: %s", e.Reason)
}

// NewInvalidPlanError creates an InvalidPlanError with a formatted reason.
func NewInvalidPlanError(format string, args ...interface{}) *InvalidPlanError {
	return &InvalidPlanError{Reason: fmt.Sprintf(format, args...)}
}
