package media

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or invalid form field. It is always
// raised before any storage or database call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// IsValidationError checks if the error is a form validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Custom media service errors
var (
	// ErrItemNotFound indicates the requested media item does not exist
	ErrItemNotFound = errors.New("media item not found")

	// ErrInvalidCategory indicates an unknown category filter value
	ErrInvalidCategory = errors.New("unknown category")
)

// IsItemNotFound checks if the error is a media item not found error
func IsItemNotFound(err error) bool {
	return errors.Is(err, ErrItemNotFound)
}
