package store

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an explicit lookup of a nonexistent id. Deletes
// and toggles treat a missing id as a silent no-op instead.
var ErrNotFound = errors.New("not found")

// ValidationError reports an empty required field. Recoverable: the
// caller re-prompts.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}
