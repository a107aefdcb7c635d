package domain

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned from write paths when no document store
// is configured. Read paths degrade to empty results instead.
var ErrNotInitialized = errors.New("document store not initialized")

// DuplicateError is raised by create operations when a case-insensitive
// trimmed match already exists. Message is Marathi and shown to the admin
// verbatim.
type DuplicateError struct {
	Kind     string
	Existing string
	Message  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %q", e.Message, e.Existing)
}

// IsDuplicate reports whether err is a DuplicateError.
func IsDuplicate(err error) bool {
	var d *DuplicateError
	return errors.As(err, &d)
}
