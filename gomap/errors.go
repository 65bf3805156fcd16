package gomap

import (
	"errors"
	"fmt"
)

// ErrNoMatchingFields reports that no field of the target shape overlapped
// the document's top-level keys.
var ErrNoMatchingFields = errors.New("no matching fields")

// PopulateError represents a failure to populate a target shape.
type PopulateError struct {
	Shape   string // target shape name, e.g. "gomap.Person"
	Message string
	Err     error
}

func (e *PopulateError) Error() string {
	if e.Shape != "" {
		return fmt.Sprintf("populate error for %s: %s", e.Shape, e.Message)
	}
	return fmt.Sprintf("populate error: %s", e.Message)
}

func (e *PopulateError) Unwrap() error {
	return e.Err
}
