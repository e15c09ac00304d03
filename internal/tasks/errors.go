package tasks

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTask matches every InvalidTaskError through errors.Is.
	ErrInvalidTask = errors.New("invalid task")

	// ErrNotFound is returned by Repository.Update when the ID has no task.
	ErrNotFound = errors.New("task not found")
)

// InvalidTaskError reports a rejected field value on a task.
type InvalidTaskError struct {
	Field  string
	Reason string
}

func (e *InvalidTaskError) Error() string {
	return fmt.Sprintf("invalid task: %s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidTask) true.
func (e *InvalidTaskError) Is(target error) bool {
	return target == ErrInvalidTask
}

func invalid(field, reason string) error {
	return &InvalidTaskError{Field: field, Reason: reason}
}
