package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingParameter indicates the <id> argument was not given.
	ErrMissingParameter = errors.New("missing parameter id")

	// ErrNotANumber indicates the <id> argument has no leading integer.
	ErrNotANumber = errors.New("the id parameter is not a number")

	ErrNotFound = errors.New("quiz not found")

	// ErrAborted indicates the user interrupted a prompt or closed the input.
	ErrAborted = errors.New("input aborted")

	// ErrBusy indicates a command was dispatched while another workflow was in flight.
	ErrBusy = errors.New("another command is still running")
)

type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("there is no quiz with id=%d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// ValidationError is returned by repositories when create or update
// receives values that violate the quiz constraints.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "invalid quiz: " + strings.Join(parts, "; ")
}
