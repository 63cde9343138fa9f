package attachmentid

import (
	"errors"
	"fmt"
)

// ExpectedFormats describes the accepted serialized shapes.
const ExpectedFormats = "<domain>/<id> or <id>"

var (
	// ErrMissingInput is returned when there is no serialized ID to decode.
	ErrMissingInput = errors.New("attachment ID input is missing")

	// ErrMissingID is returned when the local id component is absent.
	ErrMissingID = errors.New("attachment ID local id is missing")

	// ErrInvalidComponent matches any *InvalidComponentError with errors.Is.
	ErrInvalidComponent = errors.New("invalid attachment ID component")

	// ErrMalformed matches any *MalformedError with errors.Is.
	ErrMalformed = errors.New("malformed attachment ID")
)

// Component names a part of an attachment ID.
type Component string

const (
	ComponentDomain Component = "domain"
	ComponentID     Component = "id"
)

// InvalidComponentError is returned when a domain or local id contains the
// separator.
type InvalidComponentError struct {
	Component Component
	Value     string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("attachment ID %s component cannot contain the %q separator: %s",
		e.Component, Separator, e.Value)
}

func (e *InvalidComponentError) Is(target error) bool {
	return target == ErrInvalidComponent
}

// MalformedError is returned when a serialized ID has no parts or more than
// two parts.
type MalformedError struct {
	Input string
	Hint  string
}

func newMalformedError(input string) *MalformedError {
	return &MalformedError{Input: input, Hint: ExpectedFormats}
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("unable to parse attachment ID %q: expected %s", e.Input, e.Hint)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}
