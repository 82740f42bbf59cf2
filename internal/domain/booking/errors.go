package booking

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("booking not found")

// ClosedDateError names the first closed calendar day that blocked a booking.
type ClosedDateError struct {
	Date string
}

func (e *ClosedDateError) Error() string {
	return fmt.Sprintf("%s 마감됨", e.Date)
}

func AsClosedDateError(err error) *ClosedDateError {
	var cde *ClosedDateError
	if errors.As(err, &cde) {
		return cde
	}
	return nil
}

// InputError accumulates per-field validation failures.
type InputError struct {
	fields map[string]string
}

func newInputError() *InputError {
	return &InputError{fields: make(map[string]string)}
}

func (e *InputError) add(field, msg string) { e.fields[field] = msg }

func (e *InputError) count() int { return len(e.fields) }

func (e *InputError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, m := range e.fields {
		msgs = append(msgs, m)
	}
	return strings.Join(msgs, "; ")
}

func (e *InputError) Fields() map[string]string { return e.fields }

func AsInputError(err error) *InputError {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie
	}
	return nil
}
