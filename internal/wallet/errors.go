package wallet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInsufficientBalance means a withdrawal exceeds the source balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrBelowMinimum means a withdrawal is under the minimum amount.
	ErrBelowMinimum = errors.New("below minimum withdrawal")
)

// ValidationError describes one rejected form field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors collects every problem found in a form, in field order.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// Field returns the message recorded for field, if any.
func (v ValidationErrors) Field(field string) (string, bool) {
	for _, e := range v {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

func (v *ValidationErrors) add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

func (v *ValidationErrors) addErr(field, message string, err error) {
	*v = append(*v, ValidationError{Field: field, Message: message, Err: err})
}

// err returns nil for an empty set so callers can return it directly.
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
