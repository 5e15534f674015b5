package errors

import (
	"fmt"
	"strings"
)

// MultiError collects structured errors across an ordered batch of
// operations. Unlike fail-fast propagation, accumulation trades early exit
// for complete diagnostic coverage: a batch producer appends every failure
// and the caller decides success or failure via HasErrors.
//
// The sequence is append-only during an accumulation pass; errors are
// reported in the order they were appended. The zero value is not usable;
// construct with NewMultiError.
type MultiError struct {
	// Operation labels the batch this accumulator belongs to.
	Operation string

	errs []*Error
}

// NewMultiError creates an empty accumulator for the named operation.
func NewMultiError(operation string) *MultiError {
	return &MultiError{Operation: operation}
}

// Append adds errors to the accumulator in order. Nil entries are ignored.
func (m *MultiError) Append(errs ...*Error) {
	for _, e := range errs {
		if e != nil {
			m.errs = append(m.errs, e)
		}
	}
}

// HasErrors reports whether any error has been accumulated. It is true
// exactly when Len() > 0.
func (m *MultiError) HasErrors() bool {
	return len(m.errs) > 0
}

// Len returns the number of accumulated errors.
func (m *MultiError) Len() int {
	return len(m.errs)
}

// Errors returns a copy of the accumulated errors in append order.
// Mutating the returned slice does not affect the accumulator.
func (m *MultiError) Errors() []*Error {
	out := make([]*Error, len(m.errs))
	copy(out, m.errs)
	return out
}

// Error implements the error interface, joining the legacy projections of
// every accumulated error.
func (m *MultiError) Error() string {
	if len(m.errs) == 0 {
		return fmt.Sprintf("%s: no errors", m.Operation)
	}
	parts := make([]string, len(m.errs))
	for i, e := range m.errs {
		parts[i] = e.Error()
	}
	return fmt.Sprintf("%s: %d error(s): %s", m.Operation, len(m.errs), strings.Join(parts, "; "))
}

// Unwrap exposes the accumulated errors to errors.Is and errors.As, which
// traverse multi-error containers returned from Unwrap() []error.
func (m *MultiError) Unwrap() []error {
	out := make([]error, len(m.errs))
	for i, e := range m.errs {
		out[i] = e
	}
	return out
}

// ErrOrNil returns the accumulator as an error when it holds at least one
// entry, and nil otherwise. Use it to return from functions with an error
// result without leaking a typed nil.
func (m *MultiError) ErrOrNil() error {
	if m.HasErrors() {
		return m
	}
	return nil
}
