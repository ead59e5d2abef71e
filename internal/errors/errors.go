// Package errors is the one import for error handling: matching comes from
// the standard library, wrapping from pkg/errors so wrapped errors carry a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

// Find returns the first error in err's chain of type T.
func Find[T any](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with message and a stack trace. Wrap(nil, ...) is nil.
func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Errorf is fmt.Errorf with a stack trace. It does not understand %w.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }
