// Package errors lets infra and repository code import one errors package:
// matching comes from the standard library, construction and wrapping from
// pkg/errors so failures carry a stack trace into the logs.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// New records a stack trace at the call site.
func New(text string) error {
	return pkgerrors.New(text)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack returns nil for a nil err.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
