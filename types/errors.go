package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode     = errors.New("fmode: invalid mode")
	ErrInvalidFileKind = errors.New("fmode: invalid file kind")
	ErrInvalidTriad    = errors.New("fmode: invalid permission triad")
	ErrInvalidSymbolic = errors.New("fmode: invalid symbolic mode")
)

// InvalidModeError reports a numeric mode whose zero-padded octal form is not
// exactly six digits long.
type InvalidModeError struct {
	Octal string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("%s: %s does not decompose to a 6-digit octal representation", ErrInvalidMode, e.Octal)
}

func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }
