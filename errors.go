package structdiff

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument classifies malformed calls: mismatched container
	// kinds, identifier sequences of the wrong length, or identifiers that
	// are not unique within one side.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch classifies record fields whose two sides hold values
	// that support neither numeric subtraction nor a recursive diff.
	ErrTypeMismatch = errors.New("type mismatch")
)

// KindMismatchError indicates Diff was called with two containers of
// different kinds. It matches ErrInvalidArgument via errors.Is.
type KindMismatchError struct {
	A, B Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("container kind mismatch: %s vs %s", e.A, e.B)
}

func (e *KindMismatchError) Unwrap() error { return ErrInvalidArgument }

// IdentifierError indicates a malformed identifier sequence: a length that
// does not match its container, or a duplicate within one side. It matches
// ErrInvalidArgument via errors.Is; a duplicate also matches
// align.ErrDuplicateIdentifier.
type IdentifierError struct {
	// Side names the offending dimension where known ("old", "new",
	// "row", "column", "field"). May be empty.
	Side   string
	Reason string
	cause  error
}

func (e *IdentifierError) Error() string {
	side := e.Side
	if side != "" {
		side += " "
	}
	if e.cause != nil {
		return fmt.Sprintf("%sidentifiers: %s: %v", side, e.Reason, e.cause)
	}
	return fmt.Sprintf("%sidentifiers: %s", side, e.Reason)
}

func (e *IdentifierError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidArgument, e.cause}
	}
	return []error{ErrInvalidArgument}
}

// TypeMismatchError reports a record field whose two sides cannot be
// diffed against each other. It matches ErrTypeMismatch via errors.Is.
type TypeMismatchError struct {
	Field   string
	OldType string
	NewType string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: cannot diff %s against %s", e.Field, e.OldType, e.NewType)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
