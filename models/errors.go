package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile       = errors.New("missing file")
	ErrMalformedRecord   = errors.New("malformed record")
	ErrUnknownWord       = errors.New("unknown word")
	ErrUnknownGender     = errors.New("unknown gender")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrAlreadyNormalized = errors.New("word data already normalized")
)

// RecordError identifies the input line that could not be ingested.
type RecordError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err.Error(), e.Text)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
