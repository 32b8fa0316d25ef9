package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInputMissing means no file or payload was supplied where one is required.
	ErrInputMissing = errors.New("input file or payload required")

	// ErrSchemaAbsence means a required field was missing from the payload,
	// e.g. items is not an array.
	ErrSchemaAbsence = errors.New("items array required")
)

// MalformedValueError reports a numeric cell that could not be converted.
// It fails the whole batch: no rows from the request are persisted.
type MalformedValueError struct {
	Column string
	Value  string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("column %q: value %q is not numeric", e.Column, e.Value)
}

// StorageError wraps a failed bulk append. The batch is rejected as a whole.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
