package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage matches every StorageError
	ErrStorage = errors.New("storage failure")
)

// StorageError reports a fault in the underlying database for a single operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage as a match so callers need not use errors.As.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
