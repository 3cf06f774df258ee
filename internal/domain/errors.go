package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy for the aggregate layer.
//
// ErrInvalidArgument covers bad external input caught at a validation
// boundary. ErrIllegalState marks a corrupted aggregate observed internally
// (a bug, not bad input). ErrDuplicateID is the storage-engine uniqueness
// violation that the service layer normalizes to a boolean add result.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")
	ErrDuplicateID     = errors.New("duplicate id")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func illegalf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrIllegalState)
}
