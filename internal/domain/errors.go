package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInsufficientStock indicates a requested quantity exceeds available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ValidationError marks input the caller can correct and resubmit.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Invalid builds a ValidationError from a plain message.
func Invalid(msg string) error { return ValidationError(msg) }
