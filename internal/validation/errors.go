package validation

import "errors"

var (
	ErrInvalidWindow    = errors.New("invalid window format")
	ErrWindowOutOfRange = errors.New("window out of range")
	ErrEmptyComponent   = errors.New("component is required")
	ErrComponentTooLong = errors.New("component exceeds maximum length")
	ErrInvalidComponent = errors.New("component contains invalid characters")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
	ErrLimitTooLarge    = errors.New("limit exceeds maximum")
	ErrUnknownOrder     = errors.New("by must be frequent or recent")
)
