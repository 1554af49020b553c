package booking

import "errors"

var (
	ErrInvalidDates = errors.New("invalid booking dates")
	ErrNotFound     = errors.New("booking not found")
)
