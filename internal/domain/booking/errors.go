package booking

import "errors"

var (
	ErrNotFound     = errors.New("booking not found")
	ErrInvalidPrice = errors.New("price contains no digits")
)
