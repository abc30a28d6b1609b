package payment

import "errors"

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTransactionMismatch = errors.New("transaction id does not match the initiated payment")
)
