package booking

import "errors"

var (
	ErrEmptyCart       = errors.New("empty_cart")
	ErrBookingNotFound = errors.New("booking_not_found")
)
