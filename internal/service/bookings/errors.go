package bookings

import "errors"

var (
	// ErrInvalidInput is returned for a malformed filter or status
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrBookingNotFound is returned when no booking matches the reference
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidTransition is returned for a disallowed status change
	ErrInvalidTransition = errors.New("bookings.service: invalid status transition")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("bookings.service: internal error")
)
