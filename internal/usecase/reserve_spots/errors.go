package reserve_spots

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when the submission fails field validation
	ErrInvalidInput = errors.New("reserve_spots: invalid input data")

	// ErrDateNotEligible is returned when the date is not a tour day or is in the past
	ErrDateNotEligible = errors.New("reserve_spots: no tour on this date")

	// ErrTooLateToBook is returned for same-day bookings after the cutoff hour
	ErrTooLateToBook = errors.New("reserve_spots: too late to book for today")

	// ErrDateBlocked is returned when the admin has blocked the date
	ErrDateBlocked = errors.New("reserve_spots: date is blocked")

	// ErrDateSoldOut is returned when the date is marked sold out
	ErrDateSoldOut = errors.New("reserve_spots: date is sold out")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("reserve_spots: internal error")
)

// CapacityError is returned when the group does not fit into the remaining
// spots. It carries the actual remaining count so the caller can show it.
type CapacityError struct {
	Requested      int
	AvailableSpots int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("reserve_spots: not enough spots: requested %d, available %d",
		e.Requested, e.AvailableSpots)
}
