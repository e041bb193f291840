package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the reference
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateRef is returned when the booking reference already exists
	ErrDuplicateRef = errors.New("booking.repository: duplicate booking reference")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
