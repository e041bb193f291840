package tourdate

import "errors"

var (
	// ErrTourDateNotFound is returned when no row exists for the date
	ErrTourDateNotFound = errors.New("tourdate.repository: tour date not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("tourdate.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("tourdate.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("tourdate.repository: failed to scan row")
)
