package settings

import "errors"

var (
	// ErrInvalidInput is returned for out-of-range or malformed values
	ErrInvalidInput = errors.New("settings.service: invalid input data")

	// ErrDateNotEligible is returned when the date is not a tour day
	ErrDateNotEligible = errors.New("settings.service: date is not a tour day")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("settings.service: internal error")
)
