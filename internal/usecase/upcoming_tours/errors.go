package upcoming_tours

import "errors"

var (
	// ErrInvalidInput is returned for a malformed count or date
	ErrInvalidInput = errors.New("upcoming_tours: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("upcoming_tours: internal error")
)
