package create_booking

import (
	"context"

	reserveSpots "github.com/mirirosen/chilik-rosenberg/internal/usecase/reserve_spots"
)

// ReserveSpotsUseCase is the reservation writer interface
type ReserveSpotsUseCase interface {
	Execute(ctx context.Context, req *reserveSpots.Request) (*reserveSpots.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
