package get_date_status

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	upcomingTours "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"
)

// DateStatusUseCase classifies one date
type DateStatusUseCase interface {
	ForDate(ctx context.Context, date domain.DateString) (*upcomingTours.DateAvailability, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
