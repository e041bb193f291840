package upcoming_tours

import (
	"context"

	upcomingTours "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"
)

// UpcomingToursUseCase is the calendar usecase interface
type UpcomingToursUseCase interface {
	Execute(ctx context.Context, req *upcomingTours.Request) (*upcomingTours.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
