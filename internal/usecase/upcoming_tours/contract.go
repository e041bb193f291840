package upcoming_tours

import (
	"context"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// TourDateRepository is the per-date capacity storage interface
type TourDateRepository interface {
	GetByDate(ctx context.Context, date domain.DateString) (*domain.TourDate, error)
	ListFrom(ctx context.Context, from domain.DateString) ([]*domain.TourDate, error)
}

// SettingsRepository is the global settings storage interface
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
