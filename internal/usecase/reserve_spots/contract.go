package reserve_spots

import (
	"context"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// BookingRepository is the bookings storage interface
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TourDateRepository is the per-date capacity storage interface
type TourDateRepository interface {
	GetByDate(ctx context.Context, date domain.DateString) (*domain.TourDate, error)
	AddRegistrations(ctx context.Context, date domain.DateString, delta int) (*domain.TourDate, error)
}

// SettingsRepository is the global settings storage interface
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
	SetFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag) error
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier dispatches booking notifications, best-effort
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking)
}

// Metrics counts reservation outcomes
type Metrics interface {
	IncReservation(outcome string)
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

// NopMetrics is used when metrics are disabled
type NopMetrics struct{}

// IncReservation does nothing
func (NopMetrics) IncReservation(string) {}
