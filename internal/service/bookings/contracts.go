package bookings

import (
	"context"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// BookingRepository is the bookings storage interface
type BookingRepository interface {
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, ref string, status domain.BookingStatus) (*domain.Booking, error)
}

// TourDateRepository releases spots when a booking is cancelled
type TourDateRepository interface {
	ReleaseRegistrations(ctx context.Context, date domain.DateString, delta int) (*domain.TourDate, error)
}

// TransactionManager runs a function inside a serializable transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
