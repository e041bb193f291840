package update_booking_status

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/bookings/models"
)

// BookingsService applies admin status transitions
type BookingsService interface {
	UpdateStatus(ctx context.Context, ref string, next domain.BookingStatus) (*models.BookingInfo, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
