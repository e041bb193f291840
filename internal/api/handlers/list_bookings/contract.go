package list_bookings

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/bookings/models"
)

// BookingsService lists bookings for the admin panel
type BookingsService interface {
	List(ctx context.Context, scope domain.BookingsScope, status *domain.BookingStatus) (*models.ListResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
