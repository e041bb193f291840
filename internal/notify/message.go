package notify

import (
	"github.com/google/uuid"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// BookingMessage is the queue envelope for a created booking.
type BookingMessage struct {
	ID             string  `json:"id"`
	BookingRef     string  `json:"bookingRef"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	TourDate       string  `json:"tourDate"`
	TourDateHebrew string  `json:"tourDateHebrew"`
	Participants   int     `json:"participants"`
	TotalPrice     float64 `json:"totalPrice"`
	Notes          *string `json:"notes,omitempty"`
}

// NewBookingMessage builds the envelope for a booking, with a fresh message
// ID for tracing.
func NewBookingMessage(b *domain.Booking) BookingMessage {
	return BookingMessage{
		ID:             uuid.NewString(),
		BookingRef:     b.BookingRef,
		Name:           b.Name,
		Phone:          b.Phone,
		Email:          b.Email,
		TourDate:       string(b.TourDate),
		TourDateHebrew: domain.FormatDateHebrew(b.TourDate),
		Participants:   b.Participants,
		TotalPrice:     b.TotalPrice,
		Notes:          b.Notes,
	}
}

// Logger is the logging interface used across the notify package
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
