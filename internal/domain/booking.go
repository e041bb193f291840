package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true if the status is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a tour booking in the system. Bookings are never
// deleted; cancellation is a status transition.
type Booking struct {
	ID           int64
	BookingRef   string // public identifier, BK<epoch-millis>
	Name         string
	Phone        string
	Email        string
	DateOfBirth  DateString
	TourDate     DateString
	Participants int

	// Denormalized pricing captured at booking time
	PricePerPerson float64
	TotalPrice     float64

	PaymentMethod PaymentMethod
	HowDidYouHear ReferralSource
	Notes         *string

	Status BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies spots on its tour date.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanTransitionTo returns true if the status change is allowed. Cancelled is
// terminal; a confirmed booking may be sent back to pending or cancelled.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if !next.IsValid() || next == b.Status {
		return false
	}
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusPending || next == StatusCancelled
	}
	return false
}

// BookingsScope narrows a bookings listing by tour date relative to today.
type BookingsScope string

const (
	ScopeAll      BookingsScope = "all"
	ScopeUpcoming BookingsScope = "upcoming"
	ScopePast     BookingsScope = "past"
)

// IsValid returns true if the scope is one of the known listing scopes.
func (s BookingsScope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeUpcoming, ScopePast:
		return true
	}
	return false
}

// BookingsFilter is the admin bookings listing filter.
type BookingsFilter struct {
	Scope  BookingsScope  // Date scope relative to Today (required)
	Status *BookingStatus // Optional status filter
	Today  DateString     // Reference date for upcoming/past scopes
}
