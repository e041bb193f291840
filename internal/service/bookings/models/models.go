package models

import (
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// BookingInfo is one booking in the admin panel.
type BookingInfo struct {
	BookingRef     string
	Name           string
	Phone          string
	Email          string
	TourDate       domain.DateString
	TourDateHebrew string
	Participants   int
	PricePerPerson float64
	TotalPrice     float64
	PaymentMethod  domain.PaymentMethod
	HowDidYouHear  domain.ReferralSource
	Notes          *string
	Status         domain.BookingStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Stats are the admin panel summary counters. TotalRevenue sums confirmed
// bookings only.
type Stats struct {
	Total        int
	Pending      int
	Confirmed    int
	Cancelled    int
	TotalRevenue float64
}

// ListResponse is the filtered listing together with overall stats.
type ListResponse struct {
	Bookings []BookingInfo
	Stats    Stats
}

// FromDomain converts a domain booking to its panel representation.
func FromDomain(b *domain.Booking) BookingInfo {
	return BookingInfo{
		BookingRef:     b.BookingRef,
		Name:           b.Name,
		Phone:          b.Phone,
		Email:          b.Email,
		TourDate:       b.TourDate,
		TourDateHebrew: domain.FormatDateHebrew(b.TourDate),
		Participants:   b.Participants,
		PricePerPerson: b.PricePerPerson,
		TotalPrice:     b.TotalPrice,
		PaymentMethod:  b.PaymentMethod,
		HowDidYouHear:  b.HowDidYouHear,
		Notes:          b.Notes,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
