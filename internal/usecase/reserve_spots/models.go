package reserve_spots

import (
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// Request is a booking submission from the public site.
type Request struct {
	Name          string
	Phone         string
	Email         string
	DateOfBirth   domain.DateString
	TourDate      domain.DateString
	Participants  int
	PaymentMethod domain.PaymentMethod
	HowDidYouHear domain.ReferralSource
	Notes         *string
}

// Response is the created booking as returned to the client.
type Response struct {
	BookingRef     string
	TourDate       domain.DateString
	Participants   int
	PricePerPerson float64
	TotalPrice     float64
	Status         string
	CreatedAt      time.Time
}
