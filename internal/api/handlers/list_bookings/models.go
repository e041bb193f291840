package list_bookings

import (
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/service/bookings/models"
)

// BookingResponse is one booking in the admin listing.
type BookingResponse struct {
	BookingRef     string    `json:"bookingRef"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	TourDate       string    `json:"tourDate"`
	TourDateHebrew string    `json:"tourDateHebrew"`
	Participants   int       `json:"participants"`
	PricePerPerson float64   `json:"pricePerPerson"`
	TotalPrice     float64   `json:"totalPrice"`
	PaymentMethod  string    `json:"paymentMethod"`
	HowDidYouHear  string    `json:"howDidYouHear"`
	Notes          *string   `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// StatsResponse are the panel summary counters.
type StatsResponse struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ListResponse is the admin bookings payload.
type ListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Stats    StatsResponse     `json:"stats"`
}

// FromServiceResponse converts the service response to the HTTP payload.
func FromServiceResponse(resp *models.ListResponse) *ListResponse {
	bookings := make([]BookingResponse, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, FromBookingInfo(b))
	}
	return &ListResponse{
		Bookings: bookings,
		Stats: StatsResponse{
			Total:        resp.Stats.Total,
			Pending:      resp.Stats.Pending,
			Confirmed:    resp.Stats.Confirmed,
			Cancelled:    resp.Stats.Cancelled,
			TotalRevenue: resp.Stats.TotalRevenue,
		},
	}
}

// FromBookingInfo converts one booking to its HTTP representation.
func FromBookingInfo(b models.BookingInfo) BookingResponse {
	return BookingResponse{
		BookingRef:     b.BookingRef,
		Name:           b.Name,
		Phone:          b.Phone,
		Email:          b.Email,
		TourDate:       string(b.TourDate),
		TourDateHebrew: b.TourDateHebrew,
		Participants:   b.Participants,
		PricePerPerson: b.PricePerPerson,
		TotalPrice:     b.TotalPrice,
		PaymentMethod:  string(b.PaymentMethod),
		HowDidYouHear:  string(b.HowDidYouHear),
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
