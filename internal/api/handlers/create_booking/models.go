package create_booking

import (
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	reserveSpots "github.com/mirirosen/chilik-rosenberg/internal/usecase/reserve_spots"
)

// CreateBookingRequest is the booking submission payload.
type CreateBookingRequest struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	DateOfBirth   string  `json:"dateOfBirth"`
	TourDate      string  `json:"tourDate"`
	Participants  int     `json:"participants"`
	PaymentMethod string  `json:"paymentMethod"`
	HowDidYouHear string  `json:"howDidYouHear"`
	Notes         *string `json:"notes,omitempty"`
}

// ToUseCaseRequest converts the HTTP payload to the usecase request.
func (r *CreateBookingRequest) ToUseCaseRequest() *reserveSpots.Request {
	return &reserveSpots.Request{
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		DateOfBirth:   domain.DateString(r.DateOfBirth),
		TourDate:      domain.DateString(r.TourDate),
		Participants:  r.Participants,
		PaymentMethod: domain.PaymentMethod(r.PaymentMethod),
		HowDidYouHear: domain.ReferralSource(r.HowDidYouHear),
		Notes:         r.Notes,
	}
}

// BookingResponse is the created booking payload.
type BookingResponse struct {
	BookingRef     string    `json:"bookingRef"`
	TourDate       string    `json:"tourDate"`
	Participants   int       `json:"participants"`
	PricePerPerson float64   `json:"pricePerPerson"`
	TotalPrice     float64   `json:"totalPrice"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CapacityConflictResponse carries the remaining spots on a 409.
type CapacityConflictResponse struct {
	Error          string `json:"error"`
	AvailableSpots int    `json:"availableSpots"`
}

// FromUseCaseResponse converts the usecase response to the HTTP payload.
func FromUseCaseResponse(resp *reserveSpots.Response) *BookingResponse {
	return &BookingResponse{
		BookingRef:     resp.BookingRef,
		TourDate:       string(resp.TourDate),
		Participants:   resp.Participants,
		PricePerPerson: resp.PricePerPerson,
		TotalPrice:     resp.TotalPrice,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt,
	}
}
