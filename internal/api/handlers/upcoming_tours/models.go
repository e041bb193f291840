package upcoming_tours

import upcomingTours "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"

// TourResponse is one calendar entry.
type TourResponse struct {
	Date                 string `json:"date"`
	Day                  int    `json:"day"`
	Month                string `json:"month"`
	Status               string `json:"status"`
	AvailableSpots       int    `json:"availableSpots"`
	MaxParticipants      int    `json:"maxParticipants"`
	CurrentRegistrations int    `json:"currentRegistrations"`
}

// ToursResponse is the calendar payload.
type ToursResponse struct {
	Tours []TourResponse `json:"tours"`
}

// FromUseCaseResponse converts the usecase response to the HTTP payload.
func FromUseCaseResponse(resp *upcomingTours.Response) *ToursResponse {
	tours := make([]TourResponse, 0, len(resp.Tours))
	for _, t := range resp.Tours {
		tours = append(tours, TourResponse{
			Date:                 string(t.Date),
			Day:                  t.Day,
			Month:                t.MonthLabel,
			Status:               string(t.Status),
			AvailableSpots:       t.AvailableSpots,
			MaxParticipants:      t.EffectiveMax,
			CurrentRegistrations: t.CurrentRegistrations,
		})
	}
	return &ToursResponse{Tours: tours}
}
