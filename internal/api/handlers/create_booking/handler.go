package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	reserveSpots "github.com/mirirosen/chilik-rosenberg/internal/usecase/reserve_spots"
)

const (
	msgInvalidRequestBody = "גוף הבקשה אינו תקין"
	msgInvalidInput       = "הפרטים שהוזנו אינם תקינים"
	msgDateNotEligible    = "אין סיור בתאריך שנבחר"
	msgTooLateToBook      = "לא ניתן להזמין לסיור של היום בשעה זו"
	msgDateBlocked        = "אין סיור בתאריך זה"
	msgDateSoldOut        = "אזל המקום בתאריך זה"
	msgNotEnoughSpots     = "נותרו %d מקומות בלבד בתאריך זה"
)

type Handler struct {
	useCase ReserveSpotsUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSpotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var capErr *reserveSpots.CapacityError
		switch {
		case errors.As(err, &capErr):
			h.logger.Warn("POST /bookings - Not enough spots: date=%s, requested=%d, available=%d",
				req.TourDate, capErr.Requested, capErr.AvailableSpots)
			handlers.RespondJSON(w, http.StatusConflict, CapacityConflictResponse{
				Error:          fmt.Sprintf(msgNotEnoughSpots, capErr.AvailableSpots),
				AvailableSpots: capErr.AvailableSpots,
			})

		case errors.Is(err, reserveSpots.ErrDateBlocked):
			h.logger.Warn("POST /bookings - Date blocked: date=%s", req.TourDate)
			handlers.RespondError(w, http.StatusConflict, msgDateBlocked)

		case errors.Is(err, reserveSpots.ErrDateSoldOut):
			h.logger.Warn("POST /bookings - Date sold out: date=%s", req.TourDate)
			handlers.RespondError(w, http.StatusConflict, msgDateSoldOut)

		case errors.Is(err, reserveSpots.ErrDateNotEligible):
			h.logger.Warn("POST /bookings - Date not eligible: date=%s", req.TourDate)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, reserveSpots.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: date=%s", req.TourDate)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, reserveSpots.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.TourDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: ref=%s, date=%s, participants=%d",
		result.BookingRef, result.TourDate, result.Participants)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
