package update_booking_status

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	bookingsService "github.com/mirirosen/chilik-rosenberg/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "גוף הבקשה אינו תקין"
	msgInvalidStatus      = "סטטוס אינו תקין"
	msgInvalidTransition  = "לא ניתן לעבור לסטטוס זה"
	msgBookingNotFound    = "ההזמנה לא נמצאה"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// UpdateStatusRequest is the status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the booking after the transition.
type UpdateStatusResponse struct {
	BookingRef string    `json:"bookingRef"`
	TourDate   string    `json:"tourDate"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Handle PATCH /api/v1/admin/bookings/{bookingRef}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := mux.Vars(r)["bookingRef"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{ref}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), ref, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{ref}/status - Not found: %s", ref)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{ref}/status - Invalid transition for %s: %v", ref, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{ref}/status - Invalid status %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/bookings/{ref}/status - Failed for %s: %v", ref, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{ref}/status - %s is now %s", ref, result.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{
		BookingRef: result.BookingRef,
		TourDate:   string(result.TourDate),
		Status:     string(result.Status),
		UpdatedAt:  result.UpdatedAt,
	})
}
