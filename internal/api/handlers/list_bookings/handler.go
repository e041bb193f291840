package list_bookings

import (
	"errors"
	"net/http"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	bookingsService "github.com/mirirosen/chilik-rosenberg/internal/service/bookings"
)

const msgInvalidFilter = "פרמטרי הסינון אינם תקינים"

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

// Handle GET /api/v1/admin/bookings?filter=all|upcoming|past&status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := domain.ScopeAll
	if raw := r.URL.Query().Get("filter"); raw != "" {
		scope = domain.BookingsScope(raw)
	}

	var status *domain.BookingStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.BookingStatus(raw)
		status = &s
	}

	result, err := h.service.List(r.Context(), scope, status)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
