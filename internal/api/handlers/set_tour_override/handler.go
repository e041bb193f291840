package set_tour_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	settingsService "github.com/mirirosen/chilik-rosenberg/internal/service/settings"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "גוף הבקשה אינו תקין"
	msgInvalidOverride    = "הגדרת הקיבולת אינה תקינה"
	msgDateNotEligible    = "התאריך אינו יום סיור"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// TourOverrideRequest is the per-date capacity payload.
type TourOverrideRequest struct {
	UseGlobalMax bool `json:"useGlobalMax"`
	CustomMax    *int `json:"customMax,omitempty"`
}

// TourOverrideResponse reports the applied override. Overbooked warns that
// the new limit is below current registrations.
type TourOverrideResponse struct {
	Date                 string `json:"date"`
	UseGlobalMax         bool   `json:"useGlobalMax"`
	CustomMax            *int   `json:"customMax,omitempty"`
	CurrentRegistrations int    `json:"currentRegistrations"`
	Overbooked           bool   `json:"overbooked"`
}

// Handle PUT /api/v1/admin/tours/{date}/capacity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	var req TourOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/tours/{date}/capacity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetTourOverride(r.Context(), &models.TourOverrideRequest{
		Date:         domain.DateString(date),
		UseGlobalMax: req.UseGlobalMax,
		CustomMax:    req.CustomMax,
	})
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrDateNotEligible):
			h.logger.Warn("PUT /admin/tours/{date}/capacity - Not a tour day: %s", date)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/tours/{date}/capacity - Invalid input for %s: %v", date, err)
			handlers.RespondBadRequest(w, msgInvalidOverride)

		default:
			h.logger.Error("PUT /admin/tours/{date}/capacity - Failed for %s: %v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/tours/{date}/capacity - %s useGlobalMax=%t overbooked=%t",
		date, result.UseGlobalMax, result.Overbooked)
	handlers.RespondJSON(w, http.StatusOK, TourOverrideResponse{
		Date:                 string(result.Date),
		UseGlobalMax:         result.UseGlobalMax,
		CustomMax:            result.CustomMax,
		CurrentRegistrations: result.CurrentRegistrations,
		Overbooked:           result.Overbooked,
	})
}
