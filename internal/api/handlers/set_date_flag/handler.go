package set_date_flag

import (
	"context"
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
	msgInvalidDate        = "תאריך אינו תקין, נדרש פורמט YYYY-MM-DD"
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

// SetFlagRequest toggles a date flag on or off.
type SetFlagRequest struct {
	Value bool `json:"value"`
}

// DateFlagResponse is the flag state after the toggle. Setting one flag
// clears the other, so at most one of the two is true.
type DateFlagResponse struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
	SoldOut bool   `json:"soldOut"`
}

// HandleBlocked PUT /api/v1/admin/tours/{date}/blocked
func (h *Handler) HandleBlocked(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "blocked", h.service.SetBlocked)
}

// HandleSoldOut PUT /api/v1/admin/tours/{date}/sold-out
func (h *Handler) HandleSoldOut(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "sold-out", h.service.SetSoldOut)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	flag string,
	toggle func(ctx context.Context, date domain.DateString, on bool) (*models.DateFlagResponse, error),
) {
	date := domain.DateString(mux.Vars(r)["date"])

	var req SetFlagRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/tours/{date}/%s - Invalid request body: %v", flag, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := toggle(r.Context(), date, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrDateNotEligible):
			h.logger.Warn("PUT /admin/tours/{date}/%s - Not a tour day: %s", flag, date)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/tours/{date}/%s - Invalid date %q", flag, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("PUT /admin/tours/{date}/%s - Failed for %s: %v", flag, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/tours/{date}/%s - %s set to %t", flag, date, req.Value)
	handlers.RespondJSON(w, http.StatusOK, DateFlagResponse{
		Date:    string(result.Date),
		Blocked: result.Blocked,
		SoldOut: result.SoldOut,
	})
}
