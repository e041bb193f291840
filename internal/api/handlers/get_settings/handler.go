package get_settings

import (
	"net/http"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
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

// OverrideResponse is one configured date in the settings payload.
type OverrideResponse struct {
	Date                 string `json:"date"`
	UseGlobalMax         bool   `json:"useGlobalMax"`
	CustomMax            *int   `json:"customMax,omitempty"`
	CurrentRegistrations int    `json:"currentRegistrations"`
}

// SettingsResponse is the admin settings payload.
type SettingsResponse struct {
	GlobalMaxParticipants int                `json:"globalMaxParticipants"`
	BlockedDates          []string           `json:"blockedDates"`
	SoldOutDates          []string           `json:"soldOutDates"`
	Overrides             []OverrideResponse `json:"overrides"`
}

// Handle GET /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), domain.NewDateString(time.Now()))
	if err != nil {
		h.logger.Error("GET /admin/settings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.SettingsResponse) *SettingsResponse {
	out := &SettingsResponse{
		GlobalMaxParticipants: resp.GlobalMaxParticipants,
		BlockedDates:          datesToStrings(resp.Blocked),
		SoldOutDates:          datesToStrings(resp.SoldOut),
		Overrides:             make([]OverrideResponse, 0, len(resp.Overrides)),
	}
	for _, o := range resp.Overrides {
		out.Overrides = append(out.Overrides, OverrideResponse{
			Date:                 string(o.Date),
			UseGlobalMax:         o.UseGlobalMax,
			CustomMax:            o.CustomMax,
			CurrentRegistrations: o.CurrentRegistrations,
		})
	}
	return out
}

func datesToStrings(dates []domain.DateString) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, string(d))
	}
	return out
}
