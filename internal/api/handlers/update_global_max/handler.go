package update_global_max

import (
	"errors"
	"net/http"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	settingsService "github.com/mirirosen/chilik-rosenberg/internal/service/settings"
)

const (
	msgInvalidRequestBody = "גוף הבקשה אינו תקין"
	msgInvalidMax         = "מספר המשתתפים המקסימלי אינו תקין"
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

// UpdateGlobalMaxRequest is the global limit payload.
type UpdateGlobalMaxRequest struct {
	GlobalMaxParticipants int `json:"globalMaxParticipants"`
}

// Handle PUT /api/v1/admin/settings/global-max
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateGlobalMaxRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings/global-max - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetGlobalMax(r.Context(), req.GlobalMaxParticipants); err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/settings/global-max - Invalid max %d", req.GlobalMaxParticipants)
			handlers.RespondBadRequest(w, msgInvalidMax)
			return
		}
		h.logger.Error("PUT /admin/settings/global-max - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /admin/settings/global-max - Set to %d", req.GlobalMaxParticipants)
	handlers.RespondJSON(w, http.StatusOK, UpdateGlobalMaxRequest{
		GlobalMaxParticipants: req.GlobalMaxParticipants,
	})
}
