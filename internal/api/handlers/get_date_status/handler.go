package get_date_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	upcomingTours "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"
)

const msgInvalidDate = "תאריך אינו תקין, נדרש פורמט YYYY-MM-DD"

type Handler struct {
	useCase DateStatusUseCase
	logger  Logger
}

func NewHandler(useCase DateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DateStatusResponse is the single-date availability payload.
type DateStatusResponse struct {
	Date           string `json:"date"`
	Status         string `json:"status"`
	AvailableSpots int    `json:"availableSpots"`
}

// Handle GET /api/v1/tours/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := domain.DateString(mux.Vars(r)["date"])

	result, err := h.useCase.ForDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, upcomingTours.ErrInvalidInput) {
			h.logger.Warn("GET /tours/{date} - Invalid date %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /tours/{date} - Failed for %s: %v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DateStatusResponse{
		Date:           string(result.Date),
		Status:         string(result.Status),
		AvailableSpots: result.AvailableSpots,
	})
}
