package upcoming_tours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mirirosen/chilik-rosenberg/internal/api/handlers"
	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	upcomingTours "github.com/mirirosen/chilik-rosenberg/internal/usecase/upcoming_tours"
)

const msgInvalidCount = "פרמטר count אינו תקין"

type Handler struct {
	useCase UpcomingToursUseCase
	logger  Logger
}

func NewHandler(useCase UpcomingToursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/upcoming?count=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	count := domain.DefaultUpcomingTourCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /tours/upcoming - Invalid count %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		count = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &upcomingTours.Request{Count: count})
	if err != nil {
		if errors.Is(err, upcomingTours.ErrInvalidInput) {
			h.logger.Warn("GET /tours/upcoming - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCount)
			return
		}
		h.logger.Error("GET /tours/upcoming - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
