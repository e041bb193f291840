package set_tour_override

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
)

// SettingsService sets per-date capacity overrides
type SettingsService interface {
	SetTourOverride(ctx context.Context, req *models.TourOverrideRequest) (*models.TourOverrideResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
