package get_settings

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
)

// SettingsService is the admin settings reader
type SettingsService interface {
	Get(ctx context.Context, today domain.DateString) (*models.SettingsResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
