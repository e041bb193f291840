package set_date_flag

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
)

// SettingsService toggles the blocked and sold-out flags
type SettingsService interface {
	SetBlocked(ctx context.Context, date domain.DateString, on bool) (*models.DateFlagResponse, error)
	SetSoldOut(ctx context.Context, date domain.DateString, on bool) (*models.DateFlagResponse, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
