package settings

import (
	"context"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
)

// SettingsRepository is the global settings storage interface
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.GlobalSettings, error)
	UpdateGlobalMax(ctx context.Context, max int) error
	SetFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag) error
	ClearFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag) error
}

// TourDateRepository is the per-date capacity storage interface
type TourDateRepository interface {
	GetByDate(ctx context.Context, date domain.DateString) (*domain.TourDate, error)
	ListFrom(ctx context.Context, from domain.DateString) ([]*domain.TourDate, error)
	UpsertOverride(ctx context.Context, date domain.DateString, useGlobalMax bool, customMax *int) (*domain.TourDate, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
