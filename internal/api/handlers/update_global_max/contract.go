package update_global_max

import "context"

// SettingsService updates the global participant limit
type SettingsService interface {
	SetGlobalMax(ctx context.Context, max int) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
