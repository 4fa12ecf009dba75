package policy

import "context"

// SettingsRepository интерфейс репозитория настроек организации
type SettingsRepository interface {
	GetSettings(ctx context.Context, organizationID int64) (map[string]string, error)
	UpsertSettings(ctx context.Context, organizationID int64, settings map[string]string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
