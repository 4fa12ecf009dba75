package policy

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FleetBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FleetBookingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек организации (ключ-значение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSettings получает все сохраненные настройки организации
// Отсутствие настроек не является ошибкой: возвращается пустая карта
func (r *Repository) GetSettings(ctx context.Context, organizationID int64) (map[string]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("setting_key", "setting_value").
		From("organization_settings").
		Where(squirrel.Eq{"organization_id": organizationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSettings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: GetSettings - scan row: %v", ErrScanRow, err)
		}
		settings[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSettings - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// UpsertSettings создает или обновляет настройки организации
// Если в контексте передана активная транзакция, использует её
func (r *Repository) UpsertSettings(ctx context.Context, organizationID int64, settings map[string]string) error {
	if len(settings) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("organization_settings").
		Columns("organization_id", "setting_key", "setting_value")

	for key, value := range settings {
		insertBuilder = insertBuilder.Values(organizationID, key, value)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (organization_id, setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertSettings - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSettings - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
