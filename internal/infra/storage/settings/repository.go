package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/pkg/psqlbuilder"
	"github.com/mirirosen/chilik-rosenberg/pkg/txmanager"
)

// Repository stores the global settings row and the per-date flags. A date
// holds at most one flag (the date_flags primary key), which keeps blocked
// and sold-out mutually exclusive.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a settings repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row together with the flagged date sets.
// Inside a transaction the settings row is locked FOR UPDATE.
func (r *Repository) Get(ctx context.Context) (*domain.GlobalSettings, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("global_max_participants", "updated_at").
		From("global_settings").
		Where(squirrel.Eq{"id": 1})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %w", ErrBuildQuery, err)
	}

	var settings domain.GlobalSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.GlobalMaxParticipants,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %w", ErrScanRow, err)
	}
	settings.UpdatedAt = updatedAt.Time

	query, args, err = psqlbuilder.Select("tour_date", "state").
		From("date_flags").
		OrderBy("tour_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build flags query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute flags query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var date sql.NullTime
		var state string
		if err := rows.Scan(&date, &state); err != nil {
			return nil, fmt.Errorf("%w: Get - scan flag row: %w", ErrScanRow, err)
		}
		d := domain.NewDateString(date.Time)
		switch domain.DateFlag(state) {
		case domain.FlagBlocked:
			settings.Blocked = append(settings.Blocked, d)
		case domain.FlagSoldOut:
			settings.SoldOut = append(settings.SoldOut, d)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - flag rows error: %w", ErrScanRow, err)
	}

	return &settings, nil
}

// UpdateGlobalMax sets the global participant limit.
func (r *Repository) UpdateGlobalMax(ctx context.Context, max int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("global_settings").
		Set("global_max_participants", max).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateGlobalMax - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateGlobalMax - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateGlobalMax - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}

// SetFlag puts the date into the given flag state. An existing flag on the
// same date is replaced, so setting blocked clears sold-out and vice versa.
// Idempotent.
func (r *Repository) SetFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("date_flags").
		Columns("tour_date", "state").
		Values(string(date), string(flag)).
		Suffix("ON CONFLICT (tour_date) DO UPDATE SET state = EXCLUDED.state, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetFlag - build upsert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetFlag - execute upsert: %w", ErrExecQuery, err)
	}

	return nil
}

// ClearFlag removes the flag from the date, but only if it currently holds
// the given state. Clearing an absent flag is a no-op.
func (r *Repository) ClearFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("date_flags").
		Where(squirrel.Eq{"tour_date": string(date), "state": string(flag)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ClearFlag - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ClearFlag - execute delete: %w", ErrExecQuery, err)
	}

	return nil
}
