package tourdate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/pkg/psqlbuilder"
	"github.com/mirirosen/chilik-rosenberg/pkg/txmanager"
)

// Repository stores per-date capacity overrides and occupancy counters.
// Rows are created lazily on first write for a date.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a tour date repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{
	"tour_date",
	"use_global_max",
	"custom_max",
	"current_registrations",
	"created_at",
	"updated_at",
}

// GetByDate loads the row for a date. Returns ErrTourDateNotFound when the
// date has never been configured or booked. Inside a transaction the row is
// locked FOR UPDATE.
func (r *Repository) GetByDate(ctx context.Context, date domain.DateString) (*domain.TourDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("tour_dates").
		Where(squirrel.Eq{"tour_date": string(date)})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %w", ErrBuildQuery, err)
	}

	td, err := scanTourDate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan tour date: %w", ErrScanRow, err)
	}

	return td, nil
}

// ListFrom returns all configured rows with tour_date >= from, soonest first.
func (r *Repository) ListFrom(ctx context.Context, from domain.DateString) ([]*domain.TourDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("tour_dates").
		Where(squirrel.GtOrEq{"tour_date": string(from)}).
		OrderBy("tour_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.TourDate, 0)
	for rows.Next() {
		td, err := scanTourDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFrom - scan row: %w", ErrScanRow, err)
		}
		dates = append(dates, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFrom - rows error: %w", ErrScanRow, err)
	}

	return dates, nil
}

// UpsertOverride creates or updates the capacity override for a date without
// touching the occupancy counter.
func (r *Repository) UpsertOverride(ctx context.Context, date domain.DateString, useGlobalMax bool, customMax *int) (*domain.TourDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tour_dates").
		Columns("tour_date", "use_global_max", "custom_max").
		Values(string(date), useGlobalMax, customMax).
		Suffix(`ON CONFLICT (tour_date) DO UPDATE
			SET use_global_max = EXCLUDED.use_global_max,
			    custom_max = EXCLUDED.custom_max,
			    updated_at = now()`).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - build upsert query: %w", ErrBuildQuery, err)
	}

	td, err := scanTourDate(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertOverride - execute upsert: %w", ErrExecQuery, err)
	}

	return td, nil
}

// AddRegistrations atomically adds delta participants to the date's counter,
// creating the row with default override settings if absent. The returned
// row carries the post-increment counter.
func (r *Repository) AddRegistrations(ctx context.Context, date domain.DateString, delta int) (*domain.TourDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tour_dates").
		Columns("tour_date", "current_registrations").
		Values(string(date), delta).
		Suffix(`ON CONFLICT (tour_date) DO UPDATE
			SET current_registrations = tour_dates.current_registrations + EXCLUDED.current_registrations,
			    updated_at = now()`).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddRegistrations - build upsert query: %w", ErrBuildQuery, err)
	}

	td, err := scanTourDate(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: AddRegistrations - execute upsert: %w", ErrExecQuery, err)
	}

	return td, nil
}

// ReleaseRegistrations subtracts delta participants from the date's counter,
// flooring at zero. Missing rows return ErrTourDateNotFound.
func (r *Repository) ReleaseRegistrations(ctx context.Context, date domain.DateString, delta int) (*domain.TourDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tour_dates").
		Set("current_registrations", squirrel.Expr("GREATEST(0, current_registrations - ?)", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"tour_date": string(date)}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseRegistrations - build update query: %w", ErrBuildQuery, err)
	}

	td, err := scanTourDate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTourDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseRegistrations - execute update: %w", ErrExecQuery, err)
	}

	return td, nil
}

func returningColumns() string {
	return "tour_date, use_global_max, custom_max, current_registrations, created_at, updated_at"
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTourDate(row rowScanner) (*domain.TourDate, error) {
	var (
		td        domain.TourDate
		date      sql.NullTime
		customMax sql.NullInt64
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&date,
		&td.UseGlobalMax,
		&customMax,
		&td.CurrentRegistrations,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	td.Date = domain.NewDateString(date.Time)
	if customMax.Valid {
		v := int(customMax.Int64)
		td.CustomMax = &v
	}
	td.CreatedAt = createdAt.Time
	td.UpdatedAt = updatedAt.Time

	return &td, nil
}
