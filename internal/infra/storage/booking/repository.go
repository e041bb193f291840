package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/pkg/psqlbuilder"
	"github.com/mirirosen/chilik-rosenberg/pkg/txmanager"
)

// Repository stores booking records
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over the given executor
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var columns = []string{
	"id",
	"booking_ref",
	"name",
	"phone",
	"email",
	"date_of_birth",
	"tour_date",
	"participants",
	"price_per_person",
	"total_price",
	"payment_method",
	"how_did_you_hear",
	"notes",
	"status",
	"created_at",
	"updated_at",
}

// Create inserts a new booking. A booking_ref collision returns
// ErrDuplicateRef.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_ref",
			"name",
			"phone",
			"email",
			"date_of_birth",
			"tour_date",
			"participants",
			"price_per_person",
			"total_price",
			"payment_method",
			"how_did_you_hear",
			"notes",
			"status",
		).
		Values(
			b.BookingRef,
			b.Name,
			b.Phone,
			b.Email,
			string(b.DateOfBirth),
			string(b.TourDate),
			b.Participants,
			b.PricePerPerson,
			b.TotalPrice,
			string(b.PaymentMethod),
			string(b.HowDidYouHear),
			b.Notes,
			string(b.Status),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateRef
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByRef loads a booking by its public reference.
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"booking_ref": ref})

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - build select query: %w", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - scan booking: %w", ErrScanRow, err)
	}

	return b, nil
}

// List returns bookings matching the filter, newest first.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		OrderBy("created_at DESC")

	switch filter.Scope {
	case domain.ScopeUpcoming:
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"tour_date": string(filter.Today)})
	case domain.ScopePast:
		selectBuilder = selectBuilder.Where(squirrel.Lt{"tour_date": string(filter.Today)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// SumActiveParticipants returns the participant total over non-cancelled
// bookings for a date. Used by consistency checks, not by the hot path.
func (r *Repository) SumActiveParticipants(ctx context.Context, date domain.DateString) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(participants), 0)").
		From("bookings").
		Where(squirrel.Eq{"tour_date": string(date)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: SumActiveParticipants - build select query: %w", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumActiveParticipants - scan total: %w", ErrScanRow, err)
	}

	return total, nil
}

// UpdateStatus changes a booking's status by reference.
func (r *Repository) UpdateStatus(ctx context.Context, ref string, status domain.BookingStatus) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"booking_ref": ref}).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	return b, nil
}

func returningColumns() string {
	return "id, booking_ref, name, phone, email, date_of_birth, tour_date, participants, " +
		"price_per_person, total_price, payment_method, how_did_you_hear, notes, status, created_at, updated_at"
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b             domain.Booking
		dateOfBirth   sql.NullTime
		tourDate      sql.NullTime
		paymentMethod string
		referral      string
		status        string
		createdAt     sql.NullTime
		updatedAt     sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.BookingRef,
		&b.Name,
		&b.Phone,
		&b.Email,
		&dateOfBirth,
		&tourDate,
		&b.Participants,
		&b.PricePerPerson,
		&b.TotalPrice,
		&paymentMethod,
		&referral,
		&b.Notes,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.DateOfBirth = domain.NewDateString(dateOfBirth.Time)
	b.TourDate = domain.NewDateString(tourDate.Time)
	b.PaymentMethod = domain.PaymentMethod(paymentMethod)
	b.HowDidYouHear = domain.ReferralSource(referral)
	b.Status = domain.BookingStatus(status)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
