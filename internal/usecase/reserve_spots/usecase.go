package reserve_spots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	tourdateRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/tourdate"
)

// Reservation outcome labels for metrics
const (
	outcomeSuccess          = "success"
	outcomeRejected         = "rejected"
	outcomeCapacityConflict = "capacity_conflict"
	outcomeError            = "error"
)

// UseCase reserves spots on a tour date. Availability check, booking insert
// and occupancy increment run in one serializable transaction, so two
// concurrent requests cannot both take the last spot.
type UseCase struct {
	bookingRepo  BookingRepository
	tourDateRepo TourDateRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the reservation usecase
func NewUseCase(
	bookingRepo BookingRepository,
	tourDateRepo TourDateRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tourDateRepo: tourDateRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute processes one booking submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSpots: date=%s, participants=%d", req.TourDate, req.Participants)

	resp, err := uc.execute(ctx, req)
	uc.metrics.IncReservation(outcomeLabel(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Field validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSpots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Age and date eligibility against the booking moment
	if err := validateAge(req.DateOfBirth, now); err != nil {
		uc.logger.Warn("ReserveSpots: age validation failed: %v", err)
		return nil, err
	}
	if err := validateTourDate(req.TourDate, now); err != nil {
		uc.logger.Warn("ReserveSpots: date %s not bookable: %v", req.TourDate, err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Availability re-check and reservation in one serializable transaction
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Settings row is locked for the duration of the transaction
		settings, err := uc.settingsRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("ReserveSpots: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
		}

		// 3.2. Flagged dates are rejected before any capacity math
		if settings.IsBlocked(req.TourDate) {
			uc.logger.Warn("ReserveSpots: date %s is blocked", req.TourDate)
			return ErrDateBlocked
		}
		if settings.IsSoldOut(req.TourDate) {
			uc.logger.Warn("ReserveSpots: date %s is sold out", req.TourDate)
			return ErrDateSoldOut
		}

		// 3.3. Per-date row, locked FOR UPDATE; absent row means defaults
		td, err := uc.tourDateRepo.GetByDate(txCtx, req.TourDate)
		if err != nil && !errors.Is(err, tourdateRepo.ErrTourDateNotFound) {
			uc.logger.Error("ReserveSpots: failed to get tour date: %v", err)
			return fmt.Errorf("%w: failed to get tour date: %w", ErrInternal, err)
		}

		capacity := domain.ResolveCapacity(settings, td)
		if capacity.IsFull() {
			uc.logger.Warn("ReserveSpots: date %s is full (%d/%d)",
				req.TourDate, capacity.CurrentOccupancy, capacity.EffectiveMax)
			return ErrDateSoldOut
		}
		if req.Participants > capacity.AvailableSpots {
			uc.logger.Warn("ReserveSpots: date %s has %d spots, requested %d",
				req.TourDate, capacity.AvailableSpots, req.Participants)
			return &CapacityError{Requested: req.Participants, AvailableSpots: capacity.AvailableSpots}
		}

		// 3.4. Insert the pending booking
		booking := &domain.Booking{
			BookingRef:     bookingRef(now),
			Name:           req.Name,
			Phone:          req.Phone,
			Email:          req.Email,
			DateOfBirth:    req.DateOfBirth,
			TourDate:       req.TourDate,
			Participants:   req.Participants,
			PricePerPerson: domain.PricePerPerson,
			TotalPrice:     domain.PricePerPerson * float64(req.Participants),
			PaymentMethod:  req.PaymentMethod,
			HowDidYouHear:  req.HowDidYouHear,
			Notes:          req.Notes,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ReserveSpots: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 3.5. Occupancy increment in the same transaction
		updated, err := uc.tourDateRepo.AddRegistrations(txCtx, req.TourDate, req.Participants)
		if err != nil {
			uc.logger.Error("ReserveSpots: failed to add registrations: %v", err)
			return fmt.Errorf("%w: failed to add registrations: %w", ErrInternal, err)
		}

		// 3.6. Exact fill flips the date into the sold-out set
		if domain.ResolveCapacity(settings, updated).IsFull() {
			if err := uc.settingsRepo.SetFlag(txCtx, req.TourDate, domain.FlagSoldOut); err != nil {
				uc.logger.Error("ReserveSpots: failed to flag date sold out: %v", err)
				return fmt.Errorf("%w: failed to flag date sold out: %w", ErrInternal, err)
			}
			uc.logger.Info("ReserveSpots: date %s is now sold out", req.TourDate)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSpots: created booking %s for %s", result.BookingRef, result.TourDate)

	// 4. Notifications are best-effort and never block the response
	go uc.notifier.BookingCreated(context.WithoutCancel(ctx), result)

	return &Response{
		BookingRef:     result.BookingRef,
		TourDate:       result.TourDate,
		Participants:   result.Participants,
		PricePerPerson: result.PricePerPerson,
		TotalPrice:     result.TotalPrice,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
	}, nil
}

// bookingRef builds the public reference: BK + epoch millis of the booking
// moment. Uniqueness is backed by the unique index on bookings.booking_ref.
func bookingRef(now time.Time) string {
	return fmt.Sprintf("BK%d", now.UnixMilli())
}

func outcomeLabel(err error) string {
	var capErr *CapacityError
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.As(err, &capErr):
		return outcomeCapacityConflict
	case errors.Is(err, ErrInternal):
		return outcomeError
	default:
		return outcomeRejected
	}
}
