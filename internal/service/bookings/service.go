package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	bookingRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/booking"
	tourdateRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/tourdate"
	"github.com/mirirosen/chilik-rosenberg/internal/service/bookings/models"
)

// Service backs the admin bookings panel: filtered listing with summary
// stats and status transitions.
type Service struct {
	bookingRepo  BookingRepository
	tourDateRepo TourDateRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the bookings service
func NewService(
	bookingRepo BookingRepository,
	tourDateRepo TourDateRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		tourDateRepo: tourDateRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List returns bookings matching the scope and status filters, newest
// first. Stats always cover the full set, matching the panel's counters.
func (s *Service) List(ctx context.Context, scope domain.BookingsScope, status *domain.BookingStatus) (*models.ListResponse, error) {
	if !scope.IsValid() {
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, scope)
	}
	if status != nil && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}

	all, err := s.bookingRepo.List(ctx, domain.BookingsFilter{Scope: domain.ScopeAll})
	if err != nil {
		s.logger.Error("ListBookings: failed to list: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %w", ErrInternal, err)
	}

	today := domain.NewDateString(s.timeProvider.Now())

	var stats models.Stats
	filtered := make([]models.BookingInfo, 0, len(all))

	for _, b := range all {
		stats.Total++
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
			stats.TotalRevenue += b.TotalPrice
		case domain.StatusCancelled:
			stats.Cancelled++
		}

		if !matchesScope(b, scope, today) {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		filtered = append(filtered, models.FromDomain(b))
	}

	return &models.ListResponse{Bookings: filtered, Stats: stats}, nil
}

// GetByRef returns one booking by its public reference.
func (s *Service) GetByRef(ctx context.Context, ref string) (*models.BookingInfo, error) {
	b, err := s.bookingRepo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: failed to get %s: %v", ref, err)
		return nil, fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
	}

	info := models.FromDomain(b)
	return &info, nil
}

// UpdateStatus applies an admin status transition. Cancelling releases the
// booking's spots in the same transaction; the sold-out flag on the date is
// left for the admin to clear. Cancelled bookings are terminal.
func (s *Service) UpdateStatus(ctx context.Context, ref string, next domain.BookingStatus) (*models.BookingInfo, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, next)
	}

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Row is locked FOR UPDATE for the duration of the transaction
		current, err := s.bookingRepo.GetByRef(txCtx, ref)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateBookingStatus: failed to get %s: %v", ref, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !current.CanTransitionTo(next) {
			s.logger.Warn("UpdateBookingStatus: %s -> %s not allowed for %s", current.Status, next, ref)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}

		updated, err := s.bookingRepo.UpdateStatus(txCtx, ref, next)
		if err != nil {
			s.logger.Error("UpdateBookingStatus: failed to update %s: %v", ref, err)
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		if next == domain.StatusCancelled {
			if _, err := s.tourDateRepo.ReleaseRegistrations(txCtx, current.TourDate, current.Participants); err != nil {
				// A cancelled booking always has a tour date row from its creation
				if errors.Is(err, tourdateRepo.ErrTourDateNotFound) {
					s.logger.Warn("UpdateBookingStatus: no tour date row for %s", current.TourDate)
				} else {
					s.logger.Error("UpdateBookingStatus: failed to release spots: %v", err)
					return fmt.Errorf("%w: failed to release spots: %w", ErrInternal, err)
				}
			}
			s.logger.Info("UpdateBookingStatus: released %d spots on %s", current.Participants, current.TourDate)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateBookingStatus: %s is now %s", ref, next)

	info := models.FromDomain(result)
	return &info, nil
}

func matchesScope(b *domain.Booking, scope domain.BookingsScope, today domain.DateString) bool {
	switch scope {
	case domain.ScopeUpcoming:
		return !b.TourDate.Before(today)
	case domain.ScopePast:
		return b.TourDate.Before(today)
	}
	return true
}
