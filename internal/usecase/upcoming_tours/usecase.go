package upcoming_tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	tourdateRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/tourdate"
)

// UseCase serves the public availability views: the upcoming-tours calendar
// and single-date classification. Availability is always recomputed from
// settings and occupancy, never read from a stored status.
type UseCase struct {
	tourDateRepo TourDateRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability usecase
func NewUseCase(
	tourDateRepo TourDateRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourDateRepo: tourDateRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the next req.Count tour dates with their availability.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Count <= 0 || req.Count > domain.MaxUpcomingTourCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, domain.MaxUpcomingTourCount)
	}

	now := uc.timeProvider.Now()
	entries := domain.UpcomingTourDates(now, req.Count)
	if len(entries) == 0 {
		return &Response{Tours: []Tour{}}, nil
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("UpcomingTours: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
	}

	// One range query instead of a lookup per calendar entry
	rows, err := uc.tourDateRepo.ListFrom(ctx, entries[0].Date)
	if err != nil {
		uc.logger.Error("UpcomingTours: failed to list tour dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list tour dates: %w", ErrInternal, err)
	}

	byDate := make(map[domain.DateString]*domain.TourDate, len(rows))
	for _, td := range rows {
		byDate[td.Date] = td
	}

	tours := make([]Tour, 0, len(entries))
	for _, entry := range entries {
		capacity := domain.ResolveCapacity(settings, byDate[entry.Date])
		availability := domain.ClassifyDate(entry.Date, settings, capacity)

		tours = append(tours, Tour{
			Date:                 entry.Date,
			Day:                  entry.Day,
			MonthLabel:           entry.MonthLabel,
			Status:               availability.Status,
			AvailableSpots:       availability.AvailableSpots,
			EffectiveMax:         capacity.EffectiveMax,
			CurrentRegistrations: capacity.CurrentOccupancy,
		})
	}

	return &Response{Tours: tours}, nil
}

// ForDate classifies a single user-picked date. Non-Thursdays come back
// not_eligible rather than as an error.
func (uc *UseCase) ForDate(ctx context.Context, date domain.DateString) (*DateAvailability, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("UpcomingTours: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
	}

	td, err := uc.tourDateRepo.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, tourdateRepo.ErrTourDateNotFound) {
		uc.logger.Error("UpcomingTours: failed to get tour date: %v", err)
		return nil, fmt.Errorf("%w: failed to get tour date: %w", ErrInternal, err)
	}

	capacity := domain.ResolveCapacity(settings, td)
	availability := domain.ClassifyDate(date, settings, capacity)

	return &DateAvailability{
		Date:           date,
		Status:         availability.Status,
		AvailableSpots: availability.AvailableSpots,
	}, nil
}
