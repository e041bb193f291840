package settings

import (
	"context"
	"fmt"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
)

// Service is the admin capacity editor: global max, per-date overrides and
// the blocked/sold-out toggles.
type Service struct {
	settingsRepo SettingsRepository
	tourDateRepo TourDateRepository
	logger       Logger
}

// NewService creates the settings service
func NewService(
	settingsRepo SettingsRepository,
	tourDateRepo TourDateRepository,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		tourDateRepo: tourDateRepo,
		logger:       logger,
	}
}

// Get returns the settings view: global max, flagged dates and all
// configured overrides from today on.
func (s *Service) Get(ctx context.Context, today domain.DateString) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("GetSettings: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %w", ErrInternal, err)
	}

	rows, err := s.tourDateRepo.ListFrom(ctx, today)
	if err != nil {
		s.logger.Error("GetSettings: failed to list tour dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list tour dates: %w", ErrInternal, err)
	}

	overrides := make([]models.TourDateInfo, 0, len(rows))
	for _, td := range rows {
		overrides = append(overrides, models.TourDateInfo{
			Date:                 td.Date,
			UseGlobalMax:         td.UseGlobalMax,
			CustomMax:            td.CustomMax,
			CurrentRegistrations: td.CurrentRegistrations,
		})
	}

	return &models.SettingsResponse{
		GlobalMaxParticipants: settings.GlobalMaxParticipants,
		Blocked:               settings.Blocked,
		SoldOut:               settings.SoldOut,
		Overrides:             overrides,
	}, nil
}

// SetGlobalMax updates the global participant limit. Existing bookings and
// occupancy counters are untouched; the new limit applies to all future
// capacity computations.
func (s *Service) SetGlobalMax(ctx context.Context, max int) error {
	if max < domain.MinGlobalMaxParticipants || max > domain.MaxGlobalMaxParticipants {
		return fmt.Errorf("%w: global max must be between %d and %d",
			ErrInvalidInput, domain.MinGlobalMaxParticipants, domain.MaxGlobalMaxParticipants)
	}

	if err := s.settingsRepo.UpdateGlobalMax(ctx, max); err != nil {
		s.logger.Error("SetGlobalMax: failed to update: %v", err)
		return fmt.Errorf("%w: failed to update global max: %w", ErrInternal, err)
	}

	s.logger.Info("SetGlobalMax: global max set to %d", max)
	return nil
}

// SetTourOverride creates or updates the per-date capacity override. A
// custom max below current occupancy is accepted with a warning, never
// truncating existing bookings.
func (s *Service) SetTourOverride(ctx context.Context, req *models.TourOverrideRequest) (*models.TourOverrideResponse, error) {
	if err := req.Date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !req.Date.IsTourDay() {
		return nil, ErrDateNotEligible
	}

	if !req.UseGlobalMax {
		if req.CustomMax == nil {
			return nil, fmt.Errorf("%w: custom max is required when not using the global max", ErrInvalidInput)
		}
		if *req.CustomMax < domain.MinGlobalMaxParticipants || *req.CustomMax > domain.MaxGlobalMaxParticipants {
			return nil, fmt.Errorf("%w: custom max must be between %d and %d",
				ErrInvalidInput, domain.MinGlobalMaxParticipants, domain.MaxGlobalMaxParticipants)
		}
	}

	customMax := req.CustomMax
	if req.UseGlobalMax {
		customMax = nil
	}

	td, err := s.tourDateRepo.UpsertOverride(ctx, req.Date, req.UseGlobalMax, customMax)
	if err != nil {
		s.logger.Error("SetTourOverride: failed to upsert: %v", err)
		return nil, fmt.Errorf("%w: failed to upsert override: %w", ErrInternal, err)
	}

	overbooked := customMax != nil && *customMax < td.CurrentRegistrations
	if overbooked {
		s.logger.Warn("SetTourOverride: date %s now overbooked: max=%d, registrations=%d",
			req.Date, *customMax, td.CurrentRegistrations)
	} else {
		s.logger.Info("SetTourOverride: date %s useGlobalMax=%t customMax=%v",
			req.Date, req.UseGlobalMax, customMax)
	}

	return &models.TourOverrideResponse{
		Date:                 td.Date,
		UseGlobalMax:         td.UseGlobalMax,
		CustomMax:            td.CustomMax,
		CurrentRegistrations: td.CurrentRegistrations,
		Overbooked:           overbooked,
	}, nil
}

// SetBlocked toggles the blocked flag on a date. Setting it clears a
// sold-out flag on the same date; clearing it leaves a sold-out flag alone.
// Idempotent in both directions.
func (s *Service) SetBlocked(ctx context.Context, date domain.DateString, on bool) (*models.DateFlagResponse, error) {
	return s.setFlag(ctx, date, domain.FlagBlocked, on)
}

// SetSoldOut toggles the sold-out flag on a date, with the same mutual
// exclusion semantics as SetBlocked.
func (s *Service) SetSoldOut(ctx context.Context, date domain.DateString, on bool) (*models.DateFlagResponse, error) {
	return s.setFlag(ctx, date, domain.FlagSoldOut, on)
}

func (s *Service) setFlag(ctx context.Context, date domain.DateString, flag domain.DateFlag, on bool) (*models.DateFlagResponse, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !date.IsTourDay() {
		return nil, ErrDateNotEligible
	}

	var err error
	if on {
		err = s.settingsRepo.SetFlag(ctx, date, flag)
	} else {
		err = s.settingsRepo.ClearFlag(ctx, date, flag)
	}
	if err != nil {
		s.logger.Error("SetFlag: failed to set %s=%t on %s: %v", flag, on, date, err)
		return nil, fmt.Errorf("%w: failed to update flag: %w", ErrInternal, err)
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("SetFlag: failed to reload settings: %v", err)
		return nil, fmt.Errorf("%w: failed to reload settings: %w", ErrInternal, err)
	}

	s.logger.Info("SetFlag: date %s %s=%t", date, flag, on)

	return &models.DateFlagResponse{
		Date:    date,
		Blocked: settings.IsBlocked(date),
		SoldOut: settings.IsSoldOut(date),
	}, nil
}
