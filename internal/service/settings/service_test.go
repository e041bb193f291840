package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	"github.com/mirirosen/chilik-rosenberg/internal/service/settings/models"
	"github.com/mirirosen/chilik-rosenberg/pkg/ptr"
)

const thursday = domain.DateString("2026-03-05")

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeSettingsRepo keeps the flag sets in memory with the same mutual
// exclusion the date_flags table enforces: one flag per date.
type fakeSettingsRepo struct {
	globalMax int
	flags     map[domain.DateString]domain.DateFlag
}

func newFakeSettingsRepo(globalMax int) *fakeSettingsRepo {
	return &fakeSettingsRepo{
		globalMax: globalMax,
		flags:     make(map[domain.DateString]domain.DateFlag),
	}
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.GlobalSettings, error) {
	settings := &domain.GlobalSettings{GlobalMaxParticipants: r.globalMax}
	for date, flag := range r.flags {
		switch flag {
		case domain.FlagBlocked:
			settings.Blocked = append(settings.Blocked, date)
		case domain.FlagSoldOut:
			settings.SoldOut = append(settings.SoldOut, date)
		}
	}
	return settings, nil
}

func (r *fakeSettingsRepo) UpdateGlobalMax(_ context.Context, max int) error {
	r.globalMax = max
	return nil
}

func (r *fakeSettingsRepo) SetFlag(_ context.Context, date domain.DateString, flag domain.DateFlag) error {
	r.flags[date] = flag
	return nil
}

func (r *fakeSettingsRepo) ClearFlag(_ context.Context, date domain.DateString, flag domain.DateFlag) error {
	if r.flags[date] == flag {
		delete(r.flags, date)
	}
	return nil
}

type fakeTourDateRepo struct {
	rows map[domain.DateString]*domain.TourDate
}

func newFakeTourDateRepo() *fakeTourDateRepo {
	return &fakeTourDateRepo{rows: make(map[domain.DateString]*domain.TourDate)}
}

func (r *fakeTourDateRepo) GetByDate(_ context.Context, date domain.DateString) (*domain.TourDate, error) {
	return r.rows[date], nil
}

func (r *fakeTourDateRepo) ListFrom(_ context.Context, from domain.DateString) ([]*domain.TourDate, error) {
	var out []*domain.TourDate
	for _, td := range r.rows {
		if !td.Date.Before(from) {
			out = append(out, td)
		}
	}
	return out, nil
}

func (r *fakeTourDateRepo) UpsertOverride(_ context.Context, date domain.DateString, useGlobalMax bool, customMax *int) (*domain.TourDate, error) {
	td, ok := r.rows[date]
	if !ok {
		td = &domain.TourDate{Date: date}
		r.rows[date] = td
	}
	td.UseGlobalMax = useGlobalMax
	td.CustomMax = customMax
	return td, nil
}

func newService() (*Service, *fakeSettingsRepo, *fakeTourDateRepo) {
	settingsRepo := newFakeSettingsRepo(30)
	tourDateRepo := newFakeTourDateRepo()
	return NewService(settingsRepo, tourDateRepo, nopLogger{}), settingsRepo, tourDateRepo
}

func TestService_SetGlobalMax(t *testing.T) {
	svc, repo, _ := newService()

	require.NoError(t, svc.SetGlobalMax(context.Background(), 45))
	assert.Equal(t, 45, repo.globalMax)
}

func TestService_SetGlobalMax_Bounds(t *testing.T) {
	svc, repo, _ := newService()

	require.ErrorIs(t, svc.SetGlobalMax(context.Background(), 0), ErrInvalidInput)
	require.ErrorIs(t, svc.SetGlobalMax(context.Background(), 501), ErrInvalidInput)
	assert.Equal(t, 30, repo.globalMax)
}

func TestService_SetTourOverride(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: false,
		CustomMax:    ptr.Ptr(15),
	})

	require.NoError(t, err)
	assert.Equal(t, thursday, resp.Date)
	assert.False(t, resp.UseGlobalMax)
	require.NotNil(t, resp.CustomMax)
	assert.Equal(t, 15, *resp.CustomMax)
	assert.False(t, resp.Overbooked)
}

func TestService_SetTourOverride_BackToGlobalDropsCustomMax(t *testing.T) {
	svc, _, tourDateRepo := newService()

	_, err := svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: false,
		CustomMax:    ptr.Ptr(15),
	})
	require.NoError(t, err)

	// customMax in the request is ignored when switching back to global
	resp, err := svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: true,
		CustomMax:    ptr.Ptr(99),
	})
	require.NoError(t, err)
	assert.True(t, resp.UseGlobalMax)
	assert.Nil(t, resp.CustomMax)
	assert.Nil(t, tourDateRepo.rows[thursday].CustomMax)
}

func TestService_SetTourOverride_OverbookedWarnsButApplies(t *testing.T) {
	svc, _, tourDateRepo := newService()
	tourDateRepo.rows[thursday] = &domain.TourDate{
		Date:                 thursday,
		UseGlobalMax:         true,
		CurrentRegistrations: 20,
	}

	resp, err := svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: false,
		CustomMax:    ptr.Ptr(15),
	})

	require.NoError(t, err)
	assert.True(t, resp.Overbooked)
	assert.Equal(t, 20, resp.CurrentRegistrations)
	require.NotNil(t, tourDateRepo.rows[thursday].CustomMax)
	assert.Equal(t, 15, *tourDateRepo.rows[thursday].CustomMax)
}

func TestService_SetTourOverride_Validation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         "2026-03-06", // Friday
		UseGlobalMax: true,
	})
	require.ErrorIs(t, err, ErrDateNotEligible)

	_, err = svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: false,
		CustomMax:    nil,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetTourOverride(context.Background(), &models.TourOverrideRequest{
		Date:         thursday,
		UseGlobalMax: false,
		CustomMax:    ptr.Ptr(0),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SetBlocked_ReplacesSoldOut(t *testing.T) {
	svc, repo, _ := newService()
	repo.flags[thursday] = domain.FlagSoldOut

	resp, err := svc.SetBlocked(context.Background(), thursday, true)

	require.NoError(t, err)
	assert.True(t, resp.Blocked)
	assert.False(t, resp.SoldOut)
}

func TestService_SetBlocked_ClearLeavesSoldOutAlone(t *testing.T) {
	svc, repo, _ := newService()
	repo.flags[thursday] = domain.FlagSoldOut

	resp, err := svc.SetBlocked(context.Background(), thursday, false)

	require.NoError(t, err)
	assert.False(t, resp.Blocked)
	assert.True(t, resp.SoldOut)
}

func TestService_SetSoldOut_Toggle(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.SetSoldOut(context.Background(), thursday, true)
	require.NoError(t, err)
	assert.True(t, resp.SoldOut)

	resp, err = svc.SetSoldOut(context.Background(), thursday, false)
	require.NoError(t, err)
	assert.False(t, resp.SoldOut)

	// Clearing an unset flag stays a no-op
	resp, err = svc.SetSoldOut(context.Background(), thursday, false)
	require.NoError(t, err)
	assert.False(t, resp.SoldOut)
}

func TestService_SetFlag_NonThursdayRejected(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.SetBlocked(context.Background(), "2026-03-06", true)
	require.ErrorIs(t, err, ErrDateNotEligible)

	_, err = svc.SetSoldOut(context.Background(), "bad-date", true)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Get(t *testing.T) {
	svc, settingsRepo, tourDateRepo := newService()
	settingsRepo.flags["2026-03-12"] = domain.FlagBlocked
	tourDateRepo.rows[thursday] = &domain.TourDate{
		Date:                 thursday,
		UseGlobalMax:         false,
		CustomMax:            ptr.Ptr(15),
		CurrentRegistrations: 8,
	}
	tourDateRepo.rows["2026-02-26"] = &domain.TourDate{Date: "2026-02-26", UseGlobalMax: true}

	resp, err := svc.Get(context.Background(), "2026-03-01")

	require.NoError(t, err)
	assert.Equal(t, 30, resp.GlobalMaxParticipants)
	assert.Equal(t, []domain.DateString{"2026-03-12"}, resp.Blocked)
	assert.Empty(t, resp.SoldOut)

	// Past overrides are not part of the view
	require.Len(t, resp.Overrides, 1)
	assert.Equal(t, thursday, resp.Overrides[0].Date)
	assert.Equal(t, 8, resp.Overrides[0].CurrentRegistrations)
}
