package reserve_spots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirirosen/chilik-rosenberg/internal/domain"
	tourdateRepo "github.com/mirirosen/chilik-rosenberg/internal/infra/storage/tourdate"
	"github.com/mirirosen/chilik-rosenberg/pkg/ptr"
)

// Monday 2026-03-02; the next tour is Thursday 2026-03-05.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

const testTourDate = domain.DateString("2026-03-05")

type fixedTimeProvider struct{ t time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	created := *b
	created.ID = 1
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	r.created = &created
	return &created, nil
}

type fakeTourDateRepo struct {
	td         *domain.TourDate
	addedDelta int
}

func (r *fakeTourDateRepo) GetByDate(_ context.Context, _ domain.DateString) (*domain.TourDate, error) {
	if r.td == nil {
		return nil, tourdateRepo.ErrTourDateNotFound
	}
	return r.td, nil
}

func (r *fakeTourDateRepo) AddRegistrations(_ context.Context, date domain.DateString, delta int) (*domain.TourDate, error) {
	r.addedDelta = delta
	updated := &domain.TourDate{Date: date, UseGlobalMax: true, CurrentRegistrations: delta}
	if r.td != nil {
		updated.UseGlobalMax = r.td.UseGlobalMax
		updated.CustomMax = r.td.CustomMax
		updated.CurrentRegistrations = r.td.CurrentRegistrations + delta
	}
	return updated, nil
}

type fakeSettingsRepo struct {
	settings *domain.GlobalSettings
	flagged  map[domain.DateString]domain.DateFlag
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.GlobalSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) SetFlag(_ context.Context, date domain.DateString, flag domain.DateFlag) error {
	if r.flagged == nil {
		r.flagged = make(map[domain.DateString]domain.DateFlag)
	}
	r.flagged[date] = flag
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct{ notified chan *domain.Booking }

func (n *fakeNotifier) BookingCreated(_ context.Context, b *domain.Booking) {
	n.notified <- b
}

type fakeMetrics struct{ outcomes []string }

func (m *fakeMetrics) IncReservation(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	dates    *fakeTourDateRepo
	settings *fakeSettingsRepo
	notifier *fakeNotifier
	metrics  *fakeMetrics
}

func newFixture(td *domain.TourDate, settings *domain.GlobalSettings) *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		dates:    &fakeTourDateRepo{td: td},
		settings: &fakeSettingsRepo{settings: settings},
		notifier: &fakeNotifier{notified: make(chan *domain.Booking, 1)},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.dates, f.settings, fakeTxManager{}, f.notifier, f.metrics, nopLogger{})
	f.uc.timeProvider = fixedTimeProvider{testNow}
	return f
}

func validRequest() *Request {
	return &Request{
		Name:          "ישראל ישראלי",
		Phone:         "052-1234567",
		Email:         "israel@example.com",
		DateOfBirth:   "1990-05-15",
		TourDate:      testTourDate,
		Participants:  3,
		PaymentMethod: domain.PaymentBit,
		HowDidYouHear: domain.ReferralFriend,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture(nil, &domain.GlobalSettings{GlobalMaxParticipants: 30})

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, bookingRef(testNow), resp.BookingRef)
	assert.Equal(t, testTourDate, resp.TourDate)
	assert.Equal(t, 3, resp.Participants)
	assert.Equal(t, domain.PricePerPerson, resp.PricePerPerson)
	assert.Equal(t, domain.PricePerPerson*3, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	assert.Equal(t, 3, f.dates.addedDelta)
	assert.Empty(t, f.settings.flagged, "30 spots minus 3 should not flip sold out")
	assert.Equal(t, []string{"success"}, f.metrics.outcomes)

	select {
	case notified := <-f.notifier.notified:
		assert.Equal(t, resp.BookingRef, notified.BookingRef)
	case <-time.After(time.Second):
		t.Fatal("expected a booking notification")
	}
}

func TestBookingRef(t *testing.T) {
	at := time.UnixMilli(1772438400000)
	assert.Equal(t, "BK1772438400000", bookingRef(at))
}

func TestUseCase_Execute_NotEnoughSpots(t *testing.T) {
	f := newFixture(
		&domain.TourDate{Date: testTourDate, UseGlobalMax: true, CurrentRegistrations: 28},
		&domain.GlobalSettings{GlobalMaxParticipants: 30},
	)

	_, err := f.uc.Execute(context.Background(), validRequest())

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, 2, capErr.AvailableSpots)
	assert.Nil(t, f.bookings.created)
	assert.Equal(t, []string{"capacity_conflict"}, f.metrics.outcomes)
}

func TestUseCase_Execute_BlockedDate(t *testing.T) {
	f := newFixture(nil, &domain.GlobalSettings{
		GlobalMaxParticipants: 30,
		Blocked:               []domain.DateString{testTourDate},
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateBlocked)
	assert.Nil(t, f.bookings.created)
	assert.Equal(t, []string{"rejected"}, f.metrics.outcomes)
}

func TestUseCase_Execute_SoldOutFlag(t *testing.T) {
	f := newFixture(nil, &domain.GlobalSettings{
		GlobalMaxParticipants: 30,
		SoldOut:               []domain.DateString{testTourDate},
	})

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateSoldOut)
	assert.Nil(t, f.bookings.created)
}

func TestUseCase_Execute_ExhaustedCapacityWithoutFlag(t *testing.T) {
	f := newFixture(
		&domain.TourDate{Date: testTourDate, UseGlobalMax: true, CurrentRegistrations: 30},
		&domain.GlobalSettings{GlobalMaxParticipants: 30},
	)

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateSoldOut)
}

func TestUseCase_Execute_ExactFillFlipsSoldOut(t *testing.T) {
	f := newFixture(
		&domain.TourDate{Date: testTourDate, UseGlobalMax: true, CurrentRegistrations: 27},
		&domain.GlobalSettings{GlobalMaxParticipants: 30},
	)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, domain.FlagSoldOut, f.settings.flagged[testTourDate])
	assert.Equal(t, resp.BookingRef, (<-f.notifier.notified).BookingRef)
}

func TestUseCase_Execute_CustomMaxApplies(t *testing.T) {
	f := newFixture(
		&domain.TourDate{Date: testTourDate, UseGlobalMax: false, CustomMax: ptr.Ptr(4), CurrentRegistrations: 2},
		&domain.GlobalSettings{GlobalMaxParticipants: 30},
	)

	_, err := f.uc.Execute(context.Background(), validRequest())

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.AvailableSpots)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"empty name", func(r *Request) { r.Name = "  " }, ErrInvalidInput},
		{"bad phone", func(r *Request) { r.Phone = "03-1234567" }, ErrInvalidInput},
		{"bad email", func(r *Request) { r.Email = "not-an-email" }, ErrInvalidInput},
		{"zero participants", func(r *Request) { r.Participants = 0 }, ErrInvalidInput},
		{"too many participants", func(r *Request) { r.Participants = 21 }, ErrInvalidInput},
		{"bad payment method", func(r *Request) { r.PaymentMethod = "cash" }, ErrInvalidInput},
		{"bad referral source", func(r *Request) { r.HowDidYouHear = "tv" }, ErrInvalidInput},
		{"underage", func(r *Request) { r.DateOfBirth = "2010-01-01" }, ErrInvalidInput},
		{"not a thursday", func(r *Request) { r.TourDate = "2026-03-06" }, ErrDateNotEligible},
		{"past date", func(r *Request) { r.TourDate = "2026-02-26" }, ErrDateNotEligible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil, &domain.GlobalSettings{GlobalMaxParticipants: 30})

			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookings.created)
		})
	}
}

func TestUseCase_Execute_SameDayCutoff(t *testing.T) {
	f := newFixture(nil, &domain.GlobalSettings{GlobalMaxParticipants: 30})
	f.uc.timeProvider = fixedTimeProvider{time.Date(2026, 3, 5, 20, 0, 0, 0, time.Local)}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrTooLateToBook)
}

func TestUseCase_Execute_SameDayBeforeCutoff(t *testing.T) {
	f := newFixture(nil, &domain.GlobalSettings{GlobalMaxParticipants: 30})
	f.uc.timeProvider = fixedTimeProvider{time.Date(2026, 3, 5, 19, 0, 0, 0, time.Local)}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	<-f.notifier.notified
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "success", outcomeLabel(nil))
	assert.Equal(t, "capacity_conflict", outcomeLabel(&CapacityError{Requested: 3, AvailableSpots: 1}))
	assert.Equal(t, "error", outcomeLabel(ErrInternal))
	assert.Equal(t, "rejected", outcomeLabel(ErrDateBlocked))
	assert.Equal(t, "rejected", outcomeLabel(ErrInvalidInput))
}
