package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reserveSpots "github.com/mirirosen/chilik-rosenberg/internal/usecase/reserve_spots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *reserveSpots.Response
	err  error
	got  *reserveSpots.Request
}

func (u *fakeUseCase) Execute(_ context.Context, req *reserveSpots.Request) (*reserveSpots.Response, error) {
	u.got = req
	if u.err != nil {
		return nil, u.err
	}
	return u.resp, nil
}

func postBooking(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"name":          "ישראל ישראלי",
		"phone":         "052-1234567",
		"email":         "israel@example.com",
		"dateOfBirth":   "1990-05-15",
		"tourDate":      "2026-03-05",
		"participants":  3,
		"paymentMethod": "bit",
		"howDidYouHear": "friend",
	}
}

func TestHandler_Handle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &reserveSpots.Response{
		BookingRef:     "BK1772438400000",
		TourDate:       "2026-03-05",
		Participants:   3,
		PricePerPerson: 250,
		TotalPrice:     750,
		Status:         "pending",
		CreatedAt:      time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BK1772438400000", resp.BookingRef)
	assert.Equal(t, "2026-03-05", resp.TourDate)
	assert.Equal(t, 750.0, resp.TotalPrice)
	assert.Equal(t, "pending", resp.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, 3, uc.got.Participants)
}

func TestHandler_Handle_CapacityConflict(t *testing.T) {
	uc := &fakeUseCase{err: &reserveSpots.CapacityError{Requested: 5, AvailableSpots: 2}}
	h := NewHandler(uc, nopLogger{})

	rec := postBooking(t, h, validBody())

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp CapacityConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.AvailableSpots)
	assert.Contains(t, resp.Error, "2")
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"blocked date", reserveSpots.ErrDateBlocked, http.StatusConflict},
		{"sold out date", reserveSpots.ErrDateSoldOut, http.StatusConflict},
		{"not a tour day", reserveSpots.ErrDateNotEligible, http.StatusBadRequest},
		{"past the cutoff", reserveSpots.ErrTooLateToBook, http.StatusBadRequest},
		{"invalid input", reserveSpots.ErrInvalidInput, http.StatusBadRequest},
		{"internal error", reserveSpots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := postBooking(t, h, validBody())
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_Handle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
