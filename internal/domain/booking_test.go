package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed back to pending", StatusConfirmed, StatusPending, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"cancelled stays cancelled", StatusCancelled, StatusConfirmed, false},
		{"no self transition", StatusPending, StatusPending, false},
		{"unknown target", StatusPending, BookingStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusConfirmed.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("").IsValid())
	assert.False(t, BookingStatus("deleted").IsValid())
}

func TestBookingsScope_IsValid(t *testing.T) {
	assert.True(t, ScopeAll.IsValid())
	assert.True(t, ScopeUpcoming.IsValid())
	assert.True(t, ScopePast.IsValid())
	assert.False(t, BookingsScope("recent").IsValid())
}
