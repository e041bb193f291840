package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestResolveCapacity(t *testing.T) {
	settings := &GlobalSettings{GlobalMaxParticipants: 30}

	tests := []struct {
		name string
		td   *TourDate
		want Capacity
	}{
		{
			name: "unconfigured date uses global max with zero occupancy",
			td:   nil,
			want: Capacity{EffectiveMax: 30, CurrentOccupancy: 0, AvailableSpots: 30},
		},
		{
			name: "global max with occupancy",
			td:   &TourDate{UseGlobalMax: true, CurrentRegistrations: 28},
			want: Capacity{EffectiveMax: 30, CurrentOccupancy: 28, AvailableSpots: 2},
		},
		{
			name: "custom max overrides global",
			td:   &TourDate{UseGlobalMax: false, CustomMax: intPtr(15), CurrentRegistrations: 10},
			want: Capacity{EffectiveMax: 15, CurrentOccupancy: 10, AvailableSpots: 5},
		},
		{
			name: "override without custom max falls back to global",
			td:   &TourDate{UseGlobalMax: false, CustomMax: nil, CurrentRegistrations: 5},
			want: Capacity{EffectiveMax: 30, CurrentOccupancy: 5, AvailableSpots: 25},
		},
		{
			name: "occupancy above the limit clamps spots at zero",
			td:   &TourDate{UseGlobalMax: false, CustomMax: intPtr(10), CurrentRegistrations: 14},
			want: Capacity{EffectiveMax: 10, CurrentOccupancy: 14, AvailableSpots: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCapacity(settings, tt.td))
		})
	}
}

func TestCapacity_IsFull(t *testing.T) {
	assert.False(t, Capacity{EffectiveMax: 30, AvailableSpots: 1}.IsFull())
	assert.True(t, Capacity{EffectiveMax: 30, AvailableSpots: 0}.IsFull())
}

func TestClassifyDate(t *testing.T) {
	const thursday = DateString("2026-03-05")
	const friday = DateString("2026-03-06")

	open := Capacity{EffectiveMax: 30, AvailableSpots: 30}

	tests := []struct {
		name     string
		date     DateString
		settings *GlobalSettings
		cap      Capacity
		want     Availability
	}{
		{
			name:     "non tour day is not eligible even when flagged",
			date:     friday,
			settings: &GlobalSettings{GlobalMaxParticipants: 30, Blocked: []DateString{friday}},
			cap:      open,
			want:     Availability{Status: StatusNotEligible},
		},
		{
			name:     "blocked wins over capacity",
			date:     thursday,
			settings: &GlobalSettings{GlobalMaxParticipants: 30, Blocked: []DateString{thursday}},
			cap:      open,
			want:     Availability{Status: StatusBlockedDate},
		},
		{
			name:     "sold out flag",
			date:     thursday,
			settings: &GlobalSettings{GlobalMaxParticipants: 30, SoldOut: []DateString{thursday}},
			cap:      open,
			want:     Availability{Status: StatusSoldOutDate},
		},
		{
			name:     "exhausted capacity reads as sold out without a flag",
			date:     thursday,
			settings: &GlobalSettings{GlobalMaxParticipants: 30},
			cap:      Capacity{EffectiveMax: 30, CurrentOccupancy: 30, AvailableSpots: 0},
			want:     Availability{Status: StatusSoldOutDate},
		},
		{
			name:     "available with remaining spots",
			date:     thursday,
			settings: &GlobalSettings{GlobalMaxParticipants: 30},
			cap:      Capacity{EffectiveMax: 30, CurrentOccupancy: 28, AvailableSpots: 2},
			want:     Availability{Status: StatusAvailable, AvailableSpots: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyDate(tt.date, tt.settings, tt.cap))
		})
	}
}
