package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTourDate(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want DateString
	}{
		{
			name: "monday picks this week's thursday",
			now:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local),
			want: "2026-03-05",
		},
		{
			name: "thursday morning counts as today",
			now:  time.Date(2026, 3, 5, 9, 0, 0, 0, time.Local),
			want: "2026-03-05",
		},
		{
			name: "thursday just before cutoff still counts",
			now:  time.Date(2026, 3, 5, 19, 59, 0, 0, time.Local),
			want: "2026-03-05",
		},
		{
			name: "thursday at cutoff rolls to next week",
			now:  time.Date(2026, 3, 5, 20, 0, 0, 0, time.Local),
			want: "2026-03-12",
		},
		{
			name: "friday picks next week's thursday",
			now:  time.Date(2026, 3, 6, 8, 0, 0, 0, time.Local),
			want: "2026-03-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextTourDate(tt.now))
		})
	}
}

func TestUpcomingTourDates(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local) // Monday

	entries := UpcomingTourDates(now, 12)
	require.Len(t, entries, 12)

	assert.Equal(t, DateString("2026-03-05"), entries[0].Date)
	assert.Equal(t, 5, entries[0].Day)
	assert.Equal(t, "מרץ", entries[0].MonthLabel)

	// Each entry is exactly one week after the previous
	for i := 1; i < len(entries); i++ {
		prev, err := entries[i-1].Date.Parse()
		require.NoError(t, err)
		cur, err := entries[i].Date.Parse()
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 7), cur)
		assert.Equal(t, TourWeekday, cur.Weekday())
	}

	// Crosses into April with the abbreviated label
	assert.Equal(t, DateString("2026-04-02"), entries[4].Date)
	assert.Equal(t, "אפר׳", entries[4].MonthLabel)
}

func TestUpcomingTourDates_NonPositiveCount(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	assert.Nil(t, UpcomingTourDates(now, 0))
	assert.Nil(t, UpcomingTourDates(now, -3))
}

func TestFormatDateHebrew(t *testing.T) {
	assert.Equal(t, "5 מרץ", FormatDateHebrew("2026-03-05"))
	assert.Equal(t, "1 ינואר", FormatDateHebrew("2026-01-01"))
	assert.Equal(t, "27 אוגוסט", FormatDateHebrew("2026-08-27"))

	// Unparseable input falls back to the raw string
	assert.Equal(t, "not-a-date", FormatDateHebrew("not-a-date"))
}
