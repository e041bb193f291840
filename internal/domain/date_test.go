package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2026-03-05").Validate())
	assert.Error(t, DateString("05/03/2026").Validate())
	assert.Error(t, DateString("2026-13-01").Validate())
	assert.Error(t, DateString("").Validate())
}

func TestDateString_IsTourDay(t *testing.T) {
	assert.True(t, DateString("2026-03-05").IsTourDay())  // Thursday
	assert.False(t, DateString("2026-03-06").IsTourDay()) // Friday
	assert.False(t, DateString("garbage").IsTourDay())
}

func TestDateString_Before(t *testing.T) {
	assert.True(t, DateString("2026-03-05").Before("2026-03-12"))
	assert.False(t, DateString("2026-03-12").Before("2026-03-05"))
	assert.False(t, DateString("2026-03-05").Before("2026-03-05"))
}

func TestNewDateString_RoundTrip(t *testing.T) {
	d := NewDateString(time.Date(2026, 3, 5, 23, 45, 0, 0, time.Local))
	assert.Equal(t, DateString("2026-03-05"), d)

	parsed, err := d.Parse()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.Local), parsed)
}
