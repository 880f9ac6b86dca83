package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestMockClock_FixedTime(t *testing.T) {
	fixed := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	clock := NewMockClock(fixed)

	assert.Equal(t, fixed, clock.Now())
	assert.Equal(t, fixed, clock.Now(), "repeated reads must not drift")
}

func TestMockClock_FromString(t *testing.T) {
	clock := NewMockClockFromString("2026-01-10T08:00:00Z")

	assert.Equal(t, time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC), clock.Now())
}

func TestMockClock_FromStringPanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("not a timestamp")
	})
}

func TestMockClock_SetAndAdvance(t *testing.T) {
	clock := NewMockClockFromString("2026-01-10T08:00:00Z")

	clock.Advance(2 * time.Hour)
	assert.Equal(t, 10, clock.Now().Hour())

	clock.AdvanceDays(3)
	assert.Equal(t, 13, clock.Now().Day())

	reset := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(reset)
	assert.Equal(t, reset, clock.Now())
}

func TestToday_TruncatesToMidnightUTC(t *testing.T) {
	clock := NewMockClockFromString("2026-01-10T23:45:12Z")

	today := Today(clock)

	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), today)
}

func TestToday_ConvertsZoneBeforeTruncating(t *testing.T) {
	// 23:30 in UTC-5 is 04:30 the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	clock := NewMockClock(time.Date(2026, 1, 10, 23, 30, 0, 0, loc))

	today := Today(clock)

	require.Equal(t, time.UTC, today.Location())
	assert.Equal(t, time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), today)
}
