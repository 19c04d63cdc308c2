package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "UTC", Location("UTC").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2022, 1, 20, 23, 59, 0, 0, time.UTC)

	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2022, 1, 20, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2022, 1, 21, 0, 0, 0, 0, time.UTC), end)
}

func TestSameDayUsesReferenceLocation(t *testing.T) {
	sp := Location(DefaultTimezone)

	// 01:30 UTC on the 21st is still the 20th in Sao Paulo (UTC-3).
	late := time.Date(2022, 1, 21, 1, 30, 0, 0, time.UTC)

	assert.True(t, SameDay(late, time.Date(2022, 1, 20, 8, 0, 0, 0, sp)))
	assert.False(t, SameDay(late, time.Date(2022, 1, 21, 8, 0, 0, 0, sp)))
	assert.True(t, SameDay(late, time.Date(2022, 1, 21, 8, 0, 0, 0, time.UTC)))
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2022, 1, 20, 8, 0, 0, 0, time.UTC)
	var c Clock = ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, c.Now())
	assert.Equal(t, "2022-01-20", DateKey(c.Now()))
}
