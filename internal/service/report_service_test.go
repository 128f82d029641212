package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	midnight := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)

	start, end, label := periodRange("today", now)
	assert.Equal(t, midnight, start)
	assert.Equal(t, midnight.Add(24*time.Hour-time.Nanosecond), end)
	assert.Equal(t, "Hari Ini", label)

	start, end, label = periodRange("week", now)
	assert.Equal(t, midnight.AddDate(0, 0, -7), start)
	assert.Equal(t, now, end)
	assert.Equal(t, "7 Hari Terakhir", label)

	start, _, _ = periodRange("month", now)
	assert.Equal(t, midnight.AddDate(0, -1, 0), start)

	start, _, _ = periodRange("year", now)
	assert.Equal(t, midnight.AddDate(-1, 0, 0), start)

	// period tidak dikenal jatuh ke "today"
	start, _, label = periodRange("decade", now)
	assert.Equal(t, midnight, start)
	assert.Equal(t, "Hari Ini", label)
}
