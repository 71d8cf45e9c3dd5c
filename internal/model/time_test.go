package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatHour(t *testing.T) {
	require.Equal(t, "08:00", FormatHour(8))
	require.Equal(t, "18:00", FormatHour(18))
	require.Equal(t, "00:00", FormatHour(0))
}

func TestSinceMidnight(t *testing.T) {
	ts := time.Date(2026, 4, 15, 17, 30, 45, 0, time.UTC)
	require.Equal(t, 17*time.Hour+30*time.Minute+45*time.Second, SinceMidnight(ts))
	require.Equal(t, time.Duration(0), SinceMidnight(DateOf(ts)))
}

func TestHourOfDay(t *testing.T) {
	require.Equal(t, 18*time.Hour, HourOfDay(18))
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2026, 4, 15, 17, 30, 45, 123, time.UTC)
	require.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), DateOf(ts))
}
