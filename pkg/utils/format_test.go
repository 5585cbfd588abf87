package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{45, "45m"},
		{59, "59m"},
		{60, "1h0m"},
		{90, "1h30m"},
		{605, "10h5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMinutes(tt.minutes))
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-06-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("02.06.2025", time.UTC)
	assert.Error(t, err)
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), end)
}
