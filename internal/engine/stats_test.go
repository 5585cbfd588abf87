package engine

import (
	"testing"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func interval(appID string, start, end time.Time) entity.UsageInterval {
	return entity.UsageInterval{AppID: appID, Start: start, End: end}
}

func day() time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	cfg := DefaultConfig()
	merged := map[string][]entity.UsageInterval{
		"chrome": {
			interval("chrome", at(9, 0), at(10, 0)),
		},
		"finder": {
			interval("finder", at(9, 0), at(9, 1)),
			interval("finder", at(10, 0), at(10, 0).Add(30*time.Second)),
		},
		"goland": {
			interval("goland", at(11, 0), at(13, 0)),
		},
	}

	summaries := cfg.Summarize(merged)

	// finder totals 1.5 minutes and is filtered out entirely
	require.Len(t, summaries, 2)
	assert.Equal(t, "goland", summaries[0].AppID)
	assert.Equal(t, 120.0, summaries[0].TotalMinutes)
	assert.Equal(t, "chrome", summaries[1].AppID)
	assert.Equal(t, 60.0, summaries[1].TotalMinutes)
}

func TestSummarizeTieOrder(t *testing.T) {
	cfg := DefaultConfig()
	merged := map[string][]entity.UsageInterval{
		"b.app": {interval("b.app", at(9, 0), at(9, 30))},
		"a.app": {interval("a.app", at(10, 0), at(10, 30))},
		"c.app": {interval("c.app", at(11, 0), at(11, 30))},
	}

	summaries := cfg.Summarize(merged)

	require.Len(t, summaries, 3)
	assert.Equal(t, "a.app", summaries[0].AppID)
	assert.Equal(t, "b.app", summaries[1].AppID)
	assert.Equal(t, "c.app", summaries[2].AppID)
}

func TestFilterSignificant(t *testing.T) {
	merged := map[string][]entity.UsageInterval{
		"chrome": {interval("chrome", at(9, 0), at(10, 0))},
		"goland": {
			interval("goland", at(11, 0), at(12, 0)),
			interval("goland", at(13, 0), at(14, 0)),
		},
		"finder": {interval("finder", at(9, 0), at(9, 1))},
	}
	summaries := []entity.AppUsageSummary{
		{AppID: "goland", TotalMinutes: 120},
		{AppID: "chrome", TotalMinutes: 60},
	}

	filtered := FilterSignificant(merged, summaries)

	require.Len(t, filtered, 3)
	assert.Equal(t, "goland", filtered[0].AppID)
	assert.Equal(t, "goland", filtered[1].AppID)
	assert.Equal(t, "chrome", filtered[2].AppID)
}

func TestUnionRanges(t *testing.T) {
	tests := []struct {
		name     string
		records  []entity.UsageInterval
		expected []entity.UsageInterval
	}{
		{
			name:     "empty",
			records:  nil,
			expected: nil,
		},
		{
			name: "overlapping cross-app records are joined",
			records: []entity.UsageInterval{
				interval("a", at(9, 0), at(9, 30)),
				interval("b", at(9, 20), at(9, 50)),
				interval("c", at(10, 0), at(10, 10)),
			},
			expected: []entity.UsageInterval{
				{Start: at(9, 0), End: at(9, 50)},
				{Start: at(10, 0), End: at(10, 10)},
			},
		},
		{
			name: "touching records are joined, gaps preserved regardless of size",
			records: []entity.UsageInterval{
				interval("a", at(9, 0), at(9, 30)),
				interval("b", at(9, 30), at(9, 40)),
				interval("c", at(9, 41), at(9, 50)),
			},
			expected: []entity.UsageInterval{
				{Start: at(9, 0), End: at(9, 40)},
				{Start: at(9, 41), End: at(9, 50)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnionRanges(tt.records))
		})
	}
}

func TestUnionRangesNoDoubleCounting(t *testing.T) {
	// two apps active simultaneously count once in the total
	records := []entity.UsageInterval{
		interval("a", at(9, 0), at(10, 0)),
		interval("b", at(9, 0), at(10, 0)),
	}

	ranges := UnionRanges(records)

	require.Len(t, ranges, 1)
	assert.Equal(t, time.Hour, ranges[0].Duration())
}

func TestComputeStats(t *testing.T) {
	cfg := DefaultConfig()
	records := []entity.UsageInterval{
		interval("a", at(9, 0), at(10, 0)),
		interval("b", at(10, 30), at(11, 0)),
	}

	stats := cfg.ComputeStats(records, at(8, 30), at(11, 30))

	assert.Equal(t, 90, stats.TotalActiveMinutes)
	assert.Equal(t, "1h30m", stats.TotalFormatted)

	require.Len(t, stats.IdleWindows, 3)
	assert.Equal(t, entity.IdleWindow{Start: at(8, 30), End: at(9, 0)}, stats.IdleWindows[0])
	assert.Equal(t, entity.IdleWindow{Start: at(10, 0), End: at(10, 30)}, stats.IdleWindows[1])
	assert.Equal(t, entity.IdleWindow{Start: at(11, 0), End: at(11, 30)}, stats.IdleWindows[2])
}

func TestComputeStatsShortIdleFiltered(t *testing.T) {
	cfg := DefaultConfig()
	records := []entity.UsageInterval{
		interval("a", at(9, 0), at(10, 0)),
		interval("a", at(10, 10), at(11, 0)),
	}

	stats := cfg.ComputeStats(records, at(9, 0), at(11, 0))

	// the 10 minute gap is below the idle threshold
	assert.Empty(t, stats.IdleWindows)
	assert.Equal(t, 110, stats.TotalActiveMinutes)
}

func TestComputeStatsEmpty(t *testing.T) {
	cfg := DefaultConfig()

	rangeStart, rangeEnd := cfg.ObservationWindow(nil, day())
	stats := cfg.ComputeStats(nil, rangeStart, rangeEnd)

	assert.Equal(t, 0, stats.TotalActiveMinutes)
	assert.Equal(t, "0m", stats.TotalFormatted)
	require.Len(t, stats.IdleWindows, 1)
	assert.Equal(t, at(10, 0), stats.IdleWindows[0].Start)
	assert.Equal(t, at(21, 0), stats.IdleWindows[0].End)
}

func TestIdleActiveComplementarity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinIdleWindow = time.Nanosecond // keep every gap so the tiling is exact

	records := []entity.UsageInterval{
		interval("a", at(9, 0), at(9, 45)),
		interval("b", at(9, 30), at(10, 15)),
		interval("c", at(11, 0), at(11, 30)),
	}
	rangeStart, rangeEnd := at(8, 0), at(12, 0)

	stats := cfg.ComputeStats(records, rangeStart, rangeEnd)

	var covered time.Duration
	for _, r := range stats.ActiveRanges {
		covered += r.Duration()
	}
	for _, w := range stats.IdleWindows {
		covered += w.Duration()
	}
	assert.Equal(t, rangeEnd.Sub(rangeStart), covered)
}

func TestObservationWindow(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name          string
		records       []entity.UsageInterval
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "no records falls back to default window",
			records:       nil,
			expectedStart: at(10, 0),
			expectedEnd:   at(21, 0),
		},
		{
			name: "data bounds padded",
			records: []entity.UsageInterval{
				interval("a", at(9, 0), at(17, 0)),
			},
			expectedStart: at(8, 30),
			expectedEnd:   at(17, 30),
		},
		{
			name: "padding clamped to the day",
			records: []entity.UsageInterval{
				interval("a", at(0, 10), at(23, 55)),
			},
			expectedStart: at(0, 0),
			expectedEnd:   day().Add(24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := cfg.ObservationWindow(tt.records, day())
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}
}
