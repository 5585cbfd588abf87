package engine

import (
	"testing"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 2, hour, min, 0, 0, time.UTC)
}

func event(appID string, start, end time.Time) entity.UsageEvent {
	return entity.UsageEvent{AppID: appID, Start: start, End: end}
}

func TestDropMalformed(t *testing.T) {
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 5)),
		event("A", at(9, 10), at(9, 10)), // zero length
		event("B", at(9, 20), at(9, 15)), // end before start
		event("B", at(9, 30), at(9, 40)),
	}

	clean, dropped := DropMalformed(events)

	assert.Equal(t, 2, dropped)
	require.Len(t, clean, 2)
	assert.Equal(t, at(9, 0), clean[0].Start)
	assert.Equal(t, at(9, 30), clean[1].Start)
}

func TestGroupByApp(t *testing.T) {
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 5)),
		event("B", at(9, 1), at(9, 6)),
		event("A", at(9, 10), at(9, 15)),
	}

	groups := GroupByApp(events)

	require.Len(t, groups, 2)
	assert.Len(t, groups["A"], 2)
	assert.Len(t, groups["B"], 1)
}

func TestMergeApp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GapToleranceOverrides = map[string]time.Duration{
		"meet": 10 * time.Minute,
	}

	tests := []struct {
		name     string
		appID    string
		events   []entity.UsageEvent
		expected []entity.UsageInterval
	}{
		{
			name:     "empty group",
			appID:    "A",
			events:   nil,
			expected: nil,
		},
		{
			name:  "single event",
			appID: "A",
			events: []entity.UsageEvent{
				event("A", at(9, 0), at(9, 5)),
			},
			expected: []entity.UsageInterval{
				{AppID: "A", Start: at(9, 0), End: at(9, 5)},
			},
		},
		{
			name:  "small gap merged, large gap split",
			appID: "A",
			events: []entity.UsageEvent{
				event("A", at(9, 0), at(9, 5)),
				event("A", at(9, 6), at(9, 10)),
				event("A", at(9, 30), at(9, 40)),
			},
			expected: []entity.UsageInterval{
				{AppID: "A", Start: at(9, 0), End: at(9, 10)},
				{AppID: "A", Start: at(9, 30), End: at(9, 40)},
			},
		},
		{
			name:  "meeting app uses wider tolerance",
			appID: "meet",
			events: []entity.UsageEvent{
				event("meet", at(9, 0), at(9, 5)),
				event("meet", at(9, 12), at(9, 20)),
			},
			expected: []entity.UsageInterval{
				{AppID: "meet", Start: at(9, 0), End: at(9, 20)},
			},
		},
		{
			name:  "nested event absorbed",
			appID: "A",
			events: []entity.UsageEvent{
				event("A", at(9, 0), at(10, 0)),
				event("A", at(9, 10), at(9, 20)),
			},
			expected: []entity.UsageInterval{
				{AppID: "A", Start: at(9, 0), End: at(10, 0)},
			},
		},
		{
			name:  "unsorted input",
			appID: "A",
			events: []entity.UsageEvent{
				event("A", at(9, 30), at(9, 40)),
				event("A", at(9, 0), at(9, 5)),
				event("A", at(9, 6), at(9, 10)),
			},
			expected: []entity.UsageInterval{
				{AppID: "A", Start: at(9, 0), End: at(9, 10)},
				{AppID: "A", Start: at(9, 30), End: at(9, 40)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := cfg.MergeApp(tt.appID, tt.events)
			assert.Equal(t, tt.expected, merged)
		})
	}
}

func TestMergeAppIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 5)),
		event("A", at(9, 6), at(9, 10)),
		event("A", at(9, 30), at(9, 40)),
		event("A", at(10, 30), at(11, 0)),
	}

	merged := cfg.MergeApp("A", events)

	remergeInput := make([]entity.UsageEvent, 0, len(merged))
	for _, interval := range merged {
		remergeInput = append(remergeInput, event(interval.AppID, interval.Start, interval.End))
	}

	assert.Equal(t, merged, cfg.MergeApp("A", remergeInput))
}

func TestMergeAppDisjointness(t *testing.T) {
	cfg := DefaultConfig()
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 30)),
		event("A", at(9, 10), at(9, 20)),
		event("A", at(9, 29), at(9, 45)),
		event("A", at(9, 50), at(10, 0)),
		event("A", at(10, 10), at(10, 15)),
		event("A", at(10, 30), at(10, 40)),
	}

	merged := cfg.MergeApp("A", events)

	for i := 1; i < len(merged); i++ {
		gap := merged[i].Start.Sub(merged[i-1].End)
		assert.Greater(t, gap, cfg.ToleranceFor("A"),
			"intervals %d and %d are closer than the tolerance", i-1, i)
	}
}

func TestMergeAppDurationBounds(t *testing.T) {
	cfg := DefaultConfig()
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 10)),
		event("A", at(9, 5), at(9, 15)),
		event("A", at(9, 40), at(9, 50)),
	}

	merged := cfg.MergeApp("A", events)

	var total, rawSum time.Duration
	var longest time.Duration
	for _, interval := range merged {
		total += interval.Duration()
	}
	for _, e := range events {
		rawSum += e.End.Sub(e.Start)
		if d := e.End.Sub(e.Start); d > longest {
			longest = d
		}
	}

	assert.GreaterOrEqual(t, total, longest)
	assert.LessOrEqual(t, total, rawSum)
}

func TestMergeAll(t *testing.T) {
	cfg := DefaultConfig()
	events := []entity.UsageEvent{
		event("A", at(9, 0), at(9, 5)),
		event("A", at(9, 6), at(9, 10)),
		event("B", at(9, 0), at(9, 20)),
		event("B", at(10, 0), at(9, 0)), // malformed
	}

	merged, dropped := cfg.MergeAll(events)

	assert.Equal(t, 1, dropped)
	require.Len(t, merged, 2)
	assert.Equal(t, []entity.UsageInterval{{AppID: "A", Start: at(9, 0), End: at(9, 10)}}, merged["A"])
	assert.Equal(t, []entity.UsageInterval{{AppID: "B", Start: at(9, 0), End: at(9, 20)}}, merged["B"])
}

func TestMergeAllEmpty(t *testing.T) {
	cfg := DefaultConfig()

	merged, dropped := cfg.MergeAll(nil)

	assert.Equal(t, 0, dropped)
	assert.Empty(t, merged)
}
