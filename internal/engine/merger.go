package engine

import (
	"sort"

	"github.com/dinerozz/screen-time-backend/internal/entity"
)

// DropMalformed filters out events whose end is not strictly after their
// start. Such records are an expected artifact of fragmentary logging, so
// they are counted rather than surfaced as errors.
func DropMalformed(events []entity.UsageEvent) ([]entity.UsageEvent, int) {
	clean := make([]entity.UsageEvent, 0, len(events))
	dropped := 0
	for _, event := range events {
		if !event.End.After(event.Start) {
			dropped++
			continue
		}
		clean = append(clean, event)
	}
	return clean, dropped
}

// GroupByApp partitions events by application id. Group order is not
// significant; callers that need a canonical order sort summaries later.
func GroupByApp(events []entity.UsageEvent) map[string][]entity.UsageEvent {
	groups := make(map[string][]entity.UsageEvent)
	for _, event := range events {
		groups[event.AppID] = append(groups[event.AppID], event)
	}
	return groups
}

// MergeApp coalesces one application's events into disjoint intervals. Events
// separated by at most the application's gap tolerance become one interval;
// overlapping and fully nested events are absorbed via the max end extension.
// The result is chronological, and consecutive intervals are separated by
// strictly more than the tolerance.
func (c *Config) MergeApp(appID string, events []entity.UsageEvent) []entity.UsageInterval {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]entity.UsageEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	tolerance := c.ToleranceFor(appID)

	merged := make([]entity.UsageInterval, 0, len(sorted))
	current := entity.UsageInterval{AppID: appID, Start: sorted[0].Start, End: sorted[0].End}

	for _, event := range sorted[1:] {
		gap := event.Start.Sub(current.End) // negative when overlapping
		if gap <= tolerance {
			if event.End.After(current.End) {
				current.End = event.End
			}
		} else {
			merged = append(merged, current)
			current = entity.UsageInterval{AppID: appID, Start: event.Start, End: event.End}
		}
	}

	return append(merged, current)
}

// MergeAll runs the full merge step: discard malformed events, partition by
// application, coalesce each group. Returns the merged intervals per
// application and the number of discarded events.
func (c *Config) MergeAll(events []entity.UsageEvent) (map[string][]entity.UsageInterval, int) {
	clean, dropped := DropMalformed(events)

	merged := make(map[string][]entity.UsageInterval)
	for appID, group := range GroupByApp(clean) {
		merged[appID] = c.MergeApp(appID, group)
	}
	return merged, dropped
}
