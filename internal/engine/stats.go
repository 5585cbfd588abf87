package engine

import (
	"sort"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
)

// Default observation window when a day has no events at all.
const (
	defaultWindowStartHour = 10
	defaultWindowEndHour   = 21
)

// Summarize computes per-application totals, drops applications below the
// minimum usage threshold and orders the survivors by total duration
// descending. Equal totals are ordered lexicographically by application id so
// the row order is deterministic.
func (c *Config) Summarize(merged map[string][]entity.UsageInterval) []entity.AppUsageSummary {
	summaries := make([]entity.AppUsageSummary, 0, len(merged))
	for appID, intervals := range merged {
		var total time.Duration
		for _, interval := range intervals {
			total += interval.Duration()
		}
		if total < c.MinAppUsage {
			continue
		}
		summaries = append(summaries, entity.AppUsageSummary{
			AppID:        appID,
			TotalMinutes: utils.RoundToTwoDecimals(total.Minutes()),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalMinutes != summaries[j].TotalMinutes {
			return summaries[i].TotalMinutes > summaries[j].TotalMinutes
		}
		return summaries[i].AppID < summaries[j].AppID
	})
	return summaries
}

// FilterSignificant flattens the merged intervals down to surviving
// applications, in canonical summary order, chronological within each
// application. This is the row set the visualization renders.
func FilterSignificant(merged map[string][]entity.UsageInterval, summaries []entity.AppUsageSummary) []entity.UsageInterval {
	var filtered []entity.UsageInterval
	for _, summary := range summaries {
		filtered = append(filtered, merged[summary.AppID]...)
	}
	return filtered
}

// UnionRanges merges intervals across all applications into the global "any
// activity" timeline. Unlike the per-application merge there is no gap
// tolerance here: only true overlaps are joined.
func UnionRanges(records []entity.UsageInterval) []entity.UsageInterval {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]entity.UsageInterval, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	ranges := make([]entity.UsageInterval, 0, len(sorted))
	current := entity.UsageInterval{Start: sorted[0].Start, End: sorted[0].End}

	for _, record := range sorted[1:] {
		if !record.Start.After(current.End) {
			if record.End.After(current.End) {
				current.End = record.End
			}
		} else {
			ranges = append(ranges, current)
			current = entity.UsageInterval{Start: record.Start, End: record.End}
		}
	}

	return append(ranges, current)
}

// ObservationWindow derives the [rangeStart, rangeEnd] span from the data
// bounds padded on both sides, clamped to the queried day. With no records
// it falls back to a fixed 10:00-21:00 window on that day.
func (c *Config) ObservationWindow(records []entity.UsageInterval, day time.Time) (time.Time, time.Time) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	if len(records) == 0 {
		return dayStart.Add(defaultWindowStartHour * time.Hour),
			dayStart.Add(defaultWindowEndHour * time.Hour)
	}

	earliest := records[0].Start
	latest := records[0].End
	for _, record := range records[1:] {
		if record.Start.Before(earliest) {
			earliest = record.Start
		}
		if record.End.After(latest) {
			latest = record.End
		}
	}

	rangeStart := earliest.Add(-c.WindowPadding)
	if rangeStart.Before(dayStart) {
		rangeStart = dayStart
	}
	rangeEnd := latest.Add(c.WindowPadding)
	if rangeEnd.After(dayEnd) {
		rangeEnd = dayEnd
	}
	return rangeStart, rangeEnd
}

// ComputeStats builds the global merged timeline over the given records and
// derives the total active duration plus significant idle windows inside
// [rangeStart, rangeEnd].
func (c *Config) ComputeStats(records []entity.UsageInterval, rangeStart, rangeEnd time.Time) entity.TimelineStats {
	ranges := UnionRanges(records)

	var total time.Duration
	for _, r := range ranges {
		total += r.Duration()
	}
	totalMinutes := int(total.Round(time.Minute) / time.Minute)

	var idle []entity.IdleWindow
	if len(ranges) == 0 {
		idle = append(idle, entity.IdleWindow{Start: rangeStart, End: rangeEnd})
	} else {
		if ranges[0].Start.After(rangeStart) {
			idle = append(idle, entity.IdleWindow{Start: rangeStart, End: ranges[0].Start})
		}
		for i := 0; i < len(ranges)-1; i++ {
			if ranges[i+1].Start.After(ranges[i].End) {
				idle = append(idle, entity.IdleWindow{Start: ranges[i].End, End: ranges[i+1].Start})
			}
		}
		last := ranges[len(ranges)-1]
		if last.End.Before(rangeEnd) {
			idle = append(idle, entity.IdleWindow{Start: last.End, End: rangeEnd})
		}
	}

	significant := idle[:0]
	for _, window := range idle {
		if window.Duration() >= c.MinIdleWindow {
			significant = append(significant, window)
		}
	}

	return entity.TimelineStats{
		TotalActiveMinutes: totalMinutes,
		TotalFormatted:     utils.FormatMinutes(totalMinutes),
		ActiveRanges:       ranges,
		IdleWindows:        significant,
		RangeStart:         rangeStart,
		RangeEnd:           rangeEnd,
	}
}
