package entity

import "time"

// UsageInterval is a contiguous usage span for one application after merging.
// At the global level AppID is empty ("any application").
type UsageInterval struct {
	AppID string    `json:"appId,omitempty"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (i UsageInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

type AppUsageSummary struct {
	AppID        string  `json:"appId"`
	DisplayName  string  `json:"displayName"`
	TotalMinutes float64 `json:"totalMinutes"`
}

type IdleWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w IdleWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// TimelineStats is the statistics bundle for one day: total active time over
// the union of all applications' intervals plus significant idle windows
// inside the observation window.
type TimelineStats struct {
	TotalActiveMinutes int             `json:"totalActiveMinutes"`
	TotalFormatted     string          `json:"totalFormatted"`
	ActiveRanges       []UsageInterval `json:"activeRanges"`
	IdleWindows        []IdleWindow    `json:"idleWindows"`
	RangeStart         time.Time       `json:"rangeStart"`
	RangeEnd           time.Time       `json:"rangeEnd"`
}

type TimelineEntry struct {
	AppID       string    `json:"appId"`
	DisplayName string    `json:"displayName"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// DayTimeline is everything the visualization needs for one calendar day.
type DayTimeline struct {
	Date          string            `json:"date"`
	Entries       []TimelineEntry   `json:"entries"`
	Summaries     []AppUsageSummary `json:"summaries"`
	Stats         TimelineStats     `json:"stats"`
	DroppedEvents int               `json:"droppedEvents"`
}
