// Package timeline assembles the per-day usage timeline: raw events from the
// store are normalized by the engine and decorated with display names.
package timeline

import (
	"context"
	"fmt"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/engine"
	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	"github.com/dinerozz/screen-time-backend/pkg/displayname"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
)

type TimelineService interface {
	GetDayTimeline(ctx context.Context, date string) (*entity.DayTimeline, error)
	GetDayStats(ctx context.Context, date string) (*entity.TimelineStats, error)
	AvailableDates(ctx context.Context) ([]string, error)
}

type timelineService struct {
	repo   repository.UsageEventRepository
	engine *engine.Config
	names  *displayname.Resolver
	loc    *time.Location
}

func NewTimelineService(repo repository.UsageEventRepository, engineCfg *engine.Config, names *displayname.Resolver, loc *time.Location) TimelineService {
	return &timelineService{
		repo:   repo,
		engine: engineCfg,
		names:  names,
		loc:    loc,
	}
}

// GetDayTimeline runs the full pipeline for one calendar day: fetch raw
// events, merge per application, filter significant applications, compute
// the global stats, and resolve display names.
func (s *timelineService) GetDayTimeline(ctx context.Context, date string) (*entity.DayTimeline, error) {
	day, err := utils.ParseDay(date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	dayStart, dayEnd := utils.DayBounds(day)
	events, err := s.repo.GetByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load events for %s: %w", date, err)
	}

	merged, dropped := s.engine.MergeAll(events)
	summaries := s.engine.Summarize(merged)
	filtered := engine.FilterSignificant(merged, summaries)

	rangeStart, rangeEnd := s.engine.ObservationWindow(filtered, day)
	stats := s.engine.ComputeStats(filtered, rangeStart, rangeEnd)

	for i := range summaries {
		summaries[i].DisplayName = s.names.Resolve(summaries[i].AppID)
	}

	entries := make([]entity.TimelineEntry, 0, len(filtered))
	for _, interval := range filtered {
		entries = append(entries, entity.TimelineEntry{
			AppID:       interval.AppID,
			DisplayName: s.names.Resolve(interval.AppID),
			Start:       interval.Start,
			End:         interval.End,
		})
	}

	return &entity.DayTimeline{
		Date:          date,
		Entries:       entries,
		Summaries:     summaries,
		Stats:         stats,
		DroppedEvents: dropped,
	}, nil
}

func (s *timelineService) GetDayStats(ctx context.Context, date string) (*entity.TimelineStats, error) {
	timeline, err := s.GetDayTimeline(ctx, date)
	if err != nil {
		return nil, err
	}
	return &timeline.Stats, nil
}

func (s *timelineService) AvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.repo.AvailableDates(ctx, s.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to load available dates: %w", err)
	}
	return dates, nil
}
