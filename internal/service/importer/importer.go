package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	"github.com/dinerozz/screen-time-backend/pkg/utils"
)

type ImportResult struct {
	Date     string `json:"date"`
	Imported int    `json:"imported"`
	Replaced int64  `json:"replaced"`
}

type ImporterService interface {
	ImportDay(ctx context.Context, date string) (*ImportResult, error)
	AvailableDates(ctx context.Context) ([]string, error)
}

type importerService struct {
	events    repository.UsageEventRepository
	knowledge repository.KnowledgeRepository
	loc       *time.Location
}

func NewImporterService(events repository.UsageEventRepository, knowledge repository.KnowledgeRepository, loc *time.Location) ImporterService {
	return &importerService{
		events:    events,
		knowledge: knowledge,
		loc:       loc,
	}
}

// ImportDay copies one day of the Screen Time usage stream into the app
// store. Previously imported rows for that day are replaced so the command
// can be re-run safely.
func (s *importerService) ImportDay(ctx context.Context, date string) (*ImportResult, error) {
	day, err := utils.ParseDay(date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}

	dayStart, dayEnd := utils.DayBounds(day)
	events, err := s.knowledge.GetByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge database: %w", err)
	}

	replaced, err := s.events.DeleteByDaySource(ctx, dayStart, dayEnd, entity.SourceKnowledgeC)
	if err != nil {
		return nil, fmt.Errorf("failed to clear previous import: %w", err)
	}

	if len(events) > 0 {
		if err := s.events.BatchCreate(ctx, events); err != nil {
			return nil, fmt.Errorf("failed to store imported events: %w", err)
		}
	}

	return &ImportResult{
		Date:     date,
		Imported: len(events),
		Replaced: replaced,
	}, nil
}

func (s *importerService) AvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.knowledge.AvailableDates(ctx, s.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge dates: %w", err)
	}
	return dates, nil
}
