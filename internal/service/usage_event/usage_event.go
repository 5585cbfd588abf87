// internal/service/usage_event_service.go
package service

import (
	"context"
	"fmt"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/dinerozz/screen-time-backend/internal/repository"
	"github.com/google/uuid"
)

type UsageEventService interface {
	CreateEvent(ctx context.Context, req entity.CreateUsageEventRequest) (*entity.UsageEvent, error)
	BatchCreateEvents(ctx context.Context, req entity.BatchCreateUsageEventRequest) error
	GetEvents(ctx context.Context, filter entity.UsageEventFilter) ([]entity.UsageEvent, *entity.PaginationInfo, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ValidateSource(source string) bool
}

type usageEventService struct {
	repo repository.UsageEventRepository
}

func NewUsageEventService(repo repository.UsageEventRepository) UsageEventService {
	return &usageEventService{
		repo: repo,
	}
}

// event sources
var validSources = map[string]bool{
	entity.SourceAgent:      true,
	entity.SourceKnowledgeC: true,
}

func (s *usageEventService) ValidateSource(source string) bool {
	return validSources[source]
}

// CreateEvent stores one raw usage event. Events with end before start are
// accepted on purpose: fragmentary records are an expected artifact of the
// trackers and the engine discards them at query time.
func (s *usageEventService) CreateEvent(ctx context.Context, req entity.CreateUsageEventRequest) (*entity.UsageEvent, error) {
	source := req.Source
	if source == "" {
		source = entity.SourceAgent
	}
	if !s.ValidateSource(source) {
		return nil, fmt.Errorf("invalid event source: %s", source)
	}

	event := &entity.UsageEvent{
		AppID:  req.AppID,
		Start:  req.Start,
		End:    req.End,
		Source: source,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create usage event: %w", err)
	}

	return event, nil
}

func (s *usageEventService) BatchCreateEvents(ctx context.Context, req entity.BatchCreateUsageEventRequest) error {
	if len(req.Events) == 0 {
		return fmt.Errorf("no events provided")
	}

	if len(req.Events) > 1000 {
		return fmt.Errorf("too many events, maximum is 1000")
	}

	var events []entity.UsageEvent

	for i, item := range req.Events {
		source := item.Source
		if source == "" {
			source = entity.SourceAgent
		}
		if !s.ValidateSource(source) {
			return fmt.Errorf("invalid event source at index %d: %s", i, source)
		}

		events = append(events, entity.UsageEvent{
			AppID:  item.AppID,
			Start:  item.Start,
			End:    item.End,
			Source: source,
		})
	}

	if err := s.repo.BatchCreate(ctx, events); err != nil {
		return fmt.Errorf("failed to batch create usage events: %w", err)
	}

	return nil
}

func (s *usageEventService) GetEvents(ctx context.Context, filter entity.UsageEventFilter) ([]entity.UsageEvent, *entity.PaginationInfo, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Limit > 500 {
		filter.Limit = 500
	}

	events, total, err := s.repo.GetByFilter(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get usage events: %w", err)
	}

	totalPages := total / filter.Limit
	if total%filter.Limit > 0 {
		totalPages++
	}

	pagination := &entity.PaginationInfo{
		Page:       filter.Offset/filter.Limit + 1,
		PerPage:    filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return events, pagination, nil
}

func (s *usageEventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete usage event: %w", err)
	}
	return nil
}
