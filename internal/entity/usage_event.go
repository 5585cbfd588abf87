package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// Event sources stored alongside each usage event.
const (
	SourceAgent      = "agent"
	SourceKnowledgeC = "knowledgec"
)

type UsageEvent struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AppID     string    `json:"appId" db:"app_id" binding:"required"`
	Start     time.Time `json:"start" db:"start_time" binding:"required"`
	End       time.Time `json:"end" db:"end_time" binding:"required"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

type CreateUsageEventRequest struct {
	AppID  string    `json:"appId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Source string    `json:"source"`
}

type BatchCreateUsageEventRequest struct {
	Events []CreateUsageEventRequest `json:"events" binding:"required,dive"`
}

// UsageEventFilter фильтры для поиска событий
type UsageEventFilter struct {
	AppID     *string    `form:"appId"`
	Source    *string    `form:"source"`
	StartTime *time.Time `form:"startTime"`
	EndTime   *time.Time `form:"endTime"`
	Limit     int        `form:"limit"`
	Offset    int        `form:"offset"`
}
