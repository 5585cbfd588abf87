package repository

import (
	"context"
	"time"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/jmoiron/sqlx"
)

// macOS stores instants as seconds since 2001-01-01 00:00:00 UTC.
const macOSEpochOffset = 978307200

type KnowledgeRepository interface {
	GetByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.UsageEvent, error)
	AvailableDates(ctx context.Context, loc *time.Location) ([]string, error)
}

type knowledgeRepository struct {
	db *sqlx.DB
}

func NewKnowledgeRepository(db *sqlx.DB) KnowledgeRepository {
	return &knowledgeRepository{db: db}
}

func toMacSeconds(t time.Time) float64 {
	return float64(t.Unix() - macOSEpochOffset)
}

func fromMacSeconds(s float64, loc *time.Location) time.Time {
	return time.Unix(macOSEpochOffset+int64(s), 0).In(loc)
}

// GetByDay reads one day's application usage stream from the Screen Time
// database. Day bounds are converted to the vendor epoch on the Go side so
// the result never depends on the sqlite process timezone.
func (r *knowledgeRepository) GetByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.UsageEvent, error) {
	type usageRow struct {
		AppID     string  `db:"app_id"`
		StartTime float64 `db:"start_time"`
		EndTime   float64 `db:"end_time"`
	}

	query := `
		SELECT
			ZOBJECT.ZVALUESTRING as app_id,
			ZOBJECT.ZSTARTDATE as start_time,
			ZOBJECT.ZENDDATE as end_time
		FROM
			ZOBJECT
		WHERE
			ZSTREAMNAME = '/app/usage'
			AND ZOBJECT.ZSTARTDATE >= ? AND ZOBJECT.ZSTARTDATE < ?
			AND ZOBJECT.ZVALUESTRING IS NOT NULL
		ORDER BY
			ZOBJECT.ZSTARTDATE`

	var rows []usageRow
	err := r.db.SelectContext(ctx, &rows, query, toMacSeconds(dayStart), toMacSeconds(dayEnd))
	if err != nil {
		return nil, err
	}

	loc := dayStart.Location()
	events := make([]entity.UsageEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, entity.UsageEvent{
			AppID:  row.AppID,
			Start:  fromMacSeconds(row.StartTime, loc),
			End:    fromMacSeconds(row.EndTime, loc),
			Source: entity.SourceKnowledgeC,
		})
	}
	return events, nil
}

func (r *knowledgeRepository) AvailableDates(ctx context.Context, loc *time.Location) ([]string, error) {
	var starts []float64
	query := `
		SELECT ZOBJECT.ZSTARTDATE
		FROM ZOBJECT
		WHERE ZSTREAMNAME = '/app/usage' AND ZOBJECT.ZVALUESTRING IS NOT NULL
		ORDER BY ZOBJECT.ZSTARTDATE`

	if err := r.db.SelectContext(ctx, &starts, query); err != nil {
		return nil, err
	}

	var dates []string
	seen := make(map[string]bool)
	for _, start := range starts {
		date := fromMacSeconds(start, loc).Format("2006-01-02")
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	return dates, nil
}
