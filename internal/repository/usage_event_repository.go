// internal/repository/usage_event_repository.go
package repository

import (
	"context"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"

	"github.com/dinerozz/screen-time-backend/internal/entity"
	"github.com/jmoiron/sqlx"
)

type UsageEventRepository interface {
	Create(ctx context.Context, event *entity.UsageEvent) error
	BatchCreate(ctx context.Context, events []entity.UsageEvent) error
	GetByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.UsageEvent, error)
	GetByFilter(ctx context.Context, filter entity.UsageEventFilter) ([]entity.UsageEvent, int, error)
	AvailableDates(ctx context.Context, loc *time.Location) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByDaySource(ctx context.Context, dayStart, dayEnd time.Time, source string) (int64, error)
}

type usageEventRepository struct {
	db *sqlx.DB
}

func NewUsageEventRepository(db *sqlx.DB) UsageEventRepository {
	return &usageEventRepository{db: db}
}

// eventRow is the storage shape: instants are kept as unix seconds so date
// arithmetic never depends on the driver's time formatting.
type eventRow struct {
	ID        string `db:"id"`
	AppID     string `db:"app_id"`
	StartTime int64  `db:"start_time"`
	EndTime   int64  `db:"end_time"`
	Source    string `db:"source"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func toRow(event *entity.UsageEvent) eventRow {
	return eventRow{
		ID:        event.ID.String(),
		AppID:     event.AppID,
		StartTime: event.Start.Unix(),
		EndTime:   event.End.Unix(),
		Source:    event.Source,
		CreatedAt: event.CreatedAt.Unix(),
		UpdatedAt: event.UpdatedAt.Unix(),
	}
}

func (r eventRow) toEntity(loc *time.Location) entity.UsageEvent {
	id, _ := uuid2.FromString(r.ID)
	return entity.UsageEvent{
		ID:        id,
		AppID:     r.AppID,
		Start:     time.Unix(r.StartTime, 0).In(loc),
		End:       time.Unix(r.EndTime, 0).In(loc),
		Source:    r.Source,
		CreatedAt: time.Unix(r.CreatedAt, 0).In(loc),
		UpdatedAt: time.Unix(r.UpdatedAt, 0).In(loc),
	}
}

const insertEventQuery = `
	INSERT INTO usage_events (id, app_id, start_time, end_time, source, created_at, updated_at)
	VALUES (:id, :app_id, :start_time, :end_time, :source, :created_at, :updated_at)`

func (r *usageEventRepository) Create(ctx context.Context, event *entity.UsageEvent) error {
	event.ID = uuid2.UUID(uuid.New())
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	_, err := r.db.NamedExecContext(ctx, insertEventQuery, toRow(event))
	return err
}

func (r *usageEventRepository) BatchCreate(ctx context.Context, events []entity.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows := make([]eventRow, 0, len(events))
	for i := range events {
		events[i].ID = uuid2.UUID(uuid.New())
		events[i].CreatedAt = time.Now()
		events[i].UpdatedAt = time.Now()
		rows = append(rows, toRow(&events[i]))
	}

	_, err = tx.NamedExecContext(ctx, insertEventQuery, rows)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *usageEventRepository) GetByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.UsageEvent, error) {
	var rows []eventRow
	query := `SELECT * FROM usage_events WHERE start_time >= ? AND start_time < ? ORDER BY start_time`

	err := r.db.SelectContext(ctx, &rows, query, dayStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, err
	}

	events := make([]entity.UsageEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEntity(dayStart.Location()))
	}
	return events, nil
}

func (r *usageEventRepository) GetByFilter(ctx context.Context, filter entity.UsageEventFilter) ([]entity.UsageEvent, int, error) {
	query := "SELECT * FROM usage_events WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM usage_events WHERE 1=1"
	args := []interface{}{}

	if filter.AppID != nil {
		query += " AND app_id = ?"
		countQuery += " AND app_id = ?"
		args = append(args, *filter.AppID)
	}
	if filter.Source != nil {
		query += " AND source = ?"
		countQuery += " AND source = ?"
		args = append(args, *filter.Source)
	}
	if filter.StartTime != nil {
		query += " AND start_time >= ?"
		countQuery += " AND start_time >= ?"
		args = append(args, filter.StartTime.Unix())
	}
	if filter.EndTime != nil {
		query += " AND start_time <= ?"
		countQuery += " AND start_time <= ?"
		args = append(args, filter.EndTime.Unix())
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY start_time DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	var rows []eventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, err
	}

	events := make([]entity.UsageEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEntity(time.Local))
	}
	return events, total, nil
}

func (r *usageEventRepository) AvailableDates(ctx context.Context, loc *time.Location) ([]string, error) {
	var starts []int64
	query := `SELECT start_time FROM usage_events ORDER BY start_time`

	if err := r.db.SelectContext(ctx, &starts, query); err != nil {
		return nil, err
	}

	var dates []string
	seen := make(map[string]bool)
	for _, start := range starts {
		date := time.Unix(start, 0).In(loc).Format("2006-01-02")
		if !seen[date] {
			seen[date] = true
			dates = append(dates, date)
		}
	}
	return dates, nil
}

func (r *usageEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM usage_events WHERE id = ?`, id.String())
	return err
}

// DeleteByDaySource clears one day's events from a given source so a reimport
// never duplicates rows.
func (r *usageEventRepository) DeleteByDaySource(ctx context.Context, dayStart, dayEnd time.Time, source string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM usage_events WHERE start_time >= ? AND start_time < ? AND source = ?`,
		dayStart.Unix(), dayEnd.Unix(), source)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
