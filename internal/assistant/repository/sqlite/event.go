package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
)

const eventColumns = `id, title, description, start_time, end_time, location, reminder_minutes, created_at`

// CreateEvent inserts a new schedule event and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.ScheduleEvent, error) {
	event := model.ScheduleEvent{
		ID:              uuid.NewString(),
		Title:           opt.Title,
		Description:     opt.Description,
		StartTime:       opt.StartTime,
		EndTime:         opt.EndTime,
		Location:        opt.Location,
		ReminderMinutes: opt.ReminderMinutes,
		CreatedAt:       time.Now().UTC(),
	}
	if event.ReminderMinutes == 0 {
		event.ReminderMinutes = model.DefaultReminderMinutes
	}

	var endTime any
	if event.EndTime != nil {
		endTime = *event.EndTime
	}

	const query = `
		INSERT INTO schedule_events (id, title, description, start_time, end_time, location, reminder_minutes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		event.ID, event.Title, event.Description, event.StartTime, endTime, event.Location, event.ReminderMinutes, event.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.ScheduleEvent{}, repo.ErrFailedToInsert
	}
	return event, nil
}

// ListEvents returns events in the [From, To) window ordered by start time.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.ScheduleEvent, error) {
	conds := []string{"1=1"}
	args := []any{}

	if !opt.From.IsZero() {
		conds = append(conds, "start_time >= ?")
		args = append(args, opt.From)
	}
	if !opt.To.IsZero() {
		conds = append(conds, "start_time < ?")
		args = append(args, opt.To)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM schedule_events WHERE %s ORDER BY start_time ASC`,
		eventColumns, strings.Join(conds, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	events := make([]model.ScheduleEvent, 0)
	for rows.Next() {
		var (
			event       model.ScheduleEvent
			description sql.NullString
			endTime     sql.NullTime
			location    sql.NullString
		)
		if err := rows.Scan(&event.ID, &event.Title, &description, &event.StartTime, &endTime, &location, &event.ReminderMinutes, &event.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		event.Description = description.String
		event.Location = location.String
		if endTime.Valid {
			event.EndTime = &endTime.Time
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
