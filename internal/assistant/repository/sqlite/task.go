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

const taskColumns = `id, task, deadline, category, priority, done, created_at, completed_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	task := model.Task{
		ID:        uuid.NewString(),
		Task:      opt.Task,
		Deadline:  opt.Deadline,
		Category:  opt.Category,
		Priority:  opt.Priority,
		CreatedAt: time.Now().UTC(),
	}
	if task.Priority == 0 {
		task.Priority = model.PriorityMedium
	}

	const query = `
		INSERT INTO tasks (id, task, deadline, category, priority, done, created_at)
		VALUES (?, ?, ?, ?, ?, FALSE, ?)`

	if _, err := r.db.ExecContext(ctx, query,
		task.ID, task.Task, task.Deadline, task.Category, task.Priority, task.CreatedAt,
	); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// ListTasks returns tasks matching the options, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	conds := []string{"1=1"}
	args := []any{}

	if opt.Done != nil {
		conds = append(conds, "done = ?")
		args = append(args, *opt.Done)
	}
	if opt.MinPriority > 0 {
		conds = append(conds, "priority >= ?")
		args = append(args, opt.MinPriority)
	}
	if opt.DueOn != "" {
		conds = append(conds, "deadline = ?")
		args = append(args, opt.DueOn)
	}
	if opt.DueBefore != "" {
		conds = append(conds, "deadline != '' AND deadline < ? AND done = FALSE")
		args = append(args, opt.DueBefore)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC`,
		taskColumns, strings.Join(conds, " AND "),
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// CompleteTask marks the task done and stamps completed_at.
// Returns ErrNotFound when the id does not exist.
func (r *implRepository) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	completedAt := time.Now().UTC()

	const query = `UPDATE tasks SET done = TRUE, completed_at = ? WHERE id = ?`
	result, err := r.db.ExecContext(ctx, query, completedAt, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if affected, err := result.RowsAffected(); err != nil || affected == 0 {
		return model.Task{}, repo.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ?`, taskColumns), id)
	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "%s reload: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		task      model.Task
		deadline  sql.NullString
		category  sql.NullString
		completed sql.NullTime
	)
	err := s.Scan(&task.ID, &task.Task, &deadline, &category, &task.Priority, &task.Done, &task.CreatedAt, &completed)
	if err != nil {
		return model.Task{}, err
	}
	task.Deadline = deadline.String
	task.Category = category.String
	if completed.Valid {
		task.CompletedAt = &completed.Time
	}
	return task, nil
}
