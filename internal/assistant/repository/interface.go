package repository

import (
	"context"

	"personal-assistant/internal/model"
)

// Repository is the composed interface for the assistant's data stores.
type Repository interface {
	TaskRepository
	BudgetRepository
	ScheduleRepository
}

// TaskRepository defines data access for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	CompleteTask(ctx context.Context, id string) (model.Task, error)
}

// BudgetRepository defines data access for budget entries. SummarizeMonth
// aggregates in SQL rather than in Go so callers never load a full month.
type BudgetRepository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (model.BudgetEntry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]model.BudgetEntry, error)
	SummarizeMonth(ctx context.Context, month string) (model.BudgetSummary, error)
}

// ScheduleRepository defines data access for schedule events.
type ScheduleRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.ScheduleEvent, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.ScheduleEvent, error)
}
