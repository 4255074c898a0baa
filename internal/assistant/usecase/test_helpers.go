package usecase

import (
	"context"
	"testing"
	"time"

	"personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
	"personal-assistant/internal/suggest"
	"personal-assistant/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo implements repository.Repository with overridable funcs and
// recording of writes.
type mockRepo struct {
	createdTasks   []repository.CreateTaskOptions
	createdEntries []repository.CreateEntryOptions
	createdEvents  []repository.CreateEventOptions
	completedIDs   []string

	listTasks      func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error)
	summarizeMonth func(ctx context.Context, month string) (model.BudgetSummary, error)
	listEvents     func(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error)
	createTaskErr  error
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createTaskErr != nil {
		return model.Task{}, m.createTaskErr
	}
	m.createdTasks = append(m.createdTasks, opt)
	return model.Task{
		ID:       "task-1",
		Task:     opt.Task,
		Deadline: opt.Deadline,
		Category: opt.Category,
		Priority: opt.Priority,
	}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listTasks == nil {
		return []model.Task{}, nil
	}
	return m.listTasks(ctx, opt)
}

func (m *mockRepo) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	m.completedIDs = append(m.completedIDs, id)
	return model.Task{ID: id, Task: "completed", Done: true}, nil
}

func (m *mockRepo) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (model.BudgetEntry, error) {
	m.createdEntries = append(m.createdEntries, opt)
	return model.BudgetEntry{
		ID:          "entry-1",
		Description: opt.Description,
		Amount:      opt.Amount,
		Category:    opt.Category,
		Type:        opt.Type,
		Date:        opt.Date,
	}, nil
}

func (m *mockRepo) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.BudgetEntry, error) {
	return []model.BudgetEntry{}, nil
}

func (m *mockRepo) SummarizeMonth(ctx context.Context, month string) (model.BudgetSummary, error) {
	if m.summarizeMonth == nil {
		return model.BudgetSummary{ExpenseCategories: map[string]float64{}}, nil
	}
	return m.summarizeMonth(ctx, month)
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduleEvent, error) {
	m.createdEvents = append(m.createdEvents, opt)
	return model.ScheduleEvent{
		ID:              "event-1",
		Title:           opt.Title,
		Description:     opt.Description,
		StartTime:       opt.StartTime,
		Location:        opt.Location,
		ReminderMinutes: opt.ReminderMinutes,
	}, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error) {
	if m.listEvents == nil {
		return []model.ScheduleEvent{}, nil
	}
	return m.listEvents(ctx, opt)
}

// fixedNow pins the clock to Wednesday, May 1, 2024 15:30 UTC.
func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
}

func newTestUseCase(t *testing.T, repo *mockRepo) *implUseCase {
	t.Helper()
	l := &mockLogger{}
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	processor := nlu.New(l, parser, fixedNow)
	suggester := suggest.New(l, repo, parser, suggest.Config{}, fixedNow)
	return New(l, processor, repo, suggester, nil, parser, 0, "UTC", fixedNow)
}
