package sqlite

import (
	"context"
	"testing"
	"time"

	repo "personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
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

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, &mockLogger{})
}

func TestTaskRoundTrip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	created, err := r.CreateTask(ctx, repo.CreateTaskOptions{
		Task:     "buy groceries",
		Deadline: "2024-05-02",
		Category: "Personal",
		Priority: model.PriorityUrgent,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" || created.Done {
		t.Fatalf("created = %+v, want id set and not done", created)
	}

	pending := false
	tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{Done: &pending})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Task != "buy groceries" || tasks[0].Priority != model.PriorityUrgent {
		t.Fatalf("tasks = %+v, want the created task back", tasks)
	}

	done, err := r.CompleteTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if !done.Done || done.CompletedAt == nil {
		t.Errorf("done = %+v, want done with completed_at set", done)
	}

	if _, err := r.CompleteTask(ctx, "no-such-id"); err != repo.ErrNotFound {
		t.Errorf("CompleteTask(missing) = %v, want ErrNotFound", err)
	}
}

func TestListTasksOverdueFilter(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, opt := range []repo.CreateTaskOptions{
		{Task: "overdue", Deadline: "2024-04-20"},
		{Task: "due later", Deadline: "2024-05-09"},
		{Task: "no deadline"},
	} {
		if _, err := r.CreateTask(ctx, opt); err != nil {
			t.Fatalf("CreateTask(%q): %v", opt.Task, err)
		}
	}

	tasks, err := r.ListTasks(ctx, repo.ListTasksOptions{DueBefore: "2024-05-01"})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Task != "overdue" {
		t.Fatalf("tasks = %+v, want only the overdue one", tasks)
	}
}

func TestBudgetSummarizeMonth(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	entries := []repo.CreateEntryOptions{
		{Description: "salary", Amount: 3000, Type: model.EntryTypeIncome, Date: "2024-05-01"},
		{Description: "groceries", Amount: 120.50, Category: "Food", Type: model.EntryTypeExpense, Date: "2024-05-03"},
		{Description: "dinner", Amount: 45, Category: "Food", Type: model.EntryTypeExpense, Date: "2024-05-10"},
		{Description: "bus pass", Amount: 60, Category: "Transport", Type: model.EntryTypeExpense, Date: "2024-05-04"},
		{Description: "april rent", Amount: 900, Category: "Utilities", Type: model.EntryTypeExpense, Date: "2024-04-28"},
	}
	for _, opt := range entries {
		if _, err := r.CreateEntry(ctx, opt); err != nil {
			t.Fatalf("CreateEntry(%q): %v", opt.Description, err)
		}
	}

	summary, err := r.SummarizeMonth(ctx, "2024-05")
	if err != nil {
		t.Fatalf("SummarizeMonth: %v", err)
	}
	if summary.TotalIncome != 3000 {
		t.Errorf("TotalIncome = %v, want 3000", summary.TotalIncome)
	}
	if summary.TotalExpenses != 225.50 {
		t.Errorf("TotalExpenses = %v, want 225.50", summary.TotalExpenses)
	}
	if summary.Balance != 2774.50 {
		t.Errorf("Balance = %v, want 2774.50", summary.Balance)
	}
	if summary.ExpenseCategories["Food"] != 165.50 || summary.ExpenseCategories["Transport"] != 60 {
		t.Errorf("ExpenseCategories = %v", summary.ExpenseCategories)
	}

	monthOnly, err := r.ListEntries(ctx, repo.ListEntriesOptions{Month: "2024-05", Type: model.EntryTypeExpense})
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}
	if len(monthOnly) != 3 {
		t.Errorf("ListEntries = %d entries, want 3", len(monthOnly))
	}
}

func TestEventWindow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	for _, opt := range []repo.CreateEventOptions{
		{Title: "standup", StartTime: base.Add(2 * time.Hour)},
		{Title: "dentist", StartTime: base.Add(20 * time.Hour), Location: "clinic"},
		{Title: "next week", StartTime: base.Add(7 * 24 * time.Hour)},
		{Title: "yesterday", StartTime: base.Add(-24 * time.Hour)},
	} {
		if _, err := r.CreateEvent(ctx, opt); err != nil {
			t.Fatalf("CreateEvent(%q): %v", opt.Title, err)
		}
	}

	events, err := r.ListEvents(ctx, repo.ListEventsOptions{From: base, To: base.Add(24 * time.Hour)})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %+v, want the two inside the window", events)
	}
	if events[0].Title != "standup" || events[1].Title != "dentist" {
		t.Errorf("order = [%s, %s], want start-time ascending", events[0].Title, events[1].Title)
	}
	if events[0].ReminderMinutes != model.DefaultReminderMinutes {
		t.Errorf("ReminderMinutes = %d, want default", events[0].ReminderMinutes)
	}
}
