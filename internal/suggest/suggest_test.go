package suggest_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
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

// mockRepo implements repository.Repository with overridable funcs.
type mockRepo struct {
	listTasks      func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error)
	summarizeMonth func(ctx context.Context, month string) (model.BudgetSummary, error)
	listEvents     func(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error)
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listTasks == nil {
		return nil, nil
	}
	return m.listTasks(ctx, opt)
}

func (m *mockRepo) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockRepo) CreateEntry(ctx context.Context, opt repository.CreateEntryOptions) (model.BudgetEntry, error) {
	return model.BudgetEntry{}, nil
}

func (m *mockRepo) ListEntries(ctx context.Context, opt repository.ListEntriesOptions) ([]model.BudgetEntry, error) {
	return nil, nil
}

func (m *mockRepo) SummarizeMonth(ctx context.Context, month string) (model.BudgetSummary, error) {
	if m.summarizeMonth == nil {
		return model.BudgetSummary{}, nil
	}
	return m.summarizeMonth(ctx, month)
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.ScheduleEvent, error) {
	return model.ScheduleEvent{}, nil
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error) {
	if m.listEvents == nil {
		return nil, nil
	}
	return m.listEvents(ctx, opt)
}

// fixedNow pins the clock to Wednesday, May 1, 2024 15:30 UTC. That hour
// lands outside every greeting window.
func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
}

func newSuggester(t *testing.T, repo repository.Repository, now func() time.Time) *suggest.Suggester {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return suggest.New(&mockLogger{}, repo, parser, suggest.Config{}, now)
}

func TestSuggestQuietState(t *testing.T) {
	s := newSuggester(t, &mockRepo{}, fixedNow)

	got := s.Suggest(context.Background())
	if len(got) != 0 {
		t.Errorf("Suggest = %v, want none", got)
	}
}

func TestSuggestOverdueTasks(t *testing.T) {
	repo := &mockRepo{
		listTasks: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
			if opt.Done == nil || *opt.Done {
				t.Errorf("ListTasks opt = %+v, want pending only", opt)
			}
			return []model.Task{
				{Task: "late one", Deadline: "2024-04-20"},
				{Task: "late two", Deadline: "2024-04-29"},
				{Task: "fine", Deadline: "2024-05-09"},
				{Task: "no deadline"},
			}, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	want := []string{"You have 2 overdue tasks. Would you like to review them?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestTooManyPending(t *testing.T) {
	repo := &mockRepo{
		listTasks: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
			tasks := make([]model.Task, 11)
			for i := range tasks {
				tasks[i] = model.Task{Task: "t"}
			}
			return tasks, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	want := []string{"You have many pending tasks. Consider prioritizing or breaking them down."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestBudgetRules(t *testing.T) {
	repo := &mockRepo{
		summarizeMonth: func(ctx context.Context, month string) (model.BudgetSummary, error) {
			if month != "2024-05" {
				t.Errorf("month = %q, want 2024-05", month)
			}
			return model.BudgetSummary{
				TotalIncome:   1000,
				TotalExpenses: 1250.75,
				Balance:       -250.75,
			}, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	want := []string{
		"Your budget is $250.75 over. Consider reviewing expenses.",
		"You're spending close to your income limit. Track expenses carefully.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestUpcomingEvents(t *testing.T) {
	repo := &mockRepo{
		listEvents: func(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error) {
			if window := opt.To.Sub(opt.From); window != 24*time.Hour {
				t.Errorf("window = %v, want 24h", window)
			}
			return []model.ScheduleEvent{{Title: "standup"}, {Title: "dentist"}, {Title: "gym"}}, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	want := []string{"You have 3 events coming up today. Need any preparation reminders?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestGreetingWindows(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{9, "Good morning! Ready to tackle today's priorities?"},
		{11, "Good morning! Ready to tackle today's priorities?"},
		{13, "Afternoon check-in: How are your tasks progressing?"},
		{18, "End of day: Want to review what you accomplished?"},
	}

	for _, tt := range tests {
		now := func() time.Time {
			return time.Date(2024, 5, 1, tt.hour, 0, 0, 0, time.UTC)
		}
		s := newSuggester(t, &mockRepo{}, now)
		got := s.Suggest(context.Background())
		if !reflect.DeepEqual(got, []string{tt.want}) {
			t.Errorf("hour %d: Suggest = %v, want [%s]", tt.hour, got, tt.want)
		}
	}

	s := newSuggester(t, &mockRepo{}, fixedNow)
	if got := s.Suggest(context.Background()); len(got) != 0 {
		t.Errorf("hour 15: Suggest = %v, want none", got)
	}
}

func TestSuggestCapsAtThree(t *testing.T) {
	repo := &mockRepo{
		listTasks: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
			tasks := make([]model.Task, 11)
			for i := range tasks {
				tasks[i] = model.Task{Task: "t", Deadline: "2024-04-01"}
			}
			return tasks, nil
		},
		summarizeMonth: func(ctx context.Context, month string) (model.BudgetSummary, error) {
			return model.BudgetSummary{TotalIncome: 100, TotalExpenses: 300, Balance: -200}, nil
		},
		listEvents: func(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error) {
			return []model.ScheduleEvent{{Title: "one"}}, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	if len(got) != 3 {
		t.Fatalf("Suggest returned %d suggestions, want cap of 3", len(got))
	}
	want := []string{
		"You have 11 overdue tasks. Would you like to review them?",
		"You have many pending tasks. Consider prioritizing or breaking them down.",
		"Your budget is $200.00 over. Consider reviewing expenses.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}

func TestSuggestSkipsFailingStore(t *testing.T) {
	repo := &mockRepo{
		listTasks: func(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
			return nil, errors.New("store down")
		},
		listEvents: func(ctx context.Context, opt repository.ListEventsOptions) ([]model.ScheduleEvent, error) {
			return []model.ScheduleEvent{{Title: "standup"}}, nil
		},
	}
	s := newSuggester(t, repo, fixedNow)

	got := s.Suggest(context.Background())
	want := []string{"You have 1 events coming up today. Need any preparation reminders?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest = %v, want %v", got, want)
	}
}
