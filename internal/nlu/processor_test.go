package nlu_test

import (
	"context"
	"reflect"
	"testing"

	"personal-assistant/internal/nlu"
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

func newTestProcessor(t *testing.T) *nlu.Processor {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath.NewParser: %v", err)
	}
	return nlu.New(&mockLogger{}, parser, fixedNow)
}

func TestProcessConfidence(t *testing.T) {
	p := newTestProcessor(t)
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "Pure conversation scores the default",
			text: "hello there",
			want: 0.6,
		},
		{
			name: "One specific intent",
			text: "create task buy groceries",
			want: 0.8,
		},
		{
			name: "Two specific intents",
			text: "create task pay rent and log expense $800",
			want: 0.9,
		},
		{
			name: "Conversation alongside specific intents does not lower the score",
			text: "hi, create task pay rent and log expense $800",
			want: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Process(ctx, tt.text, nil)
			if got.Confidence != tt.want {
				t.Errorf("Process(%q).Confidence = %v, want %v (intents %v)", tt.text, got.Confidence, tt.want, got.Intents)
			}
		})
	}
}

func TestProcessExpenseEndToEnd(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process(context.Background(), "I spent $12 on coffee today", nil)

	hasBudget := false
	for _, intent := range got.Intents {
		if intent == nlu.IntentBudgetManagement {
			hasBudget = true
		}
	}
	if !hasBudget {
		t.Fatalf("intents = %v, want budget_management included", got.Intents)
	}

	if !reflect.DeepEqual(got.Entities.Amounts, []float64{12}) {
		t.Errorf("amounts = %v, want [12]", got.Entities.Amounts)
	}

	if len(got.Actions) != 1 {
		t.Fatalf("actions = %v, want exactly one", got.Actions)
	}
	expense, ok := got.Actions[0].(nlu.AddExpenseAction)
	if !ok {
		t.Fatalf("action = %T, want AddExpenseAction", got.Actions[0])
	}
	if expense.Amount != 12 {
		t.Errorf("expense.Amount = %v, want 12", expense.Amount)
	}
	if expense.Category != "Food" {
		t.Errorf("expense.Category = %q, want Food", expense.Category)
	}
	if expense.Date != "2024-05-01" {
		t.Errorf("expense.Date = %q, want today", expense.Date)
	}
}

func TestProcessCreateTask(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process(context.Background(), "add task buy groceries urgent tomorrow", nil)

	var task nlu.CreateTaskAction
	found := false
	for _, action := range got.Actions {
		if a, ok := action.(nlu.CreateTaskAction); ok {
			task = a
			found = true
		}
	}
	if !found {
		t.Fatalf("actions = %v, want a CreateTaskAction", got.Actions)
	}

	if task.Task != "buy groceries" {
		t.Errorf("task.Task = %q, want noise words stripped out", task.Task)
	}
	if task.Priority != 4 {
		t.Errorf("task.Priority = %d, want 4", task.Priority)
	}
	if task.Deadline != "2024-05-02" {
		t.Errorf("task.Deadline = %q, want tomorrow", task.Deadline)
	}
	if task.Category != "Personal" {
		t.Errorf("task.Category = %q, want the fallback", task.Category)
	}
}

func TestProcessReminder(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process(context.Background(), "remind me to call mom tomorrow at 5pm", nil)

	if !reflect.DeepEqual(got.Intents, []nlu.IntentTag{nlu.IntentScheduleManagement}) {
		t.Fatalf("intents = %v, want [schedule_management]", got.Intents)
	}
	if len(got.Actions) != 1 {
		t.Fatalf("actions = %v, want exactly one", got.Actions)
	}
	reminder, ok := got.Actions[0].(nlu.SetReminderAction)
	if !ok {
		t.Fatalf("action = %T, want SetReminderAction", got.Actions[0])
	}
	if reminder.Title != "call mom tomorrow at 5pm" {
		t.Errorf("reminder.Title = %q", reminder.Title)
	}
	if reminder.Time != "2024-05-02 17:00" {
		t.Errorf("reminder.Time = %q, want tomorrow 17:00", reminder.Time)
	}
}

func TestProcessConversationHasNoActions(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process(context.Background(), "thank you so much", nil)

	if !reflect.DeepEqual(got.Intents, []nlu.IntentTag{nlu.IntentConversation}) {
		t.Fatalf("intents = %v, want [conversation]", got.Intents)
	}
	if len(got.Actions) != 0 {
		t.Errorf("actions = %v, want none", got.Actions)
	}
	if got.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6", got.Confidence)
	}
}
