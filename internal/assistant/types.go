package assistant

import (
	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
)

// InterpretInput is one utterance plus optional caller context.
type InterpretInput struct {
	Text    string
	Context map[string]any
}

// InterpretOutput is the interpretation of one utterance. Cached reports
// whether the result came from the per-day cache.
type InterpretOutput struct {
	Result nlu.InterpretationResult
	Cached bool
}

// ExecuteInput is one utterance to interpret and apply.
type ExecuteInput struct {
	Text    string
	Context map[string]any
}

// ExecutionStatus is the outcome of applying one action.
type ExecutionStatus string

const (
	StatusApplied ExecutionStatus = "applied"
	StatusFailed  ExecutionStatus = "failed"
)

// ExecutedAction is the outcome of applying one proposed action. Exactly
// one of the payload pointers is set for store-writing actions; read-only
// actions fill Tasks or Summary instead.
type ExecutedAction struct {
	Kind    nlu.ActionKind
	Status  ExecutionStatus
	Detail  string // human-readable outcome or failure reason
	Task    *model.Task
	Entry   *model.BudgetEntry
	Event   *model.ScheduleEvent
	Tasks   []model.Task
	Summary *model.BudgetSummary
}

// ExecuteOutput is the interpretation plus the per-action outcomes, in the
// same order as the proposed actions.
type ExecuteOutput struct {
	Result   nlu.InterpretationResult
	Executed []ExecutedAction
}

// ListTasksInput filters the task listing. Filter takes the same values the
// NLU list_tasks action carries: all, today, overdue, high_priority.
type ListTasksInput struct {
	Filter string
	Done   *bool
}

// UpcomingEventsInput bounds the event listing to the next Days days.
type UpcomingEventsInput struct {
	Days int // default 7
}
