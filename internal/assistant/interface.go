package assistant

import (
	"context"

	"personal-assistant/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Interpret runs the NLU core over one utterance. Results are cached
	// per calendar day so repeated utterances skip the rule engine.
	Interpret(ctx context.Context, input InterpretInput) (InterpretOutput, error)

	// Execute interprets the utterance and applies every proposed action
	// against the stores. A failing action is reported, not fatal.
	Execute(ctx context.Context, input ExecuteInput) (ExecuteOutput, error)

	// Suggestions returns at most a handful of proactive suggestions.
	// It never fails; an unreadable store just mutes its rules.
	Suggestions(ctx context.Context) []string

	ListTasks(ctx context.Context, input ListTasksInput) ([]model.Task, error)
	BudgetSummary(ctx context.Context) (model.BudgetSummary, error)
	UpcomingEvents(ctx context.Context, input UpcomingEventsInput) ([]model.ScheduleEvent, error)
}
