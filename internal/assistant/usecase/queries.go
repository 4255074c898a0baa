package usecase

import (
	"context"
	"time"

	"personal-assistant/internal/assistant"
	repo "personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
)

// Suggestions delegates to the rule-based suggester.
func (uc *implUseCase) Suggestions(ctx context.Context) []string {
	return uc.suggester.Suggest(ctx)
}

// ListTasks lists tasks by the same coarse filters the NLU list_tasks
// action carries. An empty filter means "all".
func (uc *implUseCase) ListTasks(ctx context.Context, input assistant.ListTasksInput) ([]model.Task, error) {
	opt := repo.ListTasksOptions{Done: input.Done}

	switch input.Filter {
	case "", "all":
	case "high_priority":
		opt.MinPriority = model.PriorityHigh
	case "today":
		opt.DueOn = uc.today()
	case "overdue":
		opt.DueBefore = uc.today()
	default:
		return nil, assistant.ErrUnknownFilter
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}

// BudgetSummary aggregates the current month.
func (uc *implUseCase) BudgetSummary(ctx context.Context) (model.BudgetSummary, error) {
	month := uc.now().In(uc.dates.Location()).Format("2006-01")
	summary, err := uc.repo.SummarizeMonth(ctx, month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BudgetSummary: %v", err)
		return model.BudgetSummary{}, err
	}
	return summary, nil
}

// UpcomingEvents lists events starting within the next input.Days days.
func (uc *implUseCase) UpcomingEvents(ctx context.Context, input assistant.UpcomingEventsInput) ([]model.ScheduleEvent, error) {
	days := input.Days
	if days <= 0 {
		days = 7
	}

	now := uc.now()
	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{
		From: now,
		To:   now.Add(time.Duration(days) * 24 * time.Hour),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpcomingEvents: %v", err)
		return nil, err
	}
	return events, nil
}
