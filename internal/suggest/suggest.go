// Package suggest generates proactive suggestions from the current state of
// the task, budget, and schedule stores. Rules run in a fixed order and the
// output is capped; a store error skips that rule instead of failing the
// whole call.
package suggest

import (
	"context"
	"fmt"
	"time"

	"personal-assistant/internal/assistant/repository"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/log"
)

// Config tunes the rule thresholds. Zero values take the defaults.
type Config struct {
	PendingTaskLimit int     // "too many pending tasks" threshold
	ExpenseRatio     float64 // fraction of income that triggers the spending warning
	MaxSuggestions   int     // cap on returned suggestions
}

const (
	defaultPendingTaskLimit = 10
	defaultExpenseRatio     = 0.8
	defaultMaxSuggestions   = 3
)

// Suggester evaluates the suggestion rules against the stores.
type Suggester struct {
	l     log.Logger
	repo  repository.Repository
	dates *datemath.Parser
	cfg   Config
	now   func() time.Time
}

// New creates a Suggester. A nil now falls back to time.Now.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser, cfg Config, now func() time.Time) *Suggester {
	if cfg.PendingTaskLimit <= 0 {
		cfg.PendingTaskLimit = defaultPendingTaskLimit
	}
	if cfg.ExpenseRatio <= 0 {
		cfg.ExpenseRatio = defaultExpenseRatio
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = defaultMaxSuggestions
	}
	if now == nil {
		now = time.Now
	}
	return &Suggester{l: l, repo: repo, dates: dates, cfg: cfg, now: now}
}

// Suggest runs every rule in order and returns at most MaxSuggestions
// messages. It never returns an error; rules whose store reads fail are
// logged and skipped.
func (s *Suggester) Suggest(ctx context.Context) []string {
	suggestions := make([]string, 0, s.cfg.MaxSuggestions)

	suggestions = append(suggestions, s.taskRules(ctx)...)
	suggestions = append(suggestions, s.budgetRules(ctx)...)
	suggestions = append(suggestions, s.scheduleRules(ctx)...)
	suggestions = append(suggestions, s.timeOfDayRule()...)

	if len(suggestions) > s.cfg.MaxSuggestions {
		suggestions = suggestions[:s.cfg.MaxSuggestions]
	}
	return suggestions
}

func (s *Suggester) taskRules(ctx context.Context) []string {
	pending := false
	tasks, err := s.repo.ListTasks(ctx, repository.ListTasksOptions{Done: &pending})
	if err != nil {
		s.l.Warnf(ctx, "suggest: task rules skipped: %v", err)
		return nil
	}

	var out []string
	now := s.now().In(s.dates.Location())
	overdue := 0
	for _, task := range tasks {
		if task.Deadline == "" {
			continue
		}
		deadline, err := time.ParseInLocation(datemath.DateFormat, task.Deadline, s.dates.Location())
		if err != nil {
			continue
		}
		if deadline.Before(now) {
			overdue++
		}
	}

	if overdue > 0 {
		out = append(out, fmt.Sprintf("You have %d overdue tasks. Would you like to review them?", overdue))
	}
	if len(tasks) > s.cfg.PendingTaskLimit {
		out = append(out, "You have many pending tasks. Consider prioritizing or breaking them down.")
	}
	return out
}

func (s *Suggester) budgetRules(ctx context.Context) []string {
	month := s.now().In(s.dates.Location()).Format("2006-01")
	summary, err := s.repo.SummarizeMonth(ctx, month)
	if err != nil {
		s.l.Warnf(ctx, "suggest: budget rules skipped: %v", err)
		return nil
	}

	var out []string
	if summary.Balance < 0 {
		out = append(out, fmt.Sprintf("Your budget is $%.2f over. Consider reviewing expenses.", -summary.Balance))
	}
	if summary.TotalExpenses > summary.TotalIncome*s.cfg.ExpenseRatio && summary.TotalExpenses > 0 {
		out = append(out, "You're spending close to your income limit. Track expenses carefully.")
	}
	return out
}

func (s *Suggester) scheduleRules(ctx context.Context) []string {
	now := s.now()
	upcoming, err := s.repo.ListEvents(ctx, repository.ListEventsOptions{
		From: now,
		To:   now.Add(24 * time.Hour),
	})
	if err != nil {
		s.l.Warnf(ctx, "suggest: schedule rules skipped: %v", err)
		return nil
	}

	if len(upcoming) == 0 {
		return nil
	}
	return []string{fmt.Sprintf("You have %d events coming up today. Need any preparation reminders?", len(upcoming))}
}

// timeOfDayRule greets in three fixed local-hour windows.
func (s *Suggester) timeOfDayRule() []string {
	hour := s.now().In(s.dates.Location()).Hour()
	switch {
	case hour >= 9 && hour <= 11:
		return []string{"Good morning! Ready to tackle today's priorities?"}
	case hour >= 13 && hour <= 14:
		return []string{"Afternoon check-in: How are your tasks progressing?"}
	case hour >= 17 && hour <= 19:
		return []string{"End of day: Want to review what you accomplished?"}
	default:
		return nil
	}
}
