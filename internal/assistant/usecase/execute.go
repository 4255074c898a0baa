package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"personal-assistant/internal/assistant"
	repo "personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
	"personal-assistant/pkg/gcalendar"
)

const eventTimeLayout = "2006-01-02 15:04"

// Execute interprets the utterance and applies every proposed action in
// order. Individual actions fail independently; the caller sees one
// ExecutedAction per proposed action either way.
func (uc *implUseCase) Execute(ctx context.Context, input assistant.ExecuteInput) (assistant.ExecuteOutput, error) {
	interp, err := uc.Interpret(ctx, assistant.InterpretInput{Text: input.Text, Context: input.Context})
	if err != nil {
		return assistant.ExecuteOutput{}, err
	}

	out := assistant.ExecuteOutput{
		Result:   interp.Result,
		Executed: make([]assistant.ExecutedAction, 0, len(interp.Result.Actions)),
	}
	for _, action := range interp.Result.Actions {
		out.Executed = append(out.Executed, uc.apply(ctx, action))
	}
	return out, nil
}

func (uc *implUseCase) apply(ctx context.Context, action nlu.Action) assistant.ExecutedAction {
	switch a := action.(type) {
	case nlu.CreateTaskAction:
		return uc.applyCreateTask(ctx, a)
	case nlu.CompleteTaskAction:
		return uc.applyCompleteTask(ctx, a)
	case nlu.ListTasksAction:
		return uc.applyListTasks(ctx, a)
	case nlu.AddExpenseAction:
		return uc.applyAddExpense(ctx, a)
	case nlu.AddIncomeAction:
		return uc.applyAddIncome(ctx, a)
	case nlu.ShowBudgetSummaryAction:
		return uc.applyBudgetSummary(ctx, a)
	case nlu.CreateEventAction:
		return uc.applyCreateEvent(ctx, a)
	case nlu.SetReminderAction:
		return uc.applySetReminder(ctx, a)
	case nlu.GenerateSummaryAction:
		return uc.applyGenerateSummary(ctx, a)
	default:
		return assistant.ExecutedAction{
			Kind:   action.Kind(),
			Status: assistant.StatusFailed,
			Detail: "no executor for this action",
		}
	}
}

func failed(kind nlu.ActionKind, detail string) assistant.ExecutedAction {
	return assistant.ExecutedAction{Kind: kind, Status: assistant.StatusFailed, Detail: detail}
}

func (uc *implUseCase) applyCreateTask(ctx context.Context, a nlu.CreateTaskAction) assistant.ExecutedAction {
	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Task:     a.Task,
		Deadline: a.Deadline,
		Category: a.Category,
		Priority: a.Priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute CreateTask: %v", err)
		return failed(a.Kind(), "could not save the task")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("added task %q", task.Task),
		Task:   &task,
	}
}

// applyCompleteTask picks the pending task whose words overlap the query
// the most. Ties go to the newest task.
func (uc *implUseCase) applyCompleteTask(ctx context.Context, a nlu.CompleteTaskAction) assistant.ExecutedAction {
	pending := false
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Done: &pending})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute CompleteTask list: %v", err)
		return failed(a.Kind(), "could not load pending tasks")
	}

	match, ok := bestMatch(tasks, a.TaskQuery)
	if !ok {
		return failed(a.Kind(), "no pending task matches")
	}

	done, err := uc.repo.CompleteTask(ctx, match.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute CompleteTask: %v", err)
		return failed(a.Kind(), "could not mark the task done")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("completed %q", done.Task),
		Task:   &done,
	}
}

// completionNoise are the command words that carry no signal when matching
// a completion request against stored task descriptions.
var completionNoise = map[string]bool{
	"complete": true, "finish": true, "finished": true, "done": true,
	"mark": true, "task": true, "todo": true, "the": true, "my": true,
	"as": true, "a": true, "i": true,
}

func bestMatch(tasks []model.Task, query string) (model.Task, bool) {
	queryWords := map[string]bool{}
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if !completionNoise[word] {
			queryWords[word] = true
		}
	}

	best := model.Task{}
	bestScore := 0
	for _, task := range tasks {
		score := 0
		for _, word := range strings.Fields(strings.ToLower(task.Task)) {
			if queryWords[word] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = task, score
		}
	}
	return best, bestScore > 0
}

func (uc *implUseCase) applyListTasks(ctx context.Context, a nlu.ListTasksAction) assistant.ExecutedAction {
	tasks, err := uc.ListTasks(ctx, assistant.ListTasksInput{Filter: a.Filter})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute ListTasks: %v", err)
		return failed(a.Kind(), "could not list tasks")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("%d tasks (%s)", len(tasks), a.Filter),
		Tasks:  tasks,
	}
}

func (uc *implUseCase) applyAddExpense(ctx context.Context, a nlu.AddExpenseAction) assistant.ExecutedAction {
	entry, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		Description: a.Description,
		Amount:      a.Amount,
		Category:    a.Category,
		Type:        model.EntryTypeExpense,
		Date:        a.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute AddExpense: %v", err)
		return failed(a.Kind(), "could not save the expense")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("recorded $%.2f expense (%s)", entry.Amount, entry.Category),
		Entry:  &entry,
	}
}

func (uc *implUseCase) applyAddIncome(ctx context.Context, a nlu.AddIncomeAction) assistant.ExecutedAction {
	entry, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		Description: a.Description,
		Amount:      a.Amount,
		Type:        model.EntryTypeIncome,
		Date:        a.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute AddIncome: %v", err)
		return failed(a.Kind(), "could not save the income entry")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("recorded $%.2f income", entry.Amount),
		Entry:  &entry,
	}
}

func (uc *implUseCase) applyBudgetSummary(ctx context.Context, a nlu.ShowBudgetSummaryAction) assistant.ExecutedAction {
	summary, err := uc.BudgetSummary(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute BudgetSummary: %v", err)
		return failed(a.Kind(), "could not load the budget summary")
	}
	return assistant.ExecutedAction{
		Kind:    a.Kind(),
		Status:  assistant.StatusApplied,
		Detail:  fmt.Sprintf("balance $%.2f this month", summary.Balance),
		Summary: &summary,
	}
}

func (uc *implUseCase) applyCreateEvent(ctx context.Context, a nlu.CreateEventAction) assistant.ExecutedAction {
	start, err := uc.parseEventTime(a.StartTime)
	if err != nil {
		return failed(a.Kind(), "no usable start time")
	}

	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title:       a.Title,
		Description: a.Description,
		StartTime:   start,
		Location:    a.Location,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute CreateEvent: %v", err)
		return failed(a.Kind(), "could not save the event")
	}

	uc.mirrorToCalendar(ctx, event)

	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("scheduled %q at %s", event.Title, event.StartTime.Format(eventTimeLayout)),
		Event:  &event,
	}
}

func (uc *implUseCase) applySetReminder(ctx context.Context, a nlu.SetReminderAction) assistant.ExecutedAction {
	start, err := uc.parseEventTime(a.Time)
	if err != nil {
		return failed(a.Kind(), "no usable reminder time")
	}

	event, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{
		Title:           a.Title,
		Description:     a.Description,
		StartTime:       start,
		ReminderMinutes: model.DefaultReminderMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Execute SetReminder: %v", err)
		return failed(a.Kind(), "could not save the reminder")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: fmt.Sprintf("reminder %q at %s", event.Title, event.StartTime.Format(eventTimeLayout)),
		Event:  &event,
	}
}

// applyGenerateSummary composes a one-line status across all three stores.
// Stores that cannot be read are left out of the line.
func (uc *implUseCase) applyGenerateSummary(ctx context.Context, a nlu.GenerateSummaryAction) assistant.ExecutedAction {
	parts := make([]string, 0, 3)

	pending := false
	if tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{Done: &pending}); err == nil {
		parts = append(parts, fmt.Sprintf("%d pending tasks", len(tasks)))
	}
	if summary, err := uc.BudgetSummary(ctx); err == nil {
		parts = append(parts, fmt.Sprintf("balance $%.2f this month", summary.Balance))
	}
	if events, err := uc.UpcomingEvents(ctx, assistant.UpcomingEventsInput{Days: 7}); err == nil {
		parts = append(parts, fmt.Sprintf("%d events in the next 7 days", len(events)))
	}

	if len(parts) == 0 {
		return failed(a.Kind(), "no store was readable")
	}
	return assistant.ExecutedAction{
		Kind:   a.Kind(),
		Status: assistant.StatusApplied,
		Detail: strings.Join(parts, ", "),
	}
}

// parseEventTime parses the "<date> <HH:MM>" strings the NLU core emits,
// in the configured timezone. An empty string means today at 09:00.
func (uc *implUseCase) parseEventTime(raw string) (time.Time, error) {
	if raw == "" {
		raw = uc.today() + " 09:00"
	}
	return time.ParseInLocation(eventTimeLayout, raw, uc.dates.Location())
}

// mirrorToCalendar pushes the stored event to Google Calendar when a client
// is configured. Failures only log; the local store stays authoritative.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, event model.ScheduleEvent) {
	if uc.calendar == nil {
		return
	}

	end := event.StartTime.Add(time.Hour)
	if event.EndTime != nil {
		end = *event.EndTime
	}
	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartTime:   event.StartTime,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Execute calendar mirror: %v", err)
	}
}
