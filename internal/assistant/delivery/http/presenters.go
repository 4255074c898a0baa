package http

import (
	"personal-assistant/internal/assistant"
	"personal-assistant/internal/model"
	"personal-assistant/internal/nlu"
	"personal-assistant/pkg/response"
)

// --- Response DTOs ---

// actionItem presents one proposed action as a tagged union.
type actionItem struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type interpretResp struct {
	Intents    []nlu.IntentTag  `json:"intents"`
	Entities   nlu.EntityBundle `json:"entities"`
	Actions    []actionItem     `json:"actions"`
	Confidence float64          `json:"confidence"`
	Cached     bool             `json:"cached"`
}

func newInterpretResp(output assistant.InterpretOutput) interpretResp {
	return interpretResp{
		Intents:    output.Result.Intents,
		Entities:   output.Result.Entities,
		Actions:    newActionItems(output.Result.Actions),
		Confidence: output.Result.Confidence,
		Cached:     output.Cached,
	}
}

func newActionItems(actions []nlu.Action) []actionItem {
	items := make([]actionItem, 0, len(actions))
	for _, action := range actions {
		items = append(items, actionItem{
			Type: string(action.Kind()),
			Data: action,
		})
	}
	return items
}

// ---

type executedItem struct {
	Type    string       `json:"type"`
	Status  string       `json:"status"`
	Detail  string       `json:"detail"`
	Task    *taskItem    `json:"task,omitempty"`
	Entry   *entryItem   `json:"entry,omitempty"`
	Event   *eventItem   `json:"event,omitempty"`
	Tasks   []taskItem   `json:"tasks,omitempty"`
	Summary *summaryItem `json:"summary,omitempty"`
}

type executeResp struct {
	Interpretation interpretResp  `json:"interpretation"`
	Executed       []executedItem `json:"executed"`
}

func newExecuteResp(output assistant.ExecuteOutput) executeResp {
	executed := make([]executedItem, 0, len(output.Executed))
	for _, e := range output.Executed {
		item := executedItem{
			Type:    string(e.Kind),
			Status:  string(e.Status),
			Detail:  e.Detail,
			Task:    newTaskItemPtr(e.Task),
			Entry:   newEntryItemPtr(e.Entry),
			Event:   newEventItemPtr(e.Event),
			Summary: newSummaryItemPtr(e.Summary),
		}
		if e.Tasks != nil {
			item.Tasks = newTaskItems(e.Tasks)
		}
		executed = append(executed, item)
	}
	return executeResp{
		Interpretation: newInterpretResp(assistant.InterpretOutput{Result: output.Result}),
		Executed:       executed,
	}
}

// ---

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

// --- Entity presenters ---

type taskItem struct {
	ID          string             `json:"id"`
	Task        string             `json:"task"`
	Deadline    string             `json:"deadline,omitempty"`
	Category    string             `json:"category"`
	Priority    int                `json:"priority"`
	Done        bool               `json:"done"`
	CreatedAt   response.DateTime  `json:"created_at"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
}

func newTaskItem(task model.Task) taskItem {
	item := taskItem{
		ID:        task.ID,
		Task:      task.Task,
		Deadline:  task.Deadline,
		Category:  task.Category,
		Priority:  task.Priority,
		Done:      task.Done,
		CreatedAt: response.DateTime(task.CreatedAt),
	}
	if task.CompletedAt != nil {
		completed := response.DateTime(*task.CompletedAt)
		item.CompletedAt = &completed
	}
	return item
}

func newTaskItemPtr(task *model.Task) *taskItem {
	if task == nil {
		return nil
	}
	item := newTaskItem(*task)
	return &item
}

func newTaskItems(tasks []model.Task) []taskItem {
	items := make([]taskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, newTaskItem(task))
	}
	return items
}

type listTasksResp struct {
	Tasks []taskItem `json:"tasks"`
	Count int        `json:"count"`
}

// ---

type entryItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
}

func newEntryItemPtr(entry *model.BudgetEntry) *entryItem {
	if entry == nil {
		return nil
	}
	return &entryItem{
		ID:          entry.ID,
		Description: entry.Description,
		Amount:      entry.Amount,
		Category:    entry.Category,
		Type:        string(entry.Type),
		Date:        entry.Date,
	}
}

// ---

type eventItem struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	StartTime       response.DateTime  `json:"start_time"`
	EndTime         *response.DateTime `json:"end_time,omitempty"`
	Location        string             `json:"location,omitempty"`
	ReminderMinutes int                `json:"reminder_minutes"`
}

func newEventItem(event model.ScheduleEvent) eventItem {
	item := eventItem{
		ID:              event.ID,
		Title:           event.Title,
		Description:     event.Description,
		StartTime:       response.DateTime(event.StartTime),
		Location:        event.Location,
		ReminderMinutes: event.ReminderMinutes,
	}
	if event.EndTime != nil {
		end := response.DateTime(*event.EndTime)
		item.EndTime = &end
	}
	return item
}

func newEventItemPtr(event *model.ScheduleEvent) *eventItem {
	if event == nil {
		return nil
	}
	item := newEventItem(*event)
	return &item
}

type listEventsResp struct {
	Events []eventItem `json:"events"`
	Count  int         `json:"count"`
}

// ---

type summaryItem struct {
	TotalIncome       float64            `json:"total_income"`
	TotalExpenses     float64            `json:"total_expenses"`
	Balance           float64            `json:"balance"`
	ExpenseCategories map[string]float64 `json:"expense_categories"`
}

func newSummaryItem(summary model.BudgetSummary) summaryItem {
	return summaryItem(summary)
}

func newSummaryItemPtr(summary *model.BudgetSummary) *summaryItem {
	if summary == nil {
		return nil
	}
	item := newSummaryItem(*summary)
	return &item
}
