package nlu

// ActionKind tags the concrete type of a proposed action.
type ActionKind string

const (
	KindCreateTask        ActionKind = "create_task"
	KindCompleteTask      ActionKind = "complete_task"
	KindListTasks         ActionKind = "list_tasks"
	KindAddExpense        ActionKind = "add_expense"
	KindAddIncome         ActionKind = "add_income"
	KindShowBudgetSummary ActionKind = "show_budget_summary"
	KindCreateEvent       ActionKind = "create_event"
	KindSetReminder       ActionKind = "set_reminder"
	KindGenerateSummary   ActionKind = "generate_summary"
)

// Action is a proposed, not-yet-executed operation the caller may apply to
// a store. The concrete types below form a closed set, one per ActionKind;
// the core only proposes, it never executes.
type Action interface {
	Kind() ActionKind
}

// CreateTaskAction proposes adding a task to the task store.
type CreateTaskAction struct {
	Task     string `json:"task"`
	Priority int    `json:"priority"`
	Deadline string `json:"deadline,omitempty"` // DateFormat or raw token; empty when none
	Category string `json:"category"`
}

// CompleteTaskAction proposes marking a task done. TaskQuery is the full
// utterance; resolving it to a concrete task is the executor's problem.
type CompleteTaskAction struct {
	TaskQuery string `json:"task_query"`
}

// ListTasksAction proposes listing tasks with a coarse filter
// (all, today, overdue, high_priority).
type ListTasksAction struct {
	Filter string `json:"filter"`
}

// AddExpenseAction proposes recording an expense.
type AddExpenseAction struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// AddIncomeAction proposes recording income. Income entries carry no category.
type AddIncomeAction struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// ShowBudgetSummaryAction proposes showing the current month's budget summary.
type ShowBudgetSummaryAction struct{}

// CreateEventAction proposes adding a schedule event.
type CreateEventAction struct {
	Title       string `json:"title"`
	StartTime   string `json:"start_time,omitempty"` // "<date> <HH:MM>"; empty when no date or time found
	Description string `json:"description"`
	Location    string `json:"location,omitempty"`
}

// SetReminderAction proposes adding a reminder.
type SetReminderAction struct {
	Title       string `json:"title"`
	Time        string `json:"time,omitempty"` // same format as CreateEventAction.StartTime
	Description string `json:"description"`
}

// GenerateSummaryAction proposes generating a status report for the query.
type GenerateSummaryAction struct {
	Query string `json:"query"`
}

func (CreateTaskAction) Kind() ActionKind        { return KindCreateTask }
func (CompleteTaskAction) Kind() ActionKind      { return KindCompleteTask }
func (ListTasksAction) Kind() ActionKind         { return KindListTasks }
func (AddExpenseAction) Kind() ActionKind        { return KindAddExpense }
func (AddIncomeAction) Kind() ActionKind         { return KindAddIncome }
func (ShowBudgetSummaryAction) Kind() ActionKind { return KindShowBudgetSummary }
func (CreateEventAction) Kind() ActionKind       { return KindCreateEvent }
func (SetReminderAction) Kind() ActionKind       { return KindSetReminder }
func (GenerateSummaryAction) Kind() ActionKind   { return KindGenerateSummary }
