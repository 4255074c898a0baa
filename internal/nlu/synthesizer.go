package nlu

// synthesize dispatches to the per-intent action generator.
// IntentConversation has no generator and always yields zero actions.
func (p *Processor) synthesize(intent IntentTag, text, lower string, entities EntityBundle) []Action {
	switch intent {
	case IntentTaskManagement:
		return p.taskActions(text, lower, entities)
	case IntentBudgetManagement:
		return p.budgetActions(text, lower, entities)
	case IntentScheduleManagement:
		return p.scheduleActions(text, lower, entities)
	case IntentInformationQuery:
		return p.queryActions(text, lower)
	default:
		return nil
	}
}

func (p *Processor) taskActions(text, lower string, entities EntityBundle) []Action {
	switch {
	case containsAny(lower, "add", "create", "new", "make"):
		deadline := ""
		if len(entities.Dates) > 0 {
			deadline = entities.Dates[0]
		}
		return []Action{CreateTaskAction{
			Task:     stripAll(text, taskVerbsPattern, priorityWordsPattern, relativeDatePattern),
			Priority: entities.Priority,
			Deadline: deadline,
			Category: inferCategory(lower, taskCategories, defaultTaskCategory),
		}}

	case containsAny(lower, "complete", "finish", "done", "mark"):
		return []Action{CompleteTaskAction{TaskQuery: text}}

	case containsAny(lower, "show", "list", "view"):
		return []Action{ListTasksAction{Filter: taskFilter(lower)}}
	}
	return nil
}

// budgetActions requires an extracted amount for the entry actions; the
// summary action only fires when no amount-bearing verb matched before it.
func (p *Processor) budgetActions(text, lower string, entities EntityBundle) []Action {
	switch {
	case len(entities.Amounts) > 0 && containsAny(lower, "spent", "spend", "cost", "paid", "pay"):
		return []Action{AddExpenseAction{
			Amount:      entities.Amounts[0],
			Description: stripAll(text, amountLiteralPattern, expenseVerbsPattern),
			Category:    inferCategory(lower, expenseCategories, defaultExpenseCategory),
			Date:        p.firstDateOrToday(entities),
		}}

	case len(entities.Amounts) > 0 && containsAny(lower, "earned", "income", "salary", "received"):
		return []Action{AddIncomeAction{
			Amount:      entities.Amounts[0],
			Description: stripAll(text, amountLiteralPattern, incomeVerbsPattern),
			Date:        p.firstDateOrToday(entities),
		}}

	case containsAny(lower, "show", "view", "check", "summary"):
		return []Action{ShowBudgetSummaryAction{}}
	}
	return nil
}

func (p *Processor) scheduleActions(text, lower string, entities EntityBundle) []Action {
	switch {
	case containsAny(lower, "schedule", "book", "plan", "appointment", "meeting"):
		return []Action{CreateEventAction{
			Title:       stripAll(text, eventVerbsPattern, eventTimePattern),
			StartTime:   combineDateTime(entities.Dates, entities.Times, p.today()),
			Description: text,
			Location:    extractLocation(text),
		}}

	case containsAny(lower, "remind", "reminder"):
		return []Action{SetReminderAction{
			Title:       stripAll(text, reminderWordsPattern),
			Time:        combineDateTime(entities.Dates, entities.Times, p.today()),
			Description: text,
		}}
	}
	return nil
}

func (p *Processor) queryActions(text, lower string) []Action {
	if containsAny(lower, "status", "summary", "overview", "report") {
		return []Action{GenerateSummaryAction{Query: text}}
	}
	return nil
}

func (p *Processor) firstDateOrToday(entities EntityBundle) string {
	if len(entities.Dates) > 0 {
		return entities.Dates[0]
	}
	return p.today()
}
