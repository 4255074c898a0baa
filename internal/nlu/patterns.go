package nlu

import "regexp"

// intentRule binds one intent category to its ordered matchers.
type intentRule struct {
	tag      IntentTag
	patterns []*regexp.Regexp
}

// intentRules is the classification table. Both the category order and the
// pattern order within a category are part of the contract: the first
// matching pattern records the category and stops testing the rest, and
// reordering categories reorders synthesized actions.
var intentRules = []intentRule{
	{
		tag: IntentTaskManagement,
		patterns: compileAll(
			`\b(add|create|new|make)\s+(task|todo|reminder)`,
			`\b(complete|finish|done|mark)\s+(task|todo)`,
			`\b(delete|remove|cancel)\s+(task|todo)`,
			`\b(show|list|view)\s+(tasks|todos)`,
			`\b(update|edit|change)\s+(task|todo)`,
			`\bdeadline\b`,
			`\bpriority\b`,
			`\bdue\s+(by|on|before)`,
		),
	},
	{
		tag: IntentBudgetManagement,
		patterns: compileAll(
			`\b(spent|spend|cost|paid|pay)\s*\$?\d+`,
			`\b(earned|income|salary|received)\s*\$?\d+`,
			`\b(budget|expense|expenses|spending)`,
			`\b(track|record|log)\s+(expense|spending|income)`,
			`\b(show|view|check)\s+(budget|expenses|spending)`,
			`\$\d+`,
		),
	},
	{
		tag: IntentScheduleManagement,
		patterns: compileAll(
			`\b(schedule|appointment|meeting|event)`,
			`\b(calendar|agenda)`,
			`\b(remind|reminder)\s+me`,
			`\b(at|on|from|until)\s+\d{1,2}(:\d{2})?\s*(am|pm)`,
			`\b(today|tomorrow|next\s+week|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`,
			`\b(book|reserve|plan)`,
		),
	},
	{
		tag: IntentInformationQuery,
		patterns: compileAll(
			// Bare "how" would swallow greetings like "how are you", so it
			// only counts with a question word after it.
			`\b(what|when|where|why|who)\b`,
			`\bhow\s+(much|many|long|do|does|can|should)\b`,
			`\b(show|tell|explain|describe)`,
			`\b(status|summary|overview|report)`,
			`\b(help|assist|support)`,
		),
	},
	{
		tag: IntentConversation,
		patterns: compileAll(
			`\b(hello|hi|hey|good\s+(morning|afternoon|evening))`,
			`\b(thank|thanks|appreciate)`,
			`\b(how\s+are\s+you|what's\s+up)`,
			`\b(bye|goodbye|see\s+you)`,
		),
	},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(expr))
	}
	return compiled
}
