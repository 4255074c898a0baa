package nlu

// IntentTag is a coarse category of user goal.
type IntentTag string

// Intent categories. Declaration order is load-bearing: the classifier
// tests categories and the processor synthesizes actions in this order.
const (
	IntentTaskManagement     IntentTag = "task_management"
	IntentBudgetManagement   IntentTag = "budget_management"
	IntentScheduleManagement IntentTag = "schedule_management"
	IntentInformationQuery   IntentTag = "information_query"
	IntentConversation       IntentTag = "conversation"
)

// Context is opaque caller-supplied key/value data. No rule reads it today;
// it is part of the contract for future extension.
type Context map[string]any

// EntityBundle holds the structured values extracted from one utterance.
// Priority is always set (default model.PriorityMedium); the slices may be
// empty but are never nil.
type EntityBundle struct {
	Dates    []string  `json:"dates"`
	Times    []string  `json:"times"`
	Amounts  []float64 `json:"amounts"`
	Priority int       `json:"priority"`
}

// InterpretationResult is the structured interpretation of one utterance.
// Intents is never empty: when nothing matches it contains exactly
// IntentConversation.
type InterpretationResult struct {
	Intents    []IntentTag
	Entities   EntityBundle
	Actions    []Action
	Confidence float64
}

// Confidence levels for the classification. The ladder reflects how
// specific the match was, not statistical certainty.
const (
	ConfidenceDefault  = 0.6 // conversation only, or nothing specific
	ConfidenceSingle   = 0.8 // exactly one specific intent
	ConfidenceMultiple = 0.9 // two or more specific intents
)
