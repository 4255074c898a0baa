package nlu

import (
	"regexp"
	"strings"
	"time"
)

// Strip patterns for description/title cleanup. These are lossy heuristics:
// they remove known noise words, they do not parse.
var (
	taskVerbsPattern     = regexp.MustCompile(`(?i)\b(add|create|new|make|task|todo|reminder)\b`)
	priorityWordsPattern = regexp.MustCompile(`(?i)\b(urgent|important|high|low|priority)\b`)
	relativeDatePattern  = regexp.MustCompile(`(?i)\b(today|tomorrow|next\s+week|by\s+\w+)\b`)
	amountLiteralPattern = regexp.MustCompile(`\$\d+(\.\d{2})?`)
	expenseVerbsPattern  = regexp.MustCompile(`(?i)\b(spent|spend|cost|paid|pay|for|on)\b`)
	incomeVerbsPattern   = regexp.MustCompile(`(?i)\b(earned|income|salary|received|from)\b`)
	eventVerbsPattern    = regexp.MustCompile(`(?i)\b(schedule|book|plan|appointment|meeting|event)\b`)
	eventTimePattern     = regexp.MustCompile(`(?i)\b(at|on|from|until)\s+\d{1,2}(:\d{2})?\s*(am|pm)?\b`)
	reminderWordsPattern = regexp.MustCompile(`(?i)\b(remind|reminder|me|to)\b`)
	locationPattern      = regexp.MustCompile(`(?i)\b(at|in|@)\s+([^,\n]+)`)
	clockPattern         = regexp.MustCompile(`^\d{1,2}(:\d{2})?$`)
)

// categoryRule maps keywords to a category name.
type categoryRule struct {
	name     string
	keywords []string
}

// Category tables are checked in order and the first hit wins; the order is
// the tie-break and is part of the contract.
var taskCategories = []categoryRule{
	{"Work", []string{"work", "office", "meeting", "project", "deadline"}},
	{"Health", []string{"doctor", "gym", "exercise", "health", "medicine"}},
	{"Learning", []string{"learn", "study", "course", "book", "research"}},
	{"Finance", []string{"bill", "payment", "bank", "money", "budget"}},
}

var expenseCategories = []categoryRule{
	{"Food", []string{"food", "restaurant", "lunch", "dinner", "coffee", "grocery"}},
	{"Transport", []string{"gas", "uber", "taxi", "bus", "train", "transport"}},
	{"Entertainment", []string{"movie", "game", "entertainment", "concert", "show"}},
	{"Utilities", []string{"electric", "water", "internet", "phone", "utility"}},
	{"Healthcare", []string{"doctor", "medicine", "pharmacy", "health"}},
}

const (
	defaultTaskCategory    = "Personal"
	defaultExpenseCategory = "Other"
)

// containsAny reports whether lower contains any of the given substrings.
func containsAny(lower string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// inferCategory returns the first rule whose keyword appears in lower.
func inferCategory(lower string, rules []categoryRule, fallback string) string {
	for _, rule := range rules {
		if containsAny(lower, rule.keywords...) {
			return rule.name
		}
	}
	return fallback
}

// stripAll removes every match of the given patterns and collapses the
// remaining whitespace.
func stripAll(text string, patterns ...*regexp.Regexp) string {
	for _, pattern := range patterns {
		text = pattern.ReplaceAllString(text, " ")
	}
	return strings.Join(strings.Fields(text), " ")
}

// extractLocation pulls a location phrase out of "(at|in|@) <text>" up to a
// comma or newline. Empty string when absent.
func extractLocation(text string) string {
	match := locationPattern.FindStringSubmatch(text)
	if len(match) < 3 {
		return ""
	}
	return strings.TrimSpace(match[2])
}

// taskFilter maps listing phrases to a coarse filter name.
func taskFilter(lower string) string {
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "high priority"):
		return "high_priority"
	case strings.Contains(lower, "today"):
		return "today"
	case strings.Contains(lower, "overdue"):
		return "overdue"
	default:
		return "all"
	}
}

// combineDateTime merges the first extracted date and time into a
// "<date> <HH:MM>" string. Empty when neither is present; missing halves
// default to today / "09:00". Any time token that cannot be reparsed also
// falls back to "09:00".
func combineDateTime(dates, times []string, today string) string {
	if len(dates) == 0 && len(times) == 0 {
		return ""
	}

	date := today
	if len(dates) > 0 {
		date = dates[0]
	}

	clock := "09:00"
	if len(times) > 0 {
		if normalized, ok := normalizeClock(times[0]); ok {
			clock = normalized
		}
	}

	return date + " " + clock
}

// normalizeClock converts an extracted time literal to 24-hour HH:MM.
func normalizeClock(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "am") || strings.Contains(raw, "pm") {
		for _, layout := range []string{"3:04 pm", "3 pm", "3:04pm", "3pm"} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed.Format("15:04"), true
			}
		}
		return "", false
	}

	raw = strings.TrimPrefix(raw, "at ")
	if !clockPattern.MatchString(raw) {
		return "", false
	}
	if !strings.Contains(raw, ":") {
		raw += ":00"
	}
	if parsed, err := time.Parse("15:04", raw); err == nil {
		return parsed.Format("15:04"), true
	}
	return "", false
}
