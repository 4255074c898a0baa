package nlu

import "strings"

// Classify returns the intent categories matched by text, in table order,
// each at most once. When no category matches, the result is exactly
// {IntentConversation}, so the returned slice is never empty.
func Classify(text string) []IntentTag {
	lower := strings.ToLower(text)

	detected := make([]IntentTag, 0, len(intentRules))
	for _, rule := range intentRules {
		for _, pattern := range rule.patterns {
			if pattern.MatchString(lower) {
				detected = append(detected, rule.tag)
				break
			}
		}
	}

	if len(detected) == 0 {
		detected = append(detected, IntentConversation)
	}

	return detected
}
