package nlu

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"personal-assistant/internal/model"
	"personal-assistant/pkg/datemath"
)

var (
	datePatterns = compileAll(
		`\b(today|tomorrow)\b`,
		`\b(next|this)\s+(week|month|monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`,
		`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
		`\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}\b`,
		`\bin\s+\d+\s+(days?|weeks?|months?)\b`,
	)

	timePatterns = compileAll(
		`\b\d{1,2}(:\d{2})?\s*(am|pm)\b`,
		`\b(morning|afternoon|evening|night)\b`,
		`\bat\s+\d{1,2}(:\d{2})?\b`,
	)

	amountPatterns = compileAll(
		`\$\d+(\.\d{2})?`,
		`\b\d+\s*dollars?\b`,
		`\b\d+(\.\d{2})?\s*bucks?\b`,
	)

	urgentPattern    = regexp.MustCompile(`\b(urgent|asap|immediately|critical|high\s+priority)\b`)
	importantPattern = regexp.MustCompile(`\b(important|medium\s+priority)\b`)
	lowPattern       = regexp.MustCompile(`\b(low\s+priority|when\s+possible|eventually)\b`)

	numericPattern = regexp.MustCompile(`\d+(\.\d+)?`)
)

// Extractor pulls dates, times, amounts and a priority level out of free
// text. All operations are pure and total: a non-match yields an empty
// slice, never an error.
type Extractor struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewExtractor creates an Extractor. A nil now falls back to time.Now.
func NewExtractor(dates *datemath.Parser, now func() time.Time) *Extractor {
	if now == nil {
		now = time.Now
	}
	return &Extractor{dates: dates, now: now}
}

// Extract runs all four extractions over the same text.
func (e *Extractor) Extract(text string) EntityBundle {
	return EntityBundle{
		Dates:    e.ExtractDates(text),
		Times:    e.ExtractTimes(text),
		Amounts:  e.ExtractAmounts(text),
		Priority: e.ExtractPriority(text),
	}
}

// ExtractDates returns date references in first-match order, duplicates
// preserved. The relative tokens the parser understands come back as
// DateFormat strings; everything else is the raw matched text.
func (e *Extractor) ExtractDates(text string) []string {
	lower := strings.ToLower(text)
	base := e.now()

	dates := make([]string, 0)
	for _, pattern := range datePatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			normalized, _ := e.dates.Normalize(match, base)
			dates = append(dates, normalized)
		}
	}
	return dates
}

// ExtractTimes returns time references as the matched literals, in
// first-match order. No normalization happens here; combining a time with
// a date is the synthesizer's job.
func (e *Extractor) ExtractTimes(text string) []string {
	lower := strings.ToLower(text)

	times := make([]string, 0)
	for _, pattern := range timePatterns {
		times = append(times, pattern.FindAllString(lower, -1)...)
	}
	return times
}

// ExtractAmounts returns monetary amounts as non-negative values. The
// matching patterns only admit numeric text, so parse failures should be
// impossible; a malformed match is discarded rather than raised.
func (e *Extractor) ExtractAmounts(text string) []float64 {
	lower := strings.ToLower(text)

	amounts := make([]float64, 0)
	for _, pattern := range amountPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			numeric := numericPattern.FindString(match)
			if numeric == "" {
				continue
			}
			value, err := strconv.ParseFloat(numeric, 64)
			if err != nil {
				continue
			}
			amounts = append(amounts, value)
		}
	}
	return amounts
}

// ExtractPriority maps priority words to a level. Precedence is strict:
// urgent wins even when a low-priority phrase also appears in the text.
func (e *Extractor) ExtractPriority(text string) int {
	lower := strings.ToLower(text)

	switch {
	case urgentPattern.MatchString(lower):
		return model.PriorityUrgent
	case importantPattern.MatchString(lower):
		return model.PriorityHigh
	case lowPattern.MatchString(lower):
		return model.PriorityLow
	default:
		return model.PriorityMedium
	}
}
