// Package nlu is the rule-based natural language understanding core of the
// assistant. It classifies an utterance into intents, extracts entities,
// and proposes actions; it never calls a language model, never touches
// storage, and never fails.
package nlu

import (
	"context"
	"strings"
	"time"

	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/log"
)

// Processor is the single public entry point of the core. It holds no
// mutable state and is safe for concurrent use.
type Processor struct {
	l     log.Logger
	dates *datemath.Parser
	ext   *Extractor
	now   func() time.Time
}

// New creates a Processor. A nil now falls back to time.Now.
func New(l log.Logger, dates *datemath.Parser, now func() time.Time) *Processor {
	if now == nil {
		now = time.Now
	}
	return &Processor{
		l:     l,
		dates: dates,
		ext:   NewExtractor(dates, now),
		now:   now,
	}
}

// Process classifies text, extracts entities once, and synthesizes actions
// for each matched intent in table order. Extraction anomalies degrade to
// defaults instead of propagating; the result always has at least one
// intent and a confidence in [0,1].
func (p *Processor) Process(ctx context.Context, text string, _ Context) InterpretationResult {
	intents := Classify(text)
	entities := p.ext.Extract(text)

	lower := strings.ToLower(text)
	actions := make([]Action, 0)
	for _, intent := range intents {
		actions = append(actions, p.synthesize(intent, text, lower, entities)...)
	}

	confidence := confidenceFor(intents)
	p.l.Debugf(ctx, "nlu.Process: intents=%v actions=%d confidence=%.1f", intents, len(actions), confidence)

	return InterpretationResult{
		Intents:    intents,
		Entities:   entities,
		Actions:    actions,
		Confidence: confidence,
	}
}

// confidenceFor scores the classification by how many specific
// (non-conversation) intents matched.
func confidenceFor(intents []IntentTag) float64 {
	specific := 0
	for _, intent := range intents {
		if intent != IntentConversation {
			specific++
		}
	}

	switch {
	case specific >= 2:
		return ConfidenceMultiple
	case specific == 1:
		return ConfidenceSingle
	default:
		return ConfidenceDefault
	}
}

func (p *Processor) today() string {
	return p.dates.Today(p.now())
}
