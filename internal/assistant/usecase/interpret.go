package usecase

import (
	"context"
	"strings"

	"personal-assistant/internal/assistant"
)

// Interpret runs the NLU core over one utterance, consulting the cache
// first. The cache key carries the current date because relative tokens
// like "tomorrow" resolve differently across days.
func (uc *implUseCase) Interpret(ctx context.Context, input assistant.InterpretInput) (assistant.InterpretOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.InterpretOutput{}, assistant.ErrEmptyText
	}

	key := uc.today() + "|" + strings.ToLower(text)
	if result, ok := uc.cache.Get(key); ok {
		return assistant.InterpretOutput{Result: result, Cached: true}, nil
	}

	result := uc.processor.Process(ctx, text, input.Context)
	uc.cache.Add(key, result)

	return assistant.InterpretOutput{Result: result}, nil
}
