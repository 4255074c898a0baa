package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyText     = errors.New("utterance is empty")
	ErrUnknownFilter = errors.New("unknown task filter")
)
