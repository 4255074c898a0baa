package usecase

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"personal-assistant/internal/assistant/repository"
	"personal-assistant/internal/nlu"
	"personal-assistant/internal/suggest"
	"personal-assistant/pkg/datemath"
	"personal-assistant/pkg/gcalendar"
	pkgLog "personal-assistant/pkg/log"
)

const defaultCacheSize = 256

type implUseCase struct {
	l         pkgLog.Logger
	processor *nlu.Processor
	repo      repository.Repository
	suggester *suggest.Suggester
	calendar  *gcalendar.Client // optional mirror for created events, may be nil
	dates     *datemath.Parser
	cache     *lru.Cache[string, nlu.InterpretationResult]
	timezone  string
	now       func() time.Time
}

// New creates a new assistant UseCase instance. cacheSize <= 0 takes the
// default; a nil now falls back to time.Now.
func New(
	l pkgLog.Logger,
	processor *nlu.Processor,
	repo repository.Repository,
	suggester *suggest.Suggester,
	calendar *gcalendar.Client,
	dates *datemath.Parser,
	cacheSize int,
	timezone string,
	now func() time.Time,
) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	// lru.New only fails on a non-positive size, which is guarded above.
	cache, _ := lru.New[string, nlu.InterpretationResult](cacheSize)

	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:         l,
		processor: processor,
		repo:      repo,
		suggester: suggester,
		calendar:  calendar,
		dates:     dates,
		cache:     cache,
		timezone:  timezone,
		now:       now,
	}
}

func (uc *implUseCase) today() string {
	return uc.dates.Today(uc.now())
}
