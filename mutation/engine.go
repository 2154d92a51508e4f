package mutation

import (
	"errors"
	"sync"
)

// ErrInFlight is returned when a mutation is requested for a target that
// already has one outstanding. The caller retries after the first settles.
var ErrInFlight = errors.New("another operation is already in progress for this target")

// Invalidator is the cache surface the engine touches after a successful
// mutation. Satisfied by *cache.QueryCache.
type Invalidator interface {
	Invalidate(keys ...string)
}

// Engine serializes state-changing operations per target. Targets are
// tracked by id, so operations on different entities never block each other,
// while a duplicate submission against the same entity is rejected early.
// On success the affected query keys are invalidated; on failure the cache
// is left untouched so readers keep the pre-mutation state.
type Engine struct {
	mu       sync.Mutex
	inflight map[string]struct{}
	cache    Invalidator
}

func NewEngine(cache Invalidator) *Engine {
	return &Engine{
		inflight: make(map[string]struct{}),
		cache:    cache,
	}
}

func (e *Engine) Run(target string, invalidates []string, fn func() error) error {
	e.mu.Lock()
	if _, busy := e.inflight[target]; busy {
		e.mu.Unlock()
		return ErrInFlight
	}
	e.inflight[target] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.inflight, target)
		e.mu.Unlock()
	}()

	if err := fn(); err != nil {
		return err
	}

	if e.cache != nil && len(invalidates) > 0 {
		e.cache.Invalidate(invalidates...)
	}
	return nil
}

func (e *Engine) InFlight(target string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, busy := e.inflight[target]
	return busy
}
