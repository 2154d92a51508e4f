package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

const DefaultTTL = 60 * time.Second

type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	status      Status
	value       any
	err         error
	fetchedAt   time.Time
	invalidated bool
}

// Result is a snapshot of one cache entry, used by jobs and tests.
type Result struct {
	Status    Status
	Value     any
	Err       error
	FetchedAt time.Time
	Stale     bool
}

// QueryCache is the process-wide read cache shared by every view. Entries
// are fresh for a fixed window; a read past the window serves the last-known
// value and revalidates in the background. Concurrent reads for the same key
// collapse to a single upstream call. Explicit invalidation forces the next
// read to refetch before serving.
type QueryCache struct {
	mu         sync.RWMutex
	ttl        time.Duration
	entries    map[string]*entry
	gens       map[string]uint64
	refreshing map[string]struct{}
	group      singleflight.Group
}

func New(ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &QueryCache{
		ttl:        ttl,
		entries:    make(map[string]*entry),
		gens:       make(map[string]uint64),
		refreshing: make(map[string]struct{}),
	}
}

// Key builds a cache key from a resource name and optional identifiers,
// e.g. Key("artist", id) -> "artist:<id>".
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

func (qc *QueryCache) Get(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	qc.mu.RLock()
	e, ok := qc.entries[key]
	if ok && e.status == StatusSuccess && !e.invalidated {
		value := e.value
		fresh := time.Since(e.fetchedAt) < qc.ttl
		qc.mu.RUnlock()
		if !fresh {
			qc.revalidate(key, fetch)
		}
		return value, nil
	}
	qc.mu.RUnlock()

	return qc.fetch(ctx, key, fetch)
}

func (qc *QueryCache) fetch(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	value, err, _ := qc.group.Do(key, func() (any, error) {
		// A waiter that queued behind the flight may arrive after the entry
		// was already refilled.
		qc.mu.RLock()
		if e, ok := qc.entries[key]; ok && e.status == StatusSuccess && !e.invalidated && time.Since(e.fetchedAt) < qc.ttl {
			v := e.value
			qc.mu.RUnlock()
			return v, nil
		}
		qc.mu.RUnlock()

		gen := qc.markLoading(key)
		v, err := fetch(ctx)
		if err != nil {
			qc.storeError(key, err)
			return nil, err
		}
		qc.store(key, v, gen)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// revalidate refreshes a stale entry in the background while callers keep
// getting the last-known value. A refresh failure leaves the entry serving
// that value.
func (qc *QueryCache) revalidate(key string, fetch FetchFunc) {
	qc.mu.Lock()
	if _, busy := qc.refreshing[key]; busy {
		qc.mu.Unlock()
		return
	}
	qc.refreshing[key] = struct{}{}
	gen := qc.gens[key]
	qc.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		value, err := fetch(ctx)

		qc.mu.Lock()
		delete(qc.refreshing, key)
		if err == nil {
			qc.entries[key] = &entry{
				status:      StatusSuccess,
				value:       value,
				fetchedAt:   time.Now(),
				invalidated: qc.gens[key] != gen,
			}
		} else if e, ok := qc.entries[key]; ok {
			e.err = err
		}
		qc.mu.Unlock()
	}()
}

// markLoading flags the entry and returns the key's generation at fetch
// start, so a store can tell whether an invalidation landed mid-flight.
func (qc *QueryCache) markLoading(key string) uint64 {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	if e, ok := qc.entries[key]; ok {
		e.status = StatusLoading
	} else {
		qc.entries[key] = &entry{status: StatusLoading}
	}
	return qc.gens[key]
}

// store refills the entry. Data fetched before an invalidation that landed
// mid-flight is pre-mutation state: it is kept for display but stays marked
// invalidated, so the next read refetches instead of trusting it for a full
// freshness window.
func (qc *QueryCache) store(key string, value any, gen uint64) {
	qc.mu.Lock()
	qc.entries[key] = &entry{
		status:      StatusSuccess,
		value:       value,
		fetchedAt:   time.Now(),
		invalidated: qc.gens[key] != gen,
	}
	qc.mu.Unlock()
}

// storeError keeps the previous value so consumers can keep rendering
// last-known-good data next to the error.
func (qc *QueryCache) storeError(key string, err error) {
	qc.mu.Lock()
	if e, ok := qc.entries[key]; ok {
		e.status = StatusError
		e.err = err
	} else {
		qc.entries[key] = &entry{status: StatusError, err: err}
	}
	qc.mu.Unlock()
}

// Invalidate marks entries so the next read bypasses the freshness window
// and refetches before serving. Bumping the generation covers fetches
// already in flight; forgetting the singleflight key keeps later readers
// from joining a pre-invalidation flight.
func (qc *QueryCache) Invalidate(keys ...string) {
	qc.mu.Lock()
	for _, key := range keys {
		qc.gens[key]++
		if e, ok := qc.entries[key]; ok {
			e.invalidated = true
		}
	}
	qc.mu.Unlock()

	for _, key := range keys {
		qc.group.Forget(key)
	}
}

func (qc *QueryCache) Peek(key string) (Result, bool) {
	qc.mu.RLock()
	defer qc.mu.RUnlock()
	e, ok := qc.entries[key]
	if !ok {
		return Result{}, false
	}
	return Result{
		Status:    e.status,
		Value:     e.value,
		Err:       e.err,
		FetchedAt: e.fetchedAt,
		Stale:     e.invalidated || time.Since(e.fetchedAt) >= qc.ttl,
	}, true
}

// Sweep evicts entries that have not been refreshed within maxAge and
// returns how many were dropped.
func (qc *QueryCache) Sweep(maxAge time.Duration) int {
	qc.mu.Lock()
	defer qc.mu.Unlock()
	dropped := 0
	for key, e := range qc.entries {
		if e.status == StatusLoading {
			continue
		}
		if time.Since(e.fetchedAt) > maxAge {
			delete(qc.entries, key)
			delete(qc.gens, key)
			dropped++
		}
	}
	return dropped
}

func (qc *QueryCache) Len() int {
	qc.mu.RLock()
	defer qc.mu.RUnlock()
	return len(qc.entries)
}
