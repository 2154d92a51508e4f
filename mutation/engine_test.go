package mutation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu   sync.Mutex
	keys []string
}

func (r *recordingInvalidator) Invalidate(keys ...string) {
	r.mu.Lock()
	r.keys = append(r.keys, keys...)
	r.mu.Unlock()
}

func (r *recordingInvalidator) invalidated() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

func TestDuplicateMutationForSameTargetRejectedEarly(t *testing.T) {
	engine := NewEngine(nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	var calls int

	go func() {
		done <- engine.Run("withdrawal-request:W1", nil, func() error {
			calls++
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	err := engine.Run("withdrawal-request:W1", nil, func() error {
		calls++
		return nil
	})
	require.ErrorIs(t, err, ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, calls, "the duplicate submission must not reach the network layer")
}

func TestDifferentTargetsDoNotBlockEachOther(t *testing.T) {
	engine := NewEngine(nil)

	bothStarted := make(chan struct{}, 2)
	release := make(chan struct{})
	errs := make(chan error, 2)

	for _, target := range []string{"withdrawal-request:A", "withdrawal-request:B"} {
		go func(target string) {
			errs <- engine.Run(target, nil, func() error {
				bothStarted <- struct{}{}
				<-release
				return nil
			})
		}(target)
	}

	for i := 0; i < 2; i++ {
		select {
		case <-bothStarted:
		case <-time.After(time.Second):
			t.Fatal("operations on distinct targets blocked each other")
		}
	}

	close(release)
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestSuccessInvalidatesRegisteredKeys(t *testing.T) {
	inv := &recordingInvalidator{}
	engine := NewEngine(inv)

	keys := []string{"withdraw-requests", "withdrawal-request:W1", "withdrawal-stats"}
	require.NoError(t, engine.Run("withdrawal-request:W1", keys, func() error { return nil }))
	assert.Equal(t, keys, inv.invalidated())
}

func TestFailureLeavesCacheUntouchedAndClearsMarker(t *testing.T) {
	inv := &recordingInvalidator{}
	engine := NewEngine(inv)

	boom := errors.New("remote rejection")
	err := engine.Run("artist:A1", []string{"artists"}, func() error { return boom })
	require.ErrorIs(t, err, boom)
	assert.Empty(t, inv.invalidated())

	assert.False(t, engine.InFlight("artist:A1"))
	require.NoError(t, engine.Run("artist:A1", nil, func() error { return nil }),
		"a failed mutation must be re-triggerable")
}
