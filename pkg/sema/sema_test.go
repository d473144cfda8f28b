package sema

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/mgtv-tech/gosema/pkg/log"
)

var testLogger = log.WithLogger("[sema] ")

var backendFactories = map[string]func() backend{
	"cond": func() backend { b, _ := newCondBackend(); return b },
	"chan": func() backend { b, _ := newChanBackend(); return b },
}

func newTestSema(be backend) *Sema {
	return &Sema{be: be, logger: testLogger}
}

func forEachBackend(t *testing.T, f func(t *testing.T, s *Sema)) {
	for name, newBe := range backendFactories {
		t.Run(name, func(t *testing.T) {
			f(t, newTestSema(newBe()))
		})
	}
}

// assertBlocked asserts that done does not fire within a short grace
// period, i.e. the operation behind it is still blocked.
func assertBlocked(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
		t.Fatal("expected the operation to block")
	case <-time.After(50 * time.Millisecond):
	}
}

func assertUnblocked(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the operation to complete")
	}
}

func TestSignalsThenWaitsDoNotBlock(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		const n = 100
		for i := 0; i < n; i++ {
			require.Nil(t, s.Signal())
		}
		for i := 0; i < n; i++ {
			done := make(chan struct{})
			go func() {
				defer close(done)
				assert.Nil(t, s.Wait())
			}()
			assertUnblocked(t, done)
		}

		// count is back to zero : one more wait must block
		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.Nil(t, s.Wait())
		}()
		assertBlocked(t, done)
		require.Nil(t, s.Signal())
		assertUnblocked(t, done)
		assert.Nil(t, s.Close())
	})
}

func TestWaitBlocksUntilSignal(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.Nil(t, s.Wait())
		}()

		assertBlocked(t, done)
		require.Nil(t, s.Signal())
		assertUnblocked(t, done)
		assert.Nil(t, s.Close())
	})
}

func TestAllWaitersComplete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		const k = 32
		for i := 0; i < k; i++ {
			require.Nil(t, s.Signal())
		}

		var g errgroup.Group
		for i := 0; i < k; i++ {
			g.Go(s.Wait)
		}
		assert.Nil(t, g.Wait())
		assert.Nil(t, s.Close())
	})
}

func TestNeverMoreWaitsThanSignals(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		const producers = 8
		const perProducer = 200
		const total = producers * perProducer

		var g errgroup.Group
		for i := 0; i < producers; i++ {
			g.Go(func() error {
				for j := 0; j < perProducer; j++ {
					if err := s.Signal(); err != nil {
						return err
					}
				}
				return nil
			})
		}
		for i := 0; i < producers; i++ {
			g.Go(func() error {
				for j := 0; j < perProducer; j++ {
					if err := s.Wait(); err != nil {
						return err
					}
				}
				return nil
			})
		}
		require.Nil(t, g.Wait())

		// every unit has been consumed : the next wait must block until
		// one more signal arrives
		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.Nil(t, s.Wait())
		}()
		assertBlocked(t, done)
		require.Nil(t, s.Signal())
		assertUnblocked(t, done)
		assert.Nil(t, s.Close())
	})
}

func TestThreeSignalsThreeWaitsFourthBlocks(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		for i := 0; i < 3; i++ {
			require.Nil(t, s.Signal())
		}
		for i := 0; i < 3; i++ {
			done := make(chan struct{})
			go func() {
				defer close(done)
				assert.Nil(t, s.Wait())
			}()
			assertUnblocked(t, done)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			assert.Nil(t, s.Wait())
		}()
		assertBlocked(t, done)
		require.Nil(t, s.Signal())
		assertUnblocked(t, done)
		assert.Nil(t, s.Close())
	})
}

func TestCreateCloseNoLeak(t *testing.T) {
	baseline := liveGauge.Value()
	for i := 0; i < 10000; i++ {
		s := New()
		require.NotNil(t, s)
		require.Nil(t, s.Close())
	}
	assert.Equal(t, baseline, liveGauge.Value())
}

func TestInvalidHandleOperations(t *testing.T) {
	var s *Sema
	assert.True(t, errors.Is(s.Signal(), ErrInvalidHandle))
	assert.True(t, errors.Is(s.Wait(), ErrInvalidHandle))
	assert.True(t, errors.Is(s.Close(), ErrInvalidHandle))
}

func TestClosedHandleOperations(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	require.Nil(t, s.Close())

	assert.True(t, errors.Is(s.Signal(), ErrInvalidHandle))
	assert.True(t, errors.Is(s.Wait(), ErrInvalidHandle))
	// double close is a warning, not a second release
	assert.True(t, errors.Is(s.Close(), ErrInvalidHandle))
}

func TestCreateThenCloseImmediately(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.Nil(t, s.Close())
}

func TestSignalFromManyGoroutines(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Sema) {
		const k = 16

		var started sync.WaitGroup
		started.Add(k)
		var g errgroup.Group
		for i := 0; i < k; i++ {
			g.Go(func() error {
				started.Done()
				return s.Wait()
			})
		}
		started.Wait()

		for i := 0; i < k; i++ {
			require.Nil(t, s.Signal())
		}
		assert.Nil(t, g.Wait())
		assert.Nil(t, s.Close())
	})
}
