// Package sema implements a process-local counting semaphore. A new
// semaphore starts with count 0; Wait blocks while the count is zero,
// Signal raises it and wakes one waiter. The handle is safe to share
// between goroutines; the owner calls Close exactly once after all
// users are done.
package sema

import (
	"sync/atomic"

	"github.com/mgtv-tech/gosema/pkg/errors"
	"github.com/mgtv-tech/gosema/pkg/log"
	"github.com/mgtv-tech/gosema/pkg/metric"
)

var (
	liveGauge = metric.NewGauge(metric.GaugeOpts{
		Namespace: "gosema",
		Subsystem: "sema",
		Name:      "live_handles",
		Help:      "semaphores created and not yet destroyed",
	})
	waiterGauge = metric.NewGauge(metric.GaugeOpts{
		Namespace: "gosema",
		Subsystem: "sema",
		Name:      "waiters",
		Help:      "goroutines currently blocked in Wait",
	})
	signalCounter = metric.NewCounter(metric.CounterOpts{
		Namespace: "gosema",
		Subsystem: "sema",
		Name:      "signals_total",
		Help:      "successful Signal calls",
	})
	waitCounter = metric.NewCounter(metric.CounterOpts{
		Namespace: "gosema",
		Subsystem: "sema",
		Name:      "waits_total",
		Help:      "successful Wait calls",
	})
)

// Sema is a counting semaphore handle.
type Sema struct {
	be     backend
	closed atomic.Bool
	logger log.Logger
}

// New creates a semaphore with count 0. On failure it logs the cause
// and returns nil; valid vs nil is the only outcome callers observe.
func New() *Sema {
	be, err := newBackend()
	if err != nil {
		log.Errorf("sema : failed to create semaphore : %v", err)
		return nil
	}
	liveGauge.Inc()
	return &Sema{
		be:     be,
		logger: log.WithLogger("[sema] "),
	}
}

// Signal increments the count by one, waking one blocked waiter if any.
// Which of several waiters wakes is up to the scheduler. With the count
// at the ceiling, Signal fails with ErrCountOverflow.
func (s *Sema) Signal() error {
	if s == nil || s.closed.Load() {
		return errors.WithStack(ErrInvalidHandle)
	}
	if err := s.be.post(); err != nil {
		s.logger.Errorf("signal failed : %v", err)
		return errors.WithStack(err)
	}
	signalCounter.Inc()
	return nil
}

// Wait decrements the count by one, blocking while it is zero. The wait
// is unbounded and cannot be canceled; a caller that needs a bounded
// wait must race a timer-driven Signal in a higher layer. A wake-up
// that delivered no unit is retried internally and never observed.
func (s *Sema) Wait() error {
	if s == nil || s.closed.Load() {
		return errors.WithStack(ErrInvalidHandle)
	}
	waiterGauge.Inc()
	defer waiterGauge.Add(-1)
	if err := waitRetry(s.be); err != nil {
		s.logger.Errorf("wait failed : %v", err)
		return errors.WithStack(err)
	}
	waitCounter.Inc()
	return nil
}

// waitRetry re-enters the native wait until a unit is actually
// consumed, absorbing interrupted wake-ups.
func waitRetry(be backend) error {
	for {
		err := be.wait()
		if err != errInterrupted {
			return err
		}
	}
}

// Close releases the native resource at most once; afterwards the
// handle is observably invalid. The caller must ensure no goroutine is
// blocked in Wait and none will use the handle again. Close of a nil or
// already-closed handle logs a warning, releases nothing and reports
// ErrInvalidHandle.
func (s *Sema) Close() error {
	if s == nil {
		log.Warnf("sema : close of uninitialized semaphore")
		return errors.WithStack(ErrInvalidHandle)
	}
	if !s.closed.CompareAndSwap(false, true) {
		s.logger.Warnf("close of destroyed semaphore")
		return errors.WithStack(ErrInvalidHandle)
	}
	liveGauge.Add(-1)
	if err := s.be.close(); err != nil {
		s.logger.Errorf("close failed : %v", err)
		return errors.WithStack(err)
	}
	return nil
}
