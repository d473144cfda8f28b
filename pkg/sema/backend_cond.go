package sema

import "sync"

// condBackend counts with a mutex and a condition variable. A waiter
// performs at most one cond.Wait per call; if another goroutine took the
// posted unit before the waiter reacquired the lock, it reports
// errInterrupted so the caller re-enters the wait.
type condBackend struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int64
}

func newCondBackend() (*condBackend, error) {
	b := &condBackend{}
	b.cond = sync.NewCond(&b.mu)
	return b, nil
}

func (b *condBackend) post() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count >= maxCount {
		return ErrCountOverflow
	}
	b.count++
	b.cond.Signal()
	return nil
}

func (b *condBackend) wait() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == 0 {
		b.cond.Wait()
		if b.count == 0 {
			return errInterrupted
		}
	}
	b.count--
	return nil
}

func (b *condBackend) close() error {
	return nil
}
