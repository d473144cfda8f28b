package sema

import "errors"

// maxCount is the count ceiling of the native resource.
const maxCount = 1<<31 - 1

var (
	// ErrInvalidHandle is reported when an operation is called on a nil
	// or destroyed handle. The native resource is never touched.
	ErrInvalidHandle = errors.New("invalid semaphore handle")

	// ErrCountOverflow is reported by Signal when the count is at maxCount.
	ErrCountOverflow = errors.New("semaphore count overflow")

	// errInterrupted : the native wait woke up without consuming a unit.
	// Absorbed by the retry loop in Wait, never visible to callers.
	errInterrupted = errors.New("semaphore wait interrupted")
)

// backend is the native counting resource behind a Sema. post raises the
// count and wakes one waiter, wait blocks until a unit can be consumed.
// wait may return errInterrupted after a wake-up that delivered no unit;
// the caller must re-enter. Which variant backs a Sema is fixed at build
// time, see select_cond.go and select_chan.go.
type backend interface {
	post() error
	wait() error
	close() error
}
