//go:build !semachan

package sema

// The condition-variable backend is the default. Build with the
// semachan tag to switch to the channel backend.
func newBackend() (backend, error) {
	return newCondBackend()
}
