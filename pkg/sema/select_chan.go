//go:build semachan

package sema

func newBackend() (backend, error) {
	return newChanBackend()
}
