//go:build linux

package membuf

import (
	"golang.org/x/sys/unix"

	"bytekit/internal/errors"
)

// allocLarge maps an anonymous region for buffers too large for the pools.
// Mapped regions are returned to the kernel on release instead of lingering
// on the Go heap.
func allocLarge(n int) ([]byte, func([]byte), error) {
	v, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, errors.NewError("mmap of ", n, " bytes failed: ", err).Base(ErrAllocationFailure)
	}
	return v[:n], func(p []byte) {
		_ = unix.Munmap(p[:cap(p)])
	}, nil
}
