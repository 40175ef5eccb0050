//go:build unix

package rawio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapping is a memory-mapped view of a file's current extent, used for
// random-access range reads without a syscall per access. It must be
// remapped (Close then Map again) after the backing file grows.
type Mapping struct {
	data []byte
}

// Map mmaps the first size bytes of f for reading and writing.
func Map(f *os.File, size int) (*Mapping, error) {
	if size == 0 {
		return &Mapping{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("rawio: mmap %d bytes: %w", size, err)
	}

	return &Mapping{data: data}, nil
}

// Bytes returns the mapped region.
func (m *Mapping) Bytes() []byte { return m.data }

// ReadRange copies the mapped bytes in [off, off+len(dst)) into dst.
func (m *Mapping) ReadRange(off int, dst []byte) {
	copy(dst, m.data[off:off+len(dst)])
}

// WriteRange copies src into the mapped bytes starting at off.
func (m *Mapping) WriteRange(off int, src []byte) {
	copy(m.data[off:off+len(src)], src)
}

// Close unmaps the region. A zero-size Mapping closes as a no-op.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}

	err := unix.Munmap(m.data)
	m.data = nil

	if err != nil {
		return fmt.Errorf("rawio: munmap: %w", err)
	}

	return nil
}
