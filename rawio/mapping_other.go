//go:build !unix

package rawio

import "os"

// Mapping is a non-mmap fallback for platforms without a unix mmap
// syscall: it reads the mapped extent into a plain heap buffer and writes
// changes straight through to the file, giving the same Mapping API at the
// cost of an up-front read and per-write syscalls.
type Mapping struct {
	f    *os.File
	data []byte
}

// Map reads the first size bytes of f into memory.
func Map(f *os.File, size int) (*Mapping, error) {
	data := make([]byte, size)
	if size > 0 {
		if err := StreamReadAt(f, data, 0); err != nil {
			return nil, err
		}
	}

	return &Mapping{f: f, data: data}, nil
}

// Bytes returns the in-memory copy of the mapped region.
func (m *Mapping) Bytes() []byte { return m.data }

// ReadRange copies the cached bytes in [off, off+len(dst)) into dst.
func (m *Mapping) ReadRange(off int, dst []byte) {
	copy(dst, m.data[off:off+len(dst)])
}

// WriteRange updates the cached bytes and writes them through to the file.
func (m *Mapping) WriteRange(off int, src []byte) {
	copy(m.data[off:off+len(src)], src)
	_ = StreamWriteAt(m.f, src, int64(off))
}

// Close releases the in-memory copy. No unmap syscall is needed.
func (m *Mapping) Close() error {
	m.data = nil
	return nil
}
