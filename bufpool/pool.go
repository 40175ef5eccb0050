package bufpool

import (
	"sync/atomic"
	"weak"
)

// Pool holds one weakly-referenced Buffer[T] cell. Acquiring a buffer of
// size s reuses the cell's backing array if its capacity >= s, else
// allocates a fresh one. The cell is populated again when the consumer
// releases its buffer, normally on iterator completion or abandonment.
//
// Acquiring the cached buffer is an atomic exchange against the pool cell
// (atomic.Pointer.Swap), so concurrent callers never observe the same
// cached buffer twice, but may each miss the cache under contention.
type Pool[T any] struct {
	cell atomic.Pointer[weak.Pointer[Buffer[T]]]
}

// NewPool creates an empty buffer pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{}
}

// acquire returns a buffer with capacity >= size, reusing the pool's cached
// array when possible.
func (p *Pool[T]) acquire(size int) *Buffer[T] {
	if cached := p.cell.Swap(nil); cached != nil {
		if buf := cached.Value(); buf != nil && buf.Cap() >= size {
			buf.Reset()
			return buf
		}
	}

	return newBuffer[T](size)
}

// release stores a weak reference to buf in the pool cell, overwriting
// whatever was cached before.
func (p *Pool[T]) release(buf *Buffer[T]) {
	wp := weak.Make(buf)
	p.cell.Store(&wp)
}

// grow returns a buffer with capacity >= size, reusing buf's backing array
// when it already has enough room, else allocating a new one. It does not
// consult the pool; it's used to grow the buffer a single sequence is
// iterating with mid-stream.
func grow[T any](buf *Buffer[T], size int) *Buffer[T] {
	if buf != nil && buf.Cap() >= size {
		return buf
	}

	return newBuffer[T](size)
}
