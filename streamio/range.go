package streamio

import (
	"iter"

	"github.com/nickdarling94/tsfile/bufpool"
)

// Source is the read side of a file handle capable of producing an
// ordinal-addressed item range: uniform.File and indexed.File both satisfy
// it.
type Source[T any] interface {
	ReadByOrdinal(firstOrdinal, count int64) ([]T, error)
}

// Window is the ramp schedule a Range call uses to size its buffers,
// mirroring the parameters of bufpool.Growing.
type Window struct {
	InitSize  int
	GrowAfter int
	LargeSize int
}

// Range streams [firstOrdinal, firstOrdinal+count) from src through a
// bufpool.Growing sequence, reading each window's worth of items into the
// yielded buffer. If a read fails, the error is yielded once (with a nil
// buffer) and the sequence stops.
func Range[T any](pool *bufpool.Pool[T], src Source[T], firstOrdinal, count int64, w Window) iter.Seq2[*bufpool.Buffer[T], error] {
	return func(yield func(*bufpool.Buffer[T], error) bool) {
		if count <= 0 {
			return
		}

		ordinal := firstOrdinal

		for buf := range bufpool.Growing(pool, int(count), w.InitSize, w.GrowAfter, w.LargeSize) {
			n := int64(buf.Count)

			items, err := src.ReadByOrdinal(ordinal, n)
			if err != nil {
				yield(nil, err)
				return
			}

			copy(buf.Array, items)
			buf.SetCount(int(n))
			ordinal += n

			if !yield(buf, nil) {
				return
			}
		}
	}
}
