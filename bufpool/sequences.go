package bufpool

import "iter"

// Growing yields buffers covering exactly total items: initSize-capacity
// buffers for up to growAfter iterations, then switches to largeSize for
// the remainder. Each yielded buffer has Count = min(remaining, capacity).
// The sequence terminates once remaining reaches 0 or the consumer stops
// early; either way the final buffer is released back to the pool as a
// weak reference.
func Growing[T any](pool *Pool[T], total, initSize, growAfter, largeSize int) iter.Seq[*Buffer[T]] {
	return func(yield func(*Buffer[T]) bool) {
		var buf *Buffer[T]
		defer func() {
			if buf != nil {
				pool.release(buf)
			}
		}()

		remaining := total
		iteration := 0

		for remaining > 0 {
			size := initSize
			if iteration >= growAfter {
				size = largeSize
			}

			if buf == nil {
				buf = pool.acquire(size)
			} else {
				buf = grow(buf, size)
			}

			n := min(remaining, buf.Cap())
			buf.SetCount(n)

			if !yield(buf) {
				return
			}

			remaining -= n
			iteration++
		}
	}
}

// FixedSingle yields exactly one buffer of the requested size.
func FixedSingle[T any](pool *Pool[T], size int) iter.Seq[*Buffer[T]] {
	return func(yield func(*Buffer[T]) bool) {
		buf := pool.acquire(size)
		defer pool.release(buf)

		buf.SetCount(size)
		yield(buf)
	}
}

// FixedRamp yields buffers of size blockOne, then blockTwo, then smallSize
// repeated growAfter times, then largeSize indefinitely. Unlike Growing,
// there's no target count: the sequence only ends when the consumer stops
// requesting buffers.
func FixedRamp[T any](pool *Pool[T], blockOne, blockTwo, smallSize, growAfter, largeSize int) iter.Seq[*Buffer[T]] {
	return func(yield func(*Buffer[T]) bool) {
		var buf *Buffer[T]
		defer func() {
			if buf != nil {
				pool.release(buf)
			}
		}()

		step := 0
		smallIterations := 0

		for {
			var size int
			switch {
			case step == 0:
				size = blockOne
			case step == 1:
				size = blockTwo
			case smallIterations < growAfter:
				size = smallSize
				smallIterations++
			default:
				size = largeSize
			}
			step++

			if buf == nil {
				buf = pool.acquire(size)
			} else {
				buf = grow(buf, size)
			}

			buf.SetCount(size)

			if !yield(buf) {
				return
			}
		}
	}
}
