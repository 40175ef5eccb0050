package codec

import "github.com/nickdarling94/tsfile/bitstream"

// CompositeCodec writes each member field in declared order for every item
// in a block. A block commits atomically: [varint itemCount][member-
// interleaved deltas]. If any member fails partway through an item, the
// whole partial block is discarded (the bit writer is rewound to its
// pre-block checkpoint) and every member is reset, so the composite codec
// is ready to restart a fresh block with the same residual items.
type CompositeCodec[T any] struct {
	fields []Field[T]
}

// NewCompositeCodec creates a composite codec over the given fields,
// written and read in the given order.
func NewCompositeCodec[T any](fields ...Field[T]) *CompositeCodec[T] {
	return &CompositeCodec[T]{fields: fields}
}

// EncodeBlock writes itemCount followed by every field of every item,
// interleaved per item. On failure, the block is fully discarded and the
// codec's member state is reset; the caller should retry with the same
// items (e.g. after choosing a different block size or codec parameters).
func (c *CompositeCodec[T]) EncodeBlock(w *bitstream.Writer, items []T) error {
	checkpoint := w.Checkpoint()

	if err := w.WriteSignedVarint(int64(len(items))); err != nil {
		w.Truncate(checkpoint)
		return err
	}

	for _, item := range items {
		for _, f := range c.fields {
			if err := f.encode(w, item); err != nil {
				w.Truncate(checkpoint)
				c.reset()

				return err
			}
		}
	}

	return nil
}

// DecodeBlock reads one block written by EncodeBlock: the item count
// followed by every field of every item, interleaved per item.
func (c *CompositeCodec[T]) DecodeBlock(r *bitstream.Reader) ([]T, error) {
	n, err := r.ReadSignedVarint()
	if err != nil {
		return nil, err
	}

	items := make([]T, n)
	for i := range items {
		for _, f := range c.fields {
			if err := f.decode(r, &items[i]); err != nil {
				return nil, err
			}
		}
	}

	return items, nil
}

// reset restores every member codec to its initial state so the next
// EncodeBlock call begins a fresh block (first item written in full).
func (c *CompositeCodec[T]) reset() {
	for _, f := range c.fields {
		f.reset()
	}
}
