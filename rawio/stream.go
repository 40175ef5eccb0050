package rawio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nickdarling94/tsfile/errs"
)

// StreamReadAt reads exactly len(buf) bytes from f starting at off, failing
// with errs.ErrShortTransfer if fewer are available (e.g. the file was
// truncated underneath an open handle).
func StreamReadAt(f *os.File, buf []byte, off int64) error {
	n, err := f.ReadAt(buf, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("rawio: read at %d: %w", off, err)
	}
	if n != len(buf) {
		return fmt.Errorf("rawio: read at %d: got %d of %d bytes: %w", off, n, len(buf), errs.ErrShortTransfer)
	}

	return nil
}

// StreamWriteAt writes exactly len(buf) bytes to f starting at off.
func StreamWriteAt(f *os.File, buf []byte, off int64) error {
	n, err := f.WriteAt(buf, off)
	if err != nil {
		return fmt.Errorf("rawio: write at %d: %w", off, err)
	}
	if n != len(buf) {
		return fmt.Errorf("rawio: write at %d: wrote %d of %d bytes: %w", off, n, len(buf), errs.ErrShortTransfer)
	}

	return nil
}

// AppendStream appends buf to the end of f, returning the offset it was
// written at.
func AppendStream(f *os.File, buf []byte) (int64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("rawio: stat: %w", err)
	}

	off := info.Size()
	if err := StreamWriteAt(f, buf, off); err != nil {
		return 0, err
	}

	return off, nil
}
