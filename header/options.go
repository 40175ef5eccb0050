package header

import (
	"fmt"

	"github.com/nickdarling94/tsfile/errs"
	"github.com/nickdarling94/tsfile/internal/options"
)

// createConfig collects CreateFile's optional settings.
type createConfig struct {
	reservedBytes int
}

// CreateOption configures CreateFile. It mirrors the teacher's functional
// option pattern (blob.NumericEncoderOption), specialized to createConfig.
type CreateOption = options.Option[*createConfig]

// WithReservedBytes pads the written header with n extra zero bytes after
// the subheader, reserved for a future subheader layout to grow into
// without shifting the record body. The default is zero.
func WithReservedBytes(n int) CreateOption {
	return options.New(func(c *createConfig) error {
		if n < 0 {
			return fmt.Errorf("header: %w: reserved bytes %d", errs.ErrRecordSizeInvalid, n)
		}
		c.reservedBytes = n

		return nil
	})
}
