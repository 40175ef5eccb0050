package indexed

import (
	"github.com/nickdarling94/tsfile/engine"
	"github.com/nickdarling94/tsfile/header"
	"github.com/nickdarling94/tsfile/internal/options"
)

// fileConfig collects Create/Open's optional settings, forwarding each to
// the header or engine layer that actually implements it.
type fileConfig struct {
	createOpts []header.CreateOption
	openOpts   []engine.OpenOption
}

// Option configures Create/Open. It mirrors the teacher's functional
// option pattern (blob.NumericEncoderOption), specialized to fileConfig.
type Option = options.Option[*fileConfig]

// WithReservedHeaderBytes reserves n extra zero bytes in the written
// header, past the type signature subheader, for future layout growth.
func WithReservedHeaderBytes(n int) Option {
	return options.NoError(func(c *fileConfig) {
		c.createOpts = append(c.createOpts, header.WithReservedBytes(n))
	})
}

// WithMappedReads routes ReadByOrdinal/Search through a memory-mapped view
// of the file instead of a pread per call.
func WithMappedReads(enabled bool) Option {
	return options.NoError(func(c *fileConfig) {
		c.openOpts = append(c.openOpts, engine.WithMappedReads(enabled))
	})
}
