package engine

import "github.com/nickdarling94/tsfile/internal/options"

// openConfig collects Create/Open's optional settings.
type openConfig struct {
	mappedReads bool
}

// OpenOption configures Create/Open. It mirrors the teacher's functional
// option pattern (blob.NumericEncoderOption), specialized to openConfig.
type OpenOption = options.Option[*openConfig]

// WithMappedReads routes ReadRange through a memory-mapped view of the file
// (rawio.Mapping) instead of a pread per call. The mapping is grown
// (remapped) whenever a read reaches past its current extent. The default
// is the stream path.
func WithMappedReads(enabled bool) OpenOption {
	return options.NoError(func(c *openConfig) {
		c.mappedReads = enabled
	})
}
