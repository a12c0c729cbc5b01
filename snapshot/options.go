package snapshot

// Option tunes snapshot encoding. Zero options give LZ4 compression
// without stored labels.
type Option func(*config)

// config is the resolved encoding configuration.
type config struct {
	compression Compression
	withLabels  bool
}

// newConfig resolves options over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{compression: LZ4}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithCompression selects the payload compression mode. Unknown modes
// fail at Write with ErrUnknownCompression.
func WithCompression(c Compression) Option {
	return func(cfg *config) { cfg.compression = c }
}

// WithLabels stores the label volume alongside the graph, so the
// restored graph supports label-dependent operations (region
// statistics, groundtruth decisions, merge segmentation).
func WithLabels() Option {
	return func(cfg *config) { cfg.withLabels = true }
}
