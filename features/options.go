package features

import (
	"context"
	"log/slog"
)

// Option tunes table assembly. Zero options give the sequential,
// strict defaults.
type Option func(*config)

// config is the resolved assembly configuration.
type config struct {
	workers       int
	prefixColumns bool
	ctx           context.Context
	log           *slog.Logger
}

// newConfig resolves options over the defaults: sequential run,
// background context, discarded logs, collisions rejected.
func newConfig(opts ...Option) config {
	cfg := config{
		workers: 1,
		ctx:     context.Background(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithWorkers runs independent accumulators concurrently with at most n
// goroutines. Values below 2 keep the sequential path. Columns are
// merged in invocation order, so the result is identical to the
// sequential run.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.workers = n
		} else {
			c.workers = 1
		}
	}
}

// WithPrefixColumns qualifies every column as "<accumulator>.<name>"
// instead of failing with ErrColumnCollision on duplicates.
func WithPrefixColumns() Option {
	return func(c *config) { c.prefixColumns = true }
}

// WithContext attaches a cancellation context polled during
// accumulation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger routes debug-level assembly progress to l. A nil l is
// ignored; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
