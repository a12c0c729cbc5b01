package rag

import (
	"context"
	"log/slog"
)

// Option tunes graph construction. Zero options give the sequential,
// strict defaults.
type Option func(*config)

// config is the resolved build configuration.
type config struct {
	allowEmpty bool
	workers    int
	ctx        context.Context
	log        *slog.Logger
}

// newConfig resolves options over the defaults: sequential scan,
// background context, discarded logs, empty scans rejected.
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

// WithAllowEmpty accepts volumes whose scan yields no adjacency,
// producing a graph with zero edges instead of ErrEmptyGraph.
func WithAllowEmpty() Option {
	return func(c *config) { c.allowEmpty = true }
}

// WithWorkers scans axes concurrently with at most n goroutines.
// Values below 2 keep the sequential path. The folded result is
// identical to the sequential one.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 1 {
			c.workers = n
		} else {
			c.workers = 1
		}
	}
}

// WithContext attaches a cancellation context polled during the scan.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger routes debug-level scan progress to l. A nil l is ignored;
// the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
