// File: features/assemble.go
package features

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// ctxCheckMask throttles context polls inside accumulation loops to one
// per 4096 rows.
const ctxCheckMask = 1<<12 - 1

// ComputeTable runs the accumulators over every canonical edge and
// merges their columns into one table. Rows follow the canonical edge
// order of the graph; columns are the concatenation of each
// accumulator's output in invocation order. Every accumulator is
// initialized eagerly before any accumulation happens, so precondition
// failures (missing auxiliary data, shape mismatch) surface first.
//
// Duplicate column names fail with ErrColumnCollision unless
// WithPrefixColumns qualifies them. WithWorkers runs independent
// accumulators concurrently; the merge stays in invocation order, so
// the result is identical to the sequential run.
//
// Complexity: Σ accumulator cost + O(rows × cols) for the merge.
func ComputeTable(r *rag.Rag, aux *volume.Field, accs []Accumulator, opts ...Option) (*Table, error) {
	if r == nil {
		return nil, ErrNilGraph
	}
	cfg := newConfig(opts...)
	if len(accs) == 0 {
		return nil, ErrNoAccumulators
	}
	for i, acc := range accs {
		if acc == nil {
			return nil, fmt.Errorf("features: ComputeTable: nil accumulator at index %d: %w",
				i, ErrNoAccumulators)
		}
	}

	for _, acc := range accs {
		if err := acc.Init(r, aux); err != nil {
			return nil, err
		}
	}

	edges := r.Edges()
	if cfg.workers > 1 {
		g, gctx := errgroup.WithContext(cfg.ctx)
		g.SetLimit(cfg.workers)
		for _, acc := range accs {
			g.Go(func() error { return accumulate(gctx, acc, edges) })
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("features: ComputeTable: %w", err)
		}
	} else {
		for _, acc := range accs {
			if err := accumulate(cfg.ctx, acc, edges); err != nil {
				return nil, fmt.Errorf("features: ComputeTable: %w", err)
			}
		}
	}

	t := &Table{
		edges:  edges,
		byName: make(map[string]int),
	}
	for _, acc := range accs {
		cols, err := acc.Finalize()
		if err != nil {
			return nil, err
		}
		for _, col := range cols {
			name := col.Name
			if cfg.prefixColumns {
				name = acc.Name() + "." + name
			}
			if len(col.Values) != len(edges) {
				return nil, fmt.Errorf("features: column %q has %d values for %d edges: %w",
					name, len(col.Values), len(edges), ErrBadColumn)
			}
			if _, dup := t.byName[name]; dup {
				return nil, fmt.Errorf("features: column %q: %w", name, ErrColumnCollision)
			}
			t.byName[name] = len(t.columns)
			t.names = append(t.names, name)
			values := make([]float64, len(col.Values))
			copy(values, col.Values)
			t.columns = append(t.columns, values)
		}
	}
	cfg.log.Debug("table assembled", "rows", len(edges), "cols", len(t.columns))

	return t, nil
}

// accumulate drives one accumulator across all rows with periodic
// context polls.
func accumulate(ctx context.Context, acc Accumulator, edges []rag.Edge) error {
	for i, e := range edges {
		if i&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := acc.Accumulate(i, e); err != nil {
			return err
		}
	}

	return nil
}
