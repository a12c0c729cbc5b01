// File: rag/build.go
package rag

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/DerThorsten/ilastikrag/volume"
)

// ctxCheckMask throttles context polls inside scan loops to one per
// 4096 faces.
const ctxCheckMask = 1<<12 - 1

// faceRec is one scanned boundary face buffered by the parallel path.
type faceRec struct {
	u, v uint32
	off  int
}

// Build constructs the region adjacency graph of a label volume.
//
// Every face-adjacent voxel pair with differing labels contributes one
// shared boundary face. Distinct pairs become the canonical edge set in
// first-seen scan order (axis 0 first, row-major within each axis);
// repeated sightings increment the per-edge face count. The volume is
// retained by the graph.
//
// By default a scan with no adjacency fails with ErrEmptyGraph;
// WithAllowEmpty turns that case into a graph with zero edges.
// WithWorkers(n) scans axes concurrently; the fold stays in axis order,
// so the result is identical to the sequential build.
//
// Complexity: O(ndim × n) time, O(E + F + R) memory
// (n = voxels, E = edges, F = boundary faces, R = regions).
func Build(labels *volume.Labels, opts ...Option) (*Rag, error) {
	if labels == nil {
		return nil, fmt.Errorf("rag: Build: nil label volume: %w", volume.ErrInvalidShape)
	}
	cfg := newConfig(opts...)
	shape := labels.Shape()

	r := &Rag{
		shape:   shape,
		labels:  labels,
		index:   make(map[uint64]int32),
		axial:   make([][]Face, len(shape)),
		regions: roaring.New(),
	}

	var err error
	if cfg.workers > 1 {
		err = r.foldParallel(labels, cfg)
	} else {
		err = r.foldSequential(labels, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("rag: Build: %w", err)
	}

	r.regions.AddMany(labels.Data())
	if len(r.edges) == 0 && !cfg.allowEmpty {
		return nil, ErrEmptyGraph
	}
	r.buildAdjacency()
	cfg.log.Debug("graph built",
		"regions", r.NumRegions(), "edges", len(r.edges), "axes", len(shape))

	return r, nil
}

// foldSequential scans axis after axis, folding faces directly into the
// graph.
func (r *Rag) foldSequential(labels *volume.Labels, cfg config) error {
	var scanned int
	var stop error
	for axis := 0; axis < len(r.shape); axis++ {
		scanAxisFaces(labels, axis, func(u, v uint32, off int) bool {
			if scanned&ctxCheckMask == 0 {
				if err := cfg.ctx.Err(); err != nil {
					stop = err

					return false
				}
			}
			scanned++
			r.addFace(axis, u, v, off)

			return true
		})
		if stop != nil {
			return stop
		}
		cfg.log.Debug("axis scanned", "axis", axis, "faces", len(r.axial[axis]))
	}

	return nil
}

// foldParallel scans every axis in its own goroutine, then folds the
// buffered faces in axis order. The fold order matches the sequential
// path exactly.
func (r *Rag) foldParallel(labels *volume.Labels, cfg config) error {
	ndim := len(r.shape)
	recs := make([][]faceRec, ndim)
	g, gctx := errgroup.WithContext(cfg.ctx)
	g.SetLimit(cfg.workers)
	for axis := 0; axis < ndim; axis++ {
		g.Go(func() error {
			var rs []faceRec
			var scanned int
			scanAxisFaces(labels, axis, func(u, v uint32, off int) bool {
				if scanned&ctxCheckMask == 0 && gctx.Err() != nil {
					return false
				}
				scanned++
				rs = append(rs, faceRec{u: u, v: v, off: off})

				return true
			})
			if err := gctx.Err(); err != nil {
				return err
			}
			recs[axis] = rs
			cfg.log.Debug("axis scanned", "axis", axis, "faces", len(rs))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for axis, rs := range recs {
		for _, rec := range rs {
			r.addFace(axis, rec.u, rec.v, rec.off)
		}
	}

	return nil
}

// addFace folds one scanned boundary face into the graph: first
// sighting of a pair appends the canonical edge, every sighting
// increments its face count and extends the per-axis face list.
func (r *Rag) addFace(axis int, u, v uint32, off int) {
	key := pairKey(u, v)
	idx, ok := r.index[key]
	if !ok {
		idx = int32(len(r.edges))
		r.index[key] = idx
		r.edges = append(r.edges, Edge{U: u, V: v})
		r.faceCounts = append(r.faceCounts, 0)
	}
	r.faceCounts[idx]++
	r.axial[axis] = append(r.axial[axis], Face{Edge: idx, Offset: off})
}

// buildAdjacency derives sorted neighbor lists from the edge set.
func (r *Rag) buildAdjacency() {
	r.adj = make(map[uint32][]uint32, r.regions.GetCardinality())
	for _, e := range r.edges {
		r.adj[e.U] = append(r.adj[e.U], e.V)
		r.adj[e.V] = append(r.adj[e.V], e.U)
	}
	for _, list := range r.adj {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	}
}

// pairKey packs a canonical (U, V) pair into one map key.
func pairKey(u, v uint32) uint64 {
	return uint64(u)<<32 | uint64(v)
}
