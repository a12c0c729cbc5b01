// Package rag defines the graph types and sentinel errors for region
// adjacency graphs built from label volumes.
package rag

import (
	"errors"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/DerThorsten/ilastikrag/volume"
)

// Sentinel errors for graph construction and graph-level operations.
var (
	// ErrEmptyGraph indicates the adjacency scan observed no region boundary.
	ErrEmptyGraph = errors.New("rag: adjacency scan produced no edges")
	// ErrDecisionLength indicates a decision slice whose length differs
	// from the edge count.
	ErrDecisionLength = errors.New("rag: decision count does not match edge count")
	// ErrLabelsNotStored indicates a label-dependent operation on a graph
	// restored without its label volume.
	ErrLabelsNotStored = errors.New("rag: label volume not stored")
	// ErrMalformed indicates Restore input violating graph invariants.
	ErrMalformed = errors.New("rag: malformed graph data")
)

// Edge is an unordered pair of adjacent region ids, stored canonically
// with U < V. Self-pairs are never stored.
type Edge struct {
	U, V uint32
}

// Face locates one shared boundary face: the index of the canonical
// edge it belongs to and the flat row-major offset of the lower voxel
// of the face-adjacent pair.
type Face struct {
	Edge   int32
	Offset int
}

// Rag is a region adjacency graph over a label volume. Each distinct
// unordered pair of face-adjacent region ids appears exactly once, in
// first-seen scan order. The graph is immutable once built; every query
// is safe for concurrent use.
type Rag struct {
	shape      volume.Shape
	labels     *volume.Labels // nil when restored without stored labels
	edges      []Edge         // canonical first-seen order
	faceCounts []int          // aligned with edges
	index      map[uint64]int32
	axial      [][]Face // per axis, scan order
	regions    *roaring.Bitmap
	adj        map[uint32][]uint32 // sorted neighbor lists
}
