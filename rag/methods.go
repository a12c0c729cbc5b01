// File: rag/methods.go
package rag

import "github.com/DerThorsten/ilastikrag/volume"

// NumEdges returns the number of canonical edges.
// Complexity: O(1).
func (r *Rag) NumEdges() int { return len(r.edges) }

// NumRegions returns the number of distinct region ids in the volume.
// Complexity: O(1).
func (r *Rag) NumRegions() int { return int(r.regions.GetCardinality()) }

// MaxRegion returns the largest region id, or 0 for a graph with no
// regions.
// Complexity: O(1).
func (r *Rag) MaxRegion() uint32 {
	if r.regions.IsEmpty() {
		return 0
	}

	return r.regions.Maximum()
}

// RegionIDs returns every distinct region id in ascending order.
// Complexity: O(R).
func (r *Rag) RegionIDs() []uint32 { return r.regions.ToArray() }

// ContainsRegion reports whether id occurs in the graph.
// Complexity: O(1) amortized.
func (r *Rag) ContainsRegion(id uint32) bool { return r.regions.Contains(id) }

// Edges returns a copy of the canonical edge list in first-seen scan
// order.
// Complexity: O(E).
func (r *Rag) Edges() []Edge {
	out := make([]Edge, len(r.edges))
	copy(out, r.edges)

	return out
}

// EdgeAt returns the edge at index i in canonical order.
// Complexity: O(1).
func (r *Rag) EdgeAt(i int) Edge { return r.edges[i] }

// EdgeIndex returns the canonical index of the edge between two
// regions, accepting either argument order.
// Complexity: O(1) amortized.
func (r *Rag) EdgeIndex(u, v uint32) (int, bool) {
	if u > v {
		u, v = v, u
	}
	idx, ok := r.index[pairKey(u, v)]

	return int(idx), ok
}

// FaceCount returns the number of shared boundary faces of edge i.
// Complexity: O(1).
func (r *Rag) FaceCount(i int) int { return r.faceCounts[i] }

// FacesAlongAxis returns the boundary faces observed along one axis in
// scan order. The slice is owned by the graph; treat it as read-only.
// Complexity: O(1).
func (r *Rag) FacesAlongAxis(axis int) []Face { return r.axial[axis] }

// NumAxes returns the number of volume axes.
// Complexity: O(1).
func (r *Rag) NumAxes() int { return len(r.shape) }

// Degree returns the neighbor count of a region; unknown ids have
// degree 0.
// Complexity: O(1).
func (r *Rag) Degree(id uint32) int { return len(r.adj[id]) }

// Neighbors returns the regions adjacent to id in ascending order, or
// nil for an unknown or isolated region.
// Complexity: O(deg).
func (r *Rag) Neighbors(id uint32) []uint32 {
	list := r.adj[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]uint32, len(list))
	copy(out, list)

	return out
}

// Labels returns the label volume the graph was built from, or nil when
// the graph was restored without stored labels.
// Complexity: O(1).
func (r *Rag) Labels() *volume.Labels { return r.labels }

// HasLabels reports whether the label volume is available.
// Complexity: O(1).
func (r *Rag) HasLabels() bool { return r.labels != nil }

// Shape returns the shape of the label volume.
// Complexity: O(axes).
func (r *Rag) Shape() volume.Shape { return r.shape.Clone() }
