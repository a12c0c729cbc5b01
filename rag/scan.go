// File: rag/scan.go
package rag

import (
	"iter"

	"github.com/DerThorsten/ilastikrag/volume"
)

// ScanAxis returns the lazy sequence of unordered region pairs observed
// across every face-adjacent voxel pair with differing labels along one
// axis, in row-major scan order. Pairs arrive canonicalized (min, max)
// and are not deduplicated; Build performs the dedup fold. Ranging the
// sequence again re-scans the volume. An axis outside [0, NumAxes)
// panics, like slice indexing.
// Complexity: O(n) per full consumption, n = voxel count.
func ScanAxis(labels *volume.Labels, axis int) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		scanAxisFaces(labels, axis, func(u, v uint32, _ int) bool {
			return yield(Edge{U: u, V: v})
		})
	}
}

// scanAxisFaces walks every face-adjacent voxel pair along axis and
// invokes visit with the canonical pair and the flat offset of the
// lower voxel. visit returning false stops the walk. Axes of length 1
// yield nothing.
//
// The volume decomposes into outer × n × inner blocks, n = length of
// the scanned axis, inner = its stride; offsets therefore increase
// monotonically, which fixes the first-seen edge order.
func scanAxisFaces(labels *volume.Labels, axis int, visit func(u, v uint32, off int) bool) {
	shape := labels.Shape()
	if axis < 0 || axis >= len(shape) {
		panic("rag: scan axis out of range")
	}
	n := shape[axis]
	if n < 2 {
		return
	}
	data := labels.Data()
	inner := shape.Strides()[axis]
	block := n * inner
	for base := 0; base < len(data); base += block {
		for i := 0; i < n-1; i++ {
			row := base + i*inner
			for j := 0; j < inner; j++ {
				off := row + j
				a, b := data[off], data[off+inner]
				if a == b {
					continue
				}
				if a > b {
					a, b = b, a
				}
				if !visit(a, b, off) {
					return
				}
			}
		}
	}
}
