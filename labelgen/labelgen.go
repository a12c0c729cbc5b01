package labelgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/DerThorsten/ilastikrag/volume"
)

// Sentinel errors for generator parameters.
var (
	// ErrBadSeedCount indicates a seed count below 1 or above the voxel count.
	ErrBadSeedCount = errors.New("labelgen: seed count out of range")
	// ErrBadCellSize indicates a cell extent below 1.
	ErrBadCellSize = errors.New("labelgen: cell size out of range")
)

// defaultSeed replaces seed==0 to keep zero-value calls reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic generator for the given seed,
// mapping seed==0 onto the fixed default.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Voronoi partitions the volume into numSeeds regions: random distinct
// seed voxels flooded breadth-first across face neighbors, a grid
// voronoi under the BFS metric. Region ids run 1..numSeeds; every voxel
// is assigned. Identical inputs produce identical volumes.
// Complexity: O(n × ndim) time, O(n) memory, n = voxel count.
func Voronoi(shape volume.Shape, numSeeds int, seed int64) (*volume.Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	total := shape.Len()
	if numSeeds < 1 || numSeeds > total {
		return nil, fmt.Errorf("labelgen: Voronoi: %d seeds for %d voxels: %w",
			numSeeds, total, ErrBadSeedCount)
	}

	rng := rngFromSeed(seed)
	data := make([]uint32, total) // 0 marks unassigned
	queue := make([]int, 0, total)
	for i, off := range rng.Perm(total)[:numSeeds] {
		data[off] = uint32(i + 1)
		queue = append(queue, off)
	}

	// Multi-source BFS flood; the queue order fixes tie-breaking.
	strides := shape.Strides()
	for head := 0; head < len(queue); head++ {
		off := queue[head]
		id := data[off]
		for axis, stride := range strides {
			c := off / stride % shape[axis]
			if c > 0 && data[off-stride] == 0 {
				data[off-stride] = id
				queue = append(queue, off-stride)
			}
			if c < shape[axis]-1 && data[off+stride] == 0 {
				data[off+stride] = id
				queue = append(queue, off+stride)
			}
		}
	}

	return volume.NewLabels(shape, data)
}

// Blocks tiles the volume into a regular grid of cell-sized blocks
// (the last block of an axis may be smaller). Block ids run row-major
// starting at 1.
// Complexity: O(n × ndim) time, O(n) memory.
func Blocks(shape volume.Shape, cell int) (*volume.Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if cell < 1 {
		return nil, fmt.Errorf("labelgen: Blocks: cell=%d: %w", cell, ErrBadCellSize)
	}

	ndim := len(shape)
	blocks := make([]int, ndim)
	for i, n := range shape {
		blocks[i] = (n + cell - 1) / cell
	}

	data := make([]uint32, shape.Len())
	coords := make([]int, ndim)
	for off := range data {
		id := 0
		for i := 0; i < ndim; i++ {
			id = id*blocks[i] + coords[i]/cell
		}
		data[off] = uint32(id + 1)

		for i := ndim - 1; i >= 0; i-- {
			coords[i]++
			if coords[i] < shape[i] {
				break
			}
			coords[i] = 0
		}
	}

	return volume.NewLabels(shape, data)
}
