package labelgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DerThorsten/ilastikrag/labelgen"
	"github.com/DerThorsten/ilastikrag/volume"
)

// TestVoronoi_CoversVolume checks that every voxel is assigned and the
// id range is exactly 1..numSeeds.
func TestVoronoi_CoversVolume(t *testing.T) {
	labels, err := labelgen.Voronoi(volume.Shape{20, 30}, 12, 42)
	require.NoError(t, err)

	seen := make(map[uint32]bool)
	for _, id := range labels.Data() {
		require.NotZero(t, id, "every voxel must be assigned")
		require.LessOrEqual(t, id, uint32(12))
		seen[id] = true
	}
	require.Len(t, seen, 12, "every seed id must survive the flood")
}

// TestVoronoi_Deterministic requires identical volumes for identical
// seeds, and maps seed 0 onto the fixed default.
func TestVoronoi_Deterministic(t *testing.T) {
	a, err := labelgen.Voronoi(volume.Shape{16, 16}, 8, 7)
	require.NoError(t, err)
	b, err := labelgen.Voronoi(volume.Shape{16, 16}, 8, 7)
	require.NoError(t, err)
	require.Equal(t, a.Data(), b.Data())

	zero, err := labelgen.Voronoi(volume.Shape{16, 16}, 8, 0)
	require.NoError(t, err)
	def, err := labelgen.Voronoi(volume.Shape{16, 16}, 8, 1)
	require.NoError(t, err)
	require.Equal(t, def.Data(), zero.Data())
}

// TestVoronoi_3D floods a small volume across all three axes.
func TestVoronoi_3D(t *testing.T) {
	labels, err := labelgen.Voronoi(volume.Shape{6, 7, 8}, 5, 3)
	require.NoError(t, err)
	require.Equal(t, volume.Shape{6, 7, 8}, labels.Shape())

	seen := make(map[uint32]bool)
	for _, id := range labels.Data() {
		require.NotZero(t, id)
		seen[id] = true
	}
	require.Len(t, seen, 5)
}

// TestVoronoi_BadSeedCount rejects out-of-range seed counts.
func TestVoronoi_BadSeedCount(t *testing.T) {
	_, err := labelgen.Voronoi(volume.Shape{4, 4}, 0, 1)
	require.ErrorIs(t, err, labelgen.ErrBadSeedCount)

	_, err = labelgen.Voronoi(volume.Shape{4, 4}, 17, 1)
	require.ErrorIs(t, err, labelgen.ErrBadSeedCount)

	_, err = labelgen.Voronoi(volume.Shape{4}, 2, 1)
	require.ErrorIs(t, err, volume.ErrInvalidShape)
}

// TestBlocks_Layout pins the 4×4, cell-2 tiling to its four quadrants.
func TestBlocks_Layout(t *testing.T) {
	labels, err := labelgen.Blocks(volume.Shape{4, 4}, 2)
	require.NoError(t, err)

	want := []uint32{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	require.Equal(t, want, labels.Data())
}

// TestBlocks_RaggedTail keeps a short trailing block when the axis
// length is not a cell multiple.
func TestBlocks_RaggedTail(t *testing.T) {
	labels, err := labelgen.Blocks(volume.Shape{2, 5}, 2)
	require.NoError(t, err)

	want := []uint32{
		1, 1, 2, 2, 3,
		1, 1, 2, 2, 3,
	}
	require.Equal(t, want, labels.Data())
}

// TestBlocks_SingleBlock collapses to one region when the cell covers
// the volume.
func TestBlocks_SingleBlock(t *testing.T) {
	labels, err := labelgen.Blocks(volume.Shape{3, 3}, 10)
	require.NoError(t, err)

	for _, id := range labels.Data() {
		require.Equal(t, uint32(1), id)
	}
}

// TestBlocks_BadCell rejects non-positive cells.
func TestBlocks_BadCell(t *testing.T) {
	_, err := labelgen.Blocks(volume.Shape{4, 4}, 0)
	require.ErrorIs(t, err, labelgen.ErrBadCellSize)
}
