// Package features computes per-edge feature tables over a region
// adjacency graph: statistics of the voxel values along each shared
// boundary, statistics of the two incident regions, and geometric
// descriptors of the boundary itself.
//
// What:
//
//   - Accumulator is the capability set every feature provider
//     implements: eager Init validation, per-edge Accumulate in
//     canonical order, Finalize into named columns.
//   - EdgeStatistics summarizes the boundary-face values of each edge
//     (a face value is the mean of the two voxels across the face).
//   - RegionStatistics summarizes whole regions and emits, per
//     statistic, a sum column and an absolute-difference column for the
//     two regions of each edge.
//   - Geometry emits boundary_face_count and size_ratio without any
//     auxiliary data.
//   - ComputeTable assembles accumulators into a Table; ComputeFeatures
//     selects them by name ("edge_mean", "sp_quantiles_75", ...).
//   - Table is a detached result: it owns its rows and columns and may
//     outlive the graph. Export via WriteCSV or ToMarkdown.
//
// Why:
//
//   - Edge classifiers consume fixed-width feature matrices aligned
//     with the canonical edge order; recomputing them must be
//     deterministic down to the bit.
//
// Statistics:
//
//   - count, sum, minimum, maximum, mean, variance (population),
//     skewness, kurtosis (excess), quantiles 10/25/50/75/90 with linear
//     interpolation. Region counts are reduced by the ndim-th root
//     before the sum/difference split (square root in 2D, cube root in
//     3D). Moments of a zero-spread sample are NaN.
//
// Complexity:
//
//   - EdgeStatistics: O(F + Σ f·log f) time, O(F) memory
//     (F = boundary faces, f = faces per edge; the log term only when
//     quantiles are requested).
//   - RegionStatistics: O(n + Σ r·log r) time, O(n) memory
//     (n = voxels, r = voxels per region).
//   - Geometry: O(n + E).
//
// Options:
//
//   - WithWorkers(n): run independent accumulators concurrently;
//     results are identical to the sequential run.
//   - WithPrefixColumns: qualify every column as "<accumulator>.<name>"
//     instead of failing on duplicates.
//   - WithContext(ctx), WithLogger(l): as in package rag.
//
// Errors:
//
//   - ErrMissingAuxiliaryData: an accumulator needs voxel values and
//     none were supplied.
//   - ErrColumnCollision: two accumulators emit the same column name.
//   - ErrUnknownFeature: unparseable feature name or statistic.
//   - ErrNoAccumulators: nothing to compute.
//   - ErrNotInitialized: Accumulate or Finalize before Init.
//   - ErrBadColumn: an accumulator emitted misaligned columns.
//   - volume.ErrShapeMismatch (wrapped): auxiliary data of another shape.
//   - rag.ErrLabelsNotStored: region-dependent accumulator on a graph
//     restored without labels.
package features
