// Package labelgen produces deterministic synthetic label volumes for
// tests, examples, and benchmarks.
//
// What:
//
//   - Voronoi floods random seed points breadth-first into a grid
//     voronoi partition with ids 1..numSeeds.
//   - Blocks tiles the volume into a regular grid of cells with
//     row-major block ids starting at 1, for exact edge-count checks.
//
// Why:
//
//   - Adjacency-graph tests need volumes whose region layout is known
//     in advance or reproducible across runs.
//
// Determinism:
//
//   - Same shape, parameters, and seed ⇒ identical volumes on every
//     platform. seed==0 selects a fixed default seed.
//
// Complexity:
//
//   - Voronoi: O(n × ndim) time, O(n) memory, n = voxel count.
//   - Blocks: O(n × ndim) time, O(n) memory.
//
// Errors:
//
//   - ErrBadSeedCount: seed count below 1 or above the voxel count.
//   - ErrBadCellSize: cell extent below 1.
//   - volume.ErrInvalidShape: propagated from shape validation.
package labelgen
