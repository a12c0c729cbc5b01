// Package volume holds the N-dimensional inputs of a region adjacency
// graph: integer label volumes and scalar auxiliary fields.
//
// What:
//
//   - Shape describes axis lengths, outermost axis first, with row-major
//     (C-order) strides over a flat backing slice.
//   - Labels is an immutable N-D volume of uint32 region ids.
//   - Field is an immutable N-D volume of float32 per-voxel values
//     (an intensity channel, a probability map) aligned with a Labels volume.
//   - Adapters (LabelsFrom2D, LabelsFrom3D, LabelsFromInts, FieldFrom2D,
//     FieldFromFloats) validate and deep-copy caller data at the package
//     boundary.
//
// Why:
//
//   - Adjacency scans index voxels along every axis; a flat slice plus
//     strides makes that cheap in any dimension.
//   - Validating once at the boundary lets every consumer assume
//     well-formed, immutable inputs.
//
// Complexity:
//
//   - Construction and adapters: O(n) time and memory, n = voxel count.
//   - At / AtOffset: O(1).
//   - Mirror: O(n).
//
// Errors:
//
//   - ErrInvalidShape: fewer than two axes, a non-positive axis length,
//     ragged nested input, or data length not matching the shape.
//   - ErrInvalidLabelType: adapter input outside the uint32 range.
//   - ErrShapeMismatch: a Field paired with a Labels volume of another shape.
package volume
