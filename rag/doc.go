// Package rag builds region adjacency graphs from N-dimensional label
// volumes and answers structural queries about them.
//
// What:
//
//   - ScanAxis streams the unordered region pairs across face-adjacent
//     voxels with differing labels along one axis, lazily.
//   - Build folds the scans of all axes into a deduplicated canonical
//     edge set in first-seen order, counting shared boundary faces per
//     edge and retaining per-axis face lists for feature extraction.
//   - Query surface: edge and region enumeration, O(1)-amortized edge
//     lookup, degrees, sorted neighbor lists, per-axis boundary faces.
//   - Undirected exposes the graph through gonum's graph.Undirected
//     protocol for interop with general-purpose graph algorithms.
//   - EdgeDecisions / EdgeDecisionMap classify edges against a
//     groundtruth volume; MergeSegmentation collapses regions across
//     dissolved edges into a relabeled volume.
//   - Restore reassembles a graph from exported parts (snapshot codecs).
//
// Why:
//
//   - Superpixel pipelines need the region graph plus per-edge boundary
//     statistics long after the voxel data stops being convenient to
//     rescan.
//   - A fixed canonical edge order makes feature tables, decision
//     vectors, and serialized snapshots trivially alignable.
//
// Complexity:
//
//   - Build: O(ndim × n) time, O(E + F + R) memory
//     (n = voxels, E = edges, F = boundary faces, R = regions).
//   - EdgeIndex / FaceCount / Degree: O(1) amortized.
//   - Neighbors: O(deg); RegionIDs: O(R).
//
// Options:
//
//   - WithAllowEmpty: accept scans with no adjacency (zero-edge graph).
//   - WithWorkers(n): scan axes concurrently; results are identical to
//     the sequential build.
//   - WithContext(ctx): cancellation for long scans.
//   - WithLogger(l): debug-level scan progress via log/slog.
//
// Errors:
//
//   - ErrEmptyGraph: no adjacency found and WithAllowEmpty absent.
//   - ErrDecisionLength: decision slice does not match the edge count.
//   - ErrLabelsNotStored: label-dependent call on a graph restored
//     without its volume.
//   - ErrMalformed: Restore input violating graph invariants.
package rag
