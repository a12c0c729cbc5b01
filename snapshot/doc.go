// Package snapshot persists a built region adjacency graph to a byte
// stream and restores it later, optionally without the label volume.
//
// What:
//
//   - Write serializes a rag.Rag to an io.Writer: shape, canonical
//     edges, face counts, per-axis face lists, region ids, and — under
//     WithLabels — the label volume itself.
//   - Read rebuilds the graph from an io.Reader. A graph restored
//     without stored labels answers every structural query but fails
//     label-dependent operations with rag.ErrLabelsNotStored.
//
// Why:
//
//   - Building a graph over a large volume is the expensive step;
//     downstream passes (feature selection, decision training) want to
//     reload the finished graph, not rescan voxels.
//
// Format:
//
//	magic "IRAG" | version u16 | compression u8 | flags u8
//	uncompressed size u64 | stored size u64 | payload
//
// The payload is one little-endian block compressed as a whole; a
// stored size of zero marks an incompressible payload kept raw. The
// canonical edge order survives the round trip bit for bit.
//
// Options:
//
//   - WithCompression(None | LZ4 | Zstd): LZ4 is the default.
//   - WithLabels: store the label volume alongside the graph.
//
// Errors:
//
//   - ErrBadMagic, ErrBadVersion: the stream is not a graph snapshot
//     this package can read.
//   - ErrUnknownCompression: unrecognized compression byte.
//   - ErrCorrupt: truncated or inconsistent payload.
//   - rag.ErrLabelsNotStored (from Write): WithLabels on a graph that
//     has no label volume.
//
// See: rag.Restore for the reassembly contract.
package snapshot
