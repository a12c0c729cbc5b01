// Package ilastikrag builds region adjacency graphs (RAGs) over
// N-dimensional label volumes and computes per-edge feature tables.
//
// A label volume assigns every voxel a region id; the RAG holds one
// node per region and one edge per pair of regions that touch across
// at least one voxel face. Edge feature algorithms then summarize the
// voxel data along each shared boundary into a table, one row per
// edge, ready for edge classifiers and merge decisions.
//
// The work happens in the subpackages:
//
//	volume/   label and intensity volumes: shapes, adapters, validation
//	rag/      axis scanning, graph construction, structural queries,
//	          gonum interop, groundtruth decisions, merge segmentation
//	features/ edge/region statistic accumulators and the feature table
//	snapshot/ binary persistence of a built graph (none/lz4/zstd)
//	labelgen/ deterministic label-volume generators for tests
//
// Quick tour:
//
//	labels, _ := volume.LabelsFrom2D([][]int{
//		{1, 1, 2},
//		{1, 2, 2},
//	})
//	r, _ := rag.Build(labels)
//	tbl, _ := features.ComputeFeatures(r, intensity,
//		[]string{"edge_mean", "sp_count"})
//
// Everything is deterministic: the canonical edge order is the
// first-seen scan order, feature rows align with it, and concurrent
// scans or accumulators reproduce the sequential result bit for bit.
package ilastikrag
