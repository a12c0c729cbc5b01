// File: snapshot/write.go
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/DerThorsten/ilastikrag/rag"
)

// Write serializes the graph to w in the snapshot format. By default
// the payload is LZ4-compressed and the label volume is omitted; see
// WithCompression and WithLabels.
// Complexity: O(E + F + R + n) time (n only under WithLabels).
func Write(w io.Writer, r *rag.Rag, opts ...Option) error {
	if w == nil {
		return fmt.Errorf("snapshot: Write: nil writer: %w", ErrCorrupt)
	}
	if r == nil {
		return fmt.Errorf("snapshot: Write: nil graph: %w", ErrCorrupt)
	}
	cfg := newConfig(opts...)
	if !cfg.compression.valid() {
		return fmt.Errorf("snapshot: Write: mode %d: %w", cfg.compression, ErrUnknownCompression)
	}
	if cfg.withLabels && !r.HasLabels() {
		return fmt.Errorf("snapshot: Write: %w", rag.ErrLabelsNotStored)
	}

	payload := encodePayload(r, cfg.withLabels)
	stored, storedLen, err := compress(payload, cfg.compression)
	if err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}

	var hdr [headerSize + 16]byte
	copy(hdr[0:4], magic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], formatVersion)
	hdr[6] = uint8(cfg.compression)
	if cfg.withLabels {
		hdr[7] |= flagLabels
	}
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(len(payload)))
	binary.LittleEndian.PutUint64(hdr[16:24], storedLen)
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("snapshot: Write: %w", err)
	}

	return nil
}

// encodePayload lays the graph out as one little-endian block: shape,
// canonical edges, face counts, per-axis face lists, region ids, and
// the optional label data.
func encodePayload(r *rag.Rag, withLabels bool) []byte {
	shape := r.Shape()
	edges := r.Edges()

	size := 2 + 8*len(shape) + 8 + 12*len(edges) + 8*len(shape) + 8
	for axis := 0; axis < r.NumAxes(); axis++ {
		size += 12 * len(r.FacesAlongAxis(axis))
	}
	regions := r.RegionIDs()
	size += 4 * len(regions)
	if withLabels {
		size += 4 * shape.Len()
	}

	buf := make([]byte, 0, size)
	le := binary.LittleEndian

	buf = le.AppendUint16(buf, uint16(len(shape)))
	for _, n := range shape {
		buf = le.AppendUint64(buf, uint64(n))
	}

	buf = le.AppendUint64(buf, uint64(len(edges)))
	for _, e := range edges {
		buf = le.AppendUint32(buf, e.U)
		buf = le.AppendUint32(buf, e.V)
	}
	for i := range edges {
		buf = le.AppendUint32(buf, uint32(r.FaceCount(i)))
	}

	for axis := 0; axis < r.NumAxes(); axis++ {
		faces := r.FacesAlongAxis(axis)
		buf = le.AppendUint64(buf, uint64(len(faces)))
		for _, f := range faces {
			buf = le.AppendUint32(buf, uint32(f.Edge))
			buf = le.AppendUint64(buf, uint64(f.Offset))
		}
	}

	buf = le.AppendUint64(buf, uint64(len(regions)))
	for _, id := range regions {
		buf = le.AppendUint32(buf, id)
	}

	if withLabels {
		for _, v := range r.Labels().Data() {
			buf = le.AppendUint32(buf, v)
		}
	}

	return buf
}

// compress encodes the payload with the selected mode. The returned
// stored length is zero when the payload is kept raw (mode None or an
// incompressible block), in which case the raw payload is returned.
func compress(payload []byte, mode Compression) ([]byte, uint64, error) {
	switch mode {
	case None:
		return payload, 0, nil
	case LZ4:
		bound := lz4.CompressBlockBound(len(payload))
		dst := make([]byte, bound)
		n, err := lz4.CompressBlock(payload, dst, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 || n >= len(payload) {
			return payload, 0, nil
		}

		return dst[:n], uint64(n), nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, 0, err
		}
		dst := enc.EncodeAll(payload, nil)
		_ = enc.Close()
		if len(dst) >= len(payload) {
			return payload, 0, nil
		}

		return dst, uint64(len(dst)), nil
	default:
		return nil, 0, ErrUnknownCompression
	}
}
