// File: snapshot/read.go
package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/DerThorsten/ilastikrag/rag"
	"github.com/DerThorsten/ilastikrag/volume"
)

// Read rebuilds a graph from a snapshot stream. When the snapshot was
// written without WithLabels, the restored graph has no label volume
// and label-dependent operations fail with rag.ErrLabelsNotStored.
// Complexity: O(payload size).
func Read(rd io.Reader) (*rag.Rag, error) {
	var hdr [headerSize + 16]byte
	if _, err := io.ReadFull(rd, hdr[:]); err != nil {
		return nil, fmt.Errorf("snapshot: Read: header: %w", ErrCorrupt)
	}
	if [4]byte(hdr[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint16(hdr[4:6]); v != formatVersion {
		return nil, fmt.Errorf("snapshot: Read: version %d: %w", v, ErrBadVersion)
	}
	mode := Compression(hdr[6])
	if !mode.valid() {
		return nil, fmt.Errorf("snapshot: Read: mode %d: %w", mode, ErrUnknownCompression)
	}
	withLabels := hdr[7]&flagLabels != 0

	rawLen := binary.LittleEndian.Uint64(hdr[8:16])
	storedLen := binary.LittleEndian.Uint64(hdr[16:24])
	if rawLen > math.MaxInt || storedLen > rawLen {
		return nil, fmt.Errorf("snapshot: Read: sizes %d/%d: %w", storedLen, rawLen, ErrCorrupt)
	}

	n := storedLen
	if n == 0 { // raw payload
		n = rawLen
	}
	stored := make([]byte, n)
	if _, err := io.ReadFull(rd, stored); err != nil {
		return nil, fmt.Errorf("snapshot: Read: payload: %w", ErrCorrupt)
	}

	payload, err := decompress(stored, storedLen, rawLen, mode)
	if err != nil {
		return nil, fmt.Errorf("snapshot: Read: %w", err)
	}

	return decodePayload(payload, withLabels)
}

// decompress reverses compress. storedLen zero means the payload was
// kept raw.
func decompress(stored []byte, storedLen, rawLen uint64, mode Compression) ([]byte, error) {
	if storedLen == 0 {
		return stored, nil
	}
	switch mode {
	case LZ4:
		dst := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(stored, dst)
		if err != nil || uint64(n) != rawLen {
			return nil, ErrCorrupt
		}

		return dst, nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		dst, err := dec.DecodeAll(stored, make([]byte, 0, rawLen))
		if err != nil || uint64(len(dst)) != rawLen {
			return nil, ErrCorrupt
		}

		return dst, nil
	default:
		// None never stores a compressed block.
		return nil, ErrCorrupt
	}
}

// decodePayload parses the payload block and reassembles the graph via
// rag.Restore.
func decodePayload(payload []byte, withLabels bool) (*rag.Rag, error) {
	p := &payloadReader{buf: payload}

	ndim := int(p.u16())
	shape := make(volume.Shape, ndim)
	for i := range shape {
		shape[i] = int(p.u64())
	}

	numEdges := p.count(12)
	edges := make([]rag.Edge, numEdges)
	for i := range edges {
		edges[i] = rag.Edge{U: p.u32(), V: p.u32()}
	}
	faceCounts := make([]int, numEdges)
	for i := range faceCounts {
		faceCounts[i] = int(p.u32())
	}

	axial := make([][]rag.Face, ndim)
	for axis := range axial {
		n := p.count(12)
		faces := make([]rag.Face, n)
		for i := range faces {
			faces[i] = rag.Face{Edge: int32(p.u32()), Offset: int(p.u64())}
		}
		axial[axis] = faces
	}

	numRegions := p.count(4)
	regions := roaring.New()
	for i := 0; i < numRegions; i++ {
		regions.Add(p.u32())
	}

	var labels *volume.Labels
	if withLabels {
		if p.err == nil && shape.Validate() != nil {
			p.err = ErrCorrupt
		}
		if p.err == nil && shape.Len() > (len(p.buf)-p.off)/4 {
			p.err = ErrCorrupt
		}
		if p.err == nil {
			data := make([]uint32, shape.Len())
			for i := range data {
				data[i] = p.u32()
			}
			var err error
			labels, err = volume.NewLabels(shape, data)
			if err != nil {
				return nil, fmt.Errorf("snapshot: Read: labels: %w", err)
			}
		}
	}
	if p.err != nil || p.off != len(p.buf) {
		return nil, fmt.Errorf("snapshot: Read: %w", ErrCorrupt)
	}

	r, err := rag.Restore(shape, labels, edges, faceCounts, axial, regions)
	if err != nil {
		return nil, fmt.Errorf("snapshot: Read: %w", err)
	}

	return r, nil
}

// payloadReader walks the payload block with sticky bounds checking:
// the first overrun pins err and every later read returns zero.
type payloadReader struct {
	buf []byte
	off int
	err error
}

func (p *payloadReader) take(n int) []byte {
	if p.err != nil || p.off+n > len(p.buf) {
		p.err = ErrCorrupt

		return nil
	}
	b := p.buf[p.off : p.off+n]
	p.off += n

	return b
}

func (p *payloadReader) u16() uint16 {
	if b := p.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}

	return 0
}

func (p *payloadReader) u32() uint32 {
	if b := p.take(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}

	return 0
}

func (p *payloadReader) u64() uint64 {
	if b := p.take(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}

	return 0
}

// count reads an element count and rejects values the remaining bytes
// cannot possibly hold, given a minimum encoded size per element.
func (p *payloadReader) count(elemSize int) int {
	n := p.u64()
	if p.err == nil && n > uint64(len(p.buf)-p.off)/uint64(elemSize) {
		p.err = ErrCorrupt

		return 0
	}

	return int(n)
}
