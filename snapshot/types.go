package snapshot

import "errors"

// Sentinel errors for snapshot encoding and decoding.
var (
	// ErrBadMagic indicates a stream that does not start with the
	// snapshot magic.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrBadVersion indicates a format version this package cannot read.
	ErrBadVersion = errors.New("snapshot: unsupported format version")
	// ErrUnknownCompression indicates an unrecognized compression mode.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrCorrupt indicates a truncated or internally inconsistent
	// payload.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// None stores the payload raw.
	None Compression = 0
	// LZ4 favors speed; the default.
	LZ4 Compression = 1
	// Zstd favors ratio.
	Zstd Compression = 2
)

// String names the compression mode.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// valid reports whether c is a mode this package implements.
func (c Compression) valid() bool { return c <= Zstd }

// Stream header constants. The header is 8 bytes: magic, version,
// compression byte, flags byte; two u64 payload sizes follow.
const (
	formatVersion = uint16(1)
	headerSize    = 8

	flagLabels = uint8(1 << 0)
)

var magic = [4]byte{'I', 'R', 'A', 'G'}
