package volume

import "math"

// Labels is an immutable N-dimensional volume of uint32 region ids over
// a flat row-major backing slice. Construct it with NewLabels or one of
// the adapters; every constructor deep-copies its input.
type Labels struct {
	shape   Shape
	strides []int
	data    []uint32
}

// NewLabels builds a label volume from a shape and flat row-major data.
// The shape must pass Shape.Validate and len(data) must equal
// shape.Len(); both arguments are copied.
// Complexity: O(n) time and memory, n = len(data).
func NewLabels(shape Shape, data []uint32) (*Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, ErrInvalidShape
	}
	buf := make([]uint32, len(data))
	copy(buf, data)

	return newLabels(shape, buf), nil
}

// LabelsFromInts converts flat int data into a label volume. Negative
// values or values above math.MaxUint32 fail with ErrInvalidLabelType.
// Complexity: O(n).
func LabelsFromInts(shape Shape, data []int) (*Labels, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, ErrInvalidShape
	}
	buf := make([]uint32, len(data))
	for i, v := range data {
		if v < 0 || int64(v) > math.MaxUint32 {
			return nil, ErrInvalidLabelType
		}
		buf[i] = uint32(v)
	}

	return newLabels(shape, buf), nil
}

// LabelsFrom2D converts a rectangular [][]int grid (rows × columns) into
// a 2-axis label volume. Ragged rows fail with ErrInvalidShape, values
// outside the uint32 range with ErrInvalidLabelType.
// Complexity: O(rows × cols).
func LabelsFrom2D(grid [][]int) (*Labels, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrInvalidShape
	}
	rows, cols := len(grid), len(grid[0])
	buf := make([]uint32, 0, rows*cols)
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrInvalidShape
		}
		for _, v := range row {
			if v < 0 || int64(v) > math.MaxUint32 {
				return nil, ErrInvalidLabelType
			}
			buf = append(buf, uint32(v))
		}
	}

	return newLabels(Shape{rows, cols}, buf), nil
}

// LabelsFrom3D converts a rectangular [][][]int block (planes × rows ×
// columns) into a 3-axis label volume, with the same validation as
// LabelsFrom2D.
// Complexity: O(planes × rows × cols).
func LabelsFrom3D(block [][][]int) (*Labels, error) {
	if len(block) == 0 || len(block[0]) == 0 || len(block[0][0]) == 0 {
		return nil, ErrInvalidShape
	}
	planes, rows, cols := len(block), len(block[0]), len(block[0][0])
	buf := make([]uint32, 0, planes*rows*cols)
	for _, plane := range block {
		if len(plane) != rows {
			return nil, ErrInvalidShape
		}
		for _, row := range plane {
			if len(row) != cols {
				return nil, ErrInvalidShape
			}
			for _, v := range row {
				if v < 0 || int64(v) > math.MaxUint32 {
					return nil, ErrInvalidLabelType
				}
				buf = append(buf, uint32(v))
			}
		}
	}

	return newLabels(Shape{planes, rows, cols}, buf), nil
}

// newLabels wraps an already-validated shape and owned buffer.
func newLabels(shape Shape, buf []uint32) *Labels {
	s := shape.Clone()

	return &Labels{shape: s, strides: s.Strides(), data: buf}
}

// Shape returns a copy of the volume's shape.
// Complexity: O(axes).
func (l *Labels) Shape() Shape { return l.shape.Clone() }

// NumAxes returns the number of axes.
// Complexity: O(1).
func (l *Labels) NumAxes() int { return len(l.shape) }

// At returns the label at the given per-axis coordinates. A wrong
// coordinate count or an out-of-range coordinate panics, like slice
// indexing.
// Complexity: O(axes).
func (l *Labels) At(coords ...int) uint32 {
	return l.data[l.offset(coords)]
}

// AtOffset returns the label at a flat row-major offset.
// Complexity: O(1).
func (l *Labels) AtOffset(off int) uint32 { return l.data[off] }

// Data exposes the flat row-major backing slice. Callers must treat it
// as read-only.
// Complexity: O(1).
func (l *Labels) Data() []uint32 { return l.data }

// Mirror returns a copy of the volume reversed along one axis. An axis
// outside [0, NumAxes) panics.
// Complexity: O(n).
func (l *Labels) Mirror(axis int) *Labels {
	if axis < 0 || axis >= len(l.shape) {
		panic("volume: mirror axis out of range")
	}
	buf := make([]uint32, len(l.data))
	n := l.shape[axis]
	inner := l.strides[axis] // contiguous block per position along axis
	block := n * inner       // span of one full sweep along axis
	for base := 0; base < len(l.data); base += block {
		for i := 0; i < n; i++ {
			src := base + i*inner
			dst := base + (n-1-i)*inner
			copy(buf[dst:dst+inner], l.data[src:src+inner])
		}
	}

	return newLabels(l.shape, buf)
}

// offset resolves per-axis coordinates into a flat index.
func (l *Labels) offset(coords []int) int {
	if len(coords) != len(l.shape) {
		panic("volume: coordinate count does not match shape")
	}
	off := 0
	for i, c := range coords {
		if c < 0 || c >= l.shape[i] {
			panic("volume: coordinate out of range")
		}
		off += c * l.strides[i]
	}

	return off
}
