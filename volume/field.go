package volume

// Field is an immutable N-dimensional volume of float32 per-voxel
// values, typically an intensity channel aligned with a Labels volume.
type Field struct {
	shape   Shape
	strides []int
	data    []float32
}

// NewField builds a field from a shape and flat row-major data; both
// arguments are copied.
// Complexity: O(n) time and memory, n = len(data).
func NewField(shape Shape, data []float32) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, ErrInvalidShape
	}
	buf := make([]float32, len(data))
	copy(buf, data)

	return newField(shape, buf), nil
}

// FieldFromFloats converts flat float64 data into a field.
// Complexity: O(n).
func FieldFromFloats(shape Shape, data []float64) (*Field, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Len() {
		return nil, ErrInvalidShape
	}
	buf := make([]float32, len(data))
	for i, v := range data {
		buf[i] = float32(v)
	}

	return newField(shape, buf), nil
}

// FieldFrom2D converts a rectangular [][]float64 grid (rows × columns)
// into a 2-axis field. Ragged rows fail with ErrInvalidShape.
// Complexity: O(rows × cols).
func FieldFrom2D(grid [][]float64) (*Field, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrInvalidShape
	}
	rows, cols := len(grid), len(grid[0])
	buf := make([]float32, 0, rows*cols)
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrInvalidShape
		}
		for _, v := range row {
			buf = append(buf, float32(v))
		}
	}

	return newField(Shape{rows, cols}, buf), nil
}

// newField wraps an already-validated shape and owned buffer.
func newField(shape Shape, buf []float32) *Field {
	s := shape.Clone()

	return &Field{shape: s, strides: s.Strides(), data: buf}
}

// Shape returns a copy of the field's shape.
// Complexity: O(axes).
func (f *Field) Shape() Shape { return f.shape.Clone() }

// AtOffset returns the value at a flat row-major offset.
// Complexity: O(1).
func (f *Field) AtOffset(off int) float32 { return f.data[off] }

// Data exposes the flat row-major backing slice. Callers must treat it
// as read-only.
// Complexity: O(1).
func (f *Field) Data() []float32 { return f.data }

// SameShape reports whether the field is aligned with a label volume.
// Complexity: O(axes).
func (f *Field) SameShape(l *Labels) bool { return f.shape.Equal(l.shape) }
