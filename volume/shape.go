package volume

// MinAxes is the smallest number of axes a volume may have.
const MinAxes = 2

// Shape lists the axis lengths of an N-dimensional volume, outermost
// axis first. Flat offsets follow row-major (C-order) strides: the last
// axis is contiguous.
type Shape []int

// Validate reports whether s describes a usable volume: at least
// MinAxes axes, each of length ≥ 1.
// Complexity: O(len(s)).
func (s Shape) Validate() error {
	if len(s) < MinAxes {
		return ErrInvalidShape
	}
	for _, n := range s {
		if n < 1 {
			return ErrInvalidShape
		}
	}

	return nil
}

// Len returns the number of voxels the shape spans.
// Complexity: O(len(s)).
func (s Shape) Len() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// Strides returns the row-major stride of each axis: the flat-offset
// distance between face-adjacent voxels along that axis.
// Complexity: O(len(s)).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	stride := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= s[axis]
	}

	return strides
}

// Equal reports whether s and t have identical axis counts and lengths.
// Complexity: O(len(s)).
func (s Shape) Equal(t Shape) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
// Complexity: O(len(s)).
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)

	return c
}
