package volume

import "errors"

// Sentinel errors for volume construction and alignment checks.
var (
	// ErrInvalidShape indicates a shape with fewer than two axes, a
	// non-positive axis length, ragged nested input, or backing data
	// whose length does not match the shape.
	ErrInvalidShape = errors.New("volume: invalid shape")
	// ErrInvalidLabelType indicates adapter input that cannot be
	// represented as a uint32 region id.
	ErrInvalidLabelType = errors.New("volume: label value outside uint32 range")
	// ErrShapeMismatch indicates two volumes whose shapes differ.
	ErrShapeMismatch = errors.New("volume: shape mismatch")
)
