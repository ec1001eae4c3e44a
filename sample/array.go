package sample

import (
	"fmt"
	"slices"
)

// DType identifies the element type of an Array.
type DType int

const (
	// Float32 is used for continuous data such as image channels.
	Float32 DType = iota
	// Int64 is used for categorical data such as class masks and labels.
	Int64
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// Array is a fixed-shape numeric array. Exactly one of the backing slices is
// populated, selected by DType. The shape is immutable after construction.
type Array struct {
	dtype    DType
	shape    []int
	float32s []float32
	int64s   []int64
}

// NewFloat32 creates a float32 array with the given shape. The data slice is
// taken over by the array, not copied. len(data) must equal the product of
// the shape dimensions.
func NewFloat32(shape []int, data []float32) *Array {
	if n := numElements(shape); n != len(data) {
		panic(fmt.Sprintf("sample: shape %v requires %d elements, got %d", shape, n, len(data)))
	}
	return &Array{dtype: Float32, shape: slices.Clone(shape), float32s: data}
}

// NewInt64 creates an int64 array with the given shape. The data slice is
// taken over by the array, not copied.
func NewInt64(shape []int, data []int64) *Array {
	if n := numElements(shape); n != len(data) {
		panic(fmt.Sprintf("sample: shape %v requires %d elements, got %d", shape, n, len(data)))
	}
	return &Array{dtype: Int64, shape: slices.Clone(shape), int64s: data}
}

func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// DType returns the element type.
func (a *Array) DType() DType { return a.dtype }

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return numElements(a.shape) }

// Float32s returns the backing float32 slice, or nil if DType is not Float32.
func (a *Array) Float32s() []float32 { return a.float32s }

// Int64s returns the backing int64 slice, or nil if DType is not Int64.
func (a *Array) Int64s() []int64 { return a.int64s }

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	return &Array{
		dtype:    a.dtype,
		shape:    slices.Clone(a.shape),
		float32s: slices.Clone(a.float32s),
		int64s:   slices.Clone(a.int64s),
	}
}

// Equal reports whether two arrays have the same dtype, shape and elements.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.dtype == b.dtype &&
		slices.Equal(a.shape, b.shape) &&
		slices.Equal(a.float32s, b.float32s) &&
		slices.Equal(a.int64s, b.int64s)
}

func (a *Array) String() string {
	return fmt.Sprintf("Array(%s, shape=%v)", a.dtype, a.shape)
}
