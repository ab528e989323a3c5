// Package hwy provides runtime SIMD tier detection and the portable vector
// primitives the conversion kernels are written in.
//
// The tier is detected once per process with golang.org/x/sys/cpu and is
// immutable afterwards. Kernels ask for the lane count of the tier they
// were built for and operate on Vec values of exactly that many lanes, so
// the same kernel source serves the 128-bit and 256-bit tiers.
//
// Basic usage:
//
//	lanes := hwy.PreferredVectorWidth(32) // float32 lanes
//	a := hwy.LoadN(data1, lanes)
//	b := hwy.LoadN(data2, lanes)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// MaxVecLanes is the largest lane count a Vec can hold
// (16 x uint16 in a 256-bit register).
const MaxVecLanes = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector value. Lanes beyond NumLanes are always zero.
//
// Vec instances should not be created directly; use LoadN, SetN or ZeroN.
type Vec[T Lanes] struct {
	data [MaxVecLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Lane returns lane i, or zero if i is out of range.
func (v Vec[T]) Lane(i int) T {
	if i < 0 || i >= v.n {
		var zero T
		return zero
	}
	return v.data[i]
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Mask selects lanes; bit i set means lane i is active.
type Mask uint32

// FirstN returns a mask with the first n lanes active.
func FirstN(n int) Mask {
	if n <= 0 {
		return 0
	}
	if n >= MaxVecLanes {
		return Mask(1<<MaxVecLanes - 1)
	}
	return Mask(1<<n - 1)
}

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= MaxVecLanes {
		return false
	}
	return m&(1<<i) != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask) CountTrue() int {
	count := 0
	for i := range MaxVecLanes {
		if m.GetBit(i) {
			count++
		}
	}
	return count
}
