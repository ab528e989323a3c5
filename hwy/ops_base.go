// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"math"
	"unsafe"
)

// This file provides the portable implementations of the vector operations.
// Every operation works lane by lane on a fixed-size array, so no vector
// allocates. Float results are explicitly converted back to the lane type
// after each arithmetic step; the Go compiler may not fuse an explicitly
// rounded product into a following add, which keeps a kernel built from
// these operations bit-identical to its scalar counterpart.

// LoadN creates a vector from the first n elements of src.
// n is clipped to len(src) and MaxVecLanes.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = min(max(n, 0), len(src), MaxVecLanes)
	var v Vec[T]
	copy(v.data[:n], src[:n])
	v.n = n
	return v
}

// SetN creates a vector with n lanes all set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	n = min(max(n, 0), MaxVecLanes)
	var v Vec[T]
	for i := range n {
		v.data[i] = value
	}
	v.n = n
	return v
}

// ZeroN creates a vector with n lanes set to zero.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{n: min(max(n, 0), MaxVecLanes)}
}

// Store writes the vector's lanes to dst, stopping at len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// StoreN writes the first n lanes of v to dst. n is clipped to the
// vector's lane count and len(dst).
func StoreN[T Lanes](v Vec[T], dst []T, n int) {
	n = min(max(n, 0), v.n, len(dst))
	copy(dst[:n], v.data[:n])
}

// SetLane returns v with lane i replaced by value.
func SetLane[T Lanes](v Vec[T], i int, value T) Vec[T] {
	if i >= 0 && i < v.n {
		v.data[i] = value
	}
	return v
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] + b.data[i])
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] - b.data[i])
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// MulAdd computes a*b + c with a single rounding, the same way on every
// tier: float32 lanes go through FMA32 and float64 lanes through math.FMA.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(a.n, b.n, c.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = mulAdd(a.data[i], b.data[i], c.data[i])
	}
	return r
}

func mulAdd[T Floats](a, b, c T) T {
	if unsafe.Sizeof(a) == 4 {
		return T(FMA32(float32(a), float32(b), float32(c)))
	}
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// Clamp limits every lane to [lo, hi]. NaN lanes become lo.
func Clamp[T Lanes](v, lo, hi Vec[T]) Vec[T] {
	n := min(v.n, lo.n, hi.n)
	r := Vec[T]{n: n}
	for i := range n {
		x := v.data[i]
		if !(x >= lo.data[i]) {
			x = lo.data[i]
		} else if x > hi.data[i] {
			x = hi.data[i]
		}
		r.data[i] = x
	}
	return r
}

// ShiftRight shifts each lane right by s bits.
func ShiftRight[T Integers](v Vec[T], s int) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] >> s
	}
	return r
}
