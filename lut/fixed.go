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

package lut

import "github.com/ajroetker/go-pixelconv/hwy"

// Fixed-point helpers shared by the scalar and vector kernels. Every float
// step is explicitly rounded to float32 so both paths agree bit for bit.

// Fix15 converts a byte in [0, 255] to Q15, rounding to nearest.
// Fix15(255) == UQ15One.
func Fix15(x byte) uint16 {
	return uint16((uint32(x)*UQ15One + 127) / 255)
}

// UnFix15 rescales a widened Q15 product back to Q15, rounding to nearest.
func UnFix15(x uint32) uint32 {
	return (x + UQ15Round) >> 15
}

// UnFix15ToByte rescales a Q15 value multiplied by 255 to a byte.
func UnFix15ToByte(x uint32) byte {
	return byte(min(UnFix15(x), 255))
}

// UnFixToUQ15One rescales a 64-bit product of a Q15 value and a Q15
// reciprocal to Q15, saturating at UQ15One.
func UnFixToUQ15One(x uint64) uint32 {
	return uint32(min((x+UQ15Round)>>15, UQ15One))
}

// ClampToUQ15One saturates a Q15 value at UQ15One.
func ClampToUQ15One(x uint32) uint32 {
	return min(x, UQ15One)
}

// Reciprocal15 returns UQ15One*UQ15One/a, the Q15 reciprocal used to
// unpremultiply by a Q15 alpha. a must not be zero.
func Reciprocal15(a uint32) uint64 {
	return UQ15One * UQ15One / uint64(a)
}

// ClampFloat limits v to [lo, hi]. NaN becomes lo.
func ClampFloat(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FixScaled computes trunc(clamp(x*scale + 0.5, 0, hi)): round to nearest,
// ties away from zero, saturating instead of wrapping.
func FixScaled(x, scale, hi float32) uint32 {
	return uint32(ClampFloat(float32(x*scale)+0.5, 0, hi))
}

// FixToUQ15One quantizes a normalized float to a gamma table index.
func FixToUQ15One(x float32) uint32 {
	return FixScaled(x, UQ15One, UQ15One)
}

// FixToByte quantizes a normalized float alpha to a byte.
func FixToByte(x float32) byte {
	return byte(FixScaled(x, 255, 255))
}

// Interpolate evaluates a table built by BuildInterp at x, clamping x to
// [0, 1] first. NaN evaluates as 0.
func Interpolate(t *[InterpScale + 2]float32, x float32) float32 {
	pos := float32(ClampFloat(x, 0, 1) * InterpScale)
	i := int32(pos)
	d := pos - float32(i)
	lo, hi := t[i], t[i+1]
	return hwy.FMA32(hi-lo, d, lo)
}
