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
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents a vector instruction tier.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level, or 0 for scalar.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchSSE2, DispatchNEON:
		return 16
	case DispatchAVX2:
		return 32
	default:
		return 0
	}
}

// IsVector reports whether the level has any vector registers.
func (d DispatchLevel) IsVector() bool {
	return d.Width() > 0
}

// IsWide reports whether the level has registers wider than 128 bits.
func (d DispatchLevel) IsWide() bool {
	return d.Width() > 16
}

// Narrow returns the 128-bit tier of the same instruction family:
// SSE2 for AVX2, the level itself otherwise.
func (d DispatchLevel) Narrow() DispatchLevel {
	if d == DispatchAVX2 {
		return DispatchSSE2
	}
	return d
}

// Lanes returns how many elements of the given bit size fit in one
// register at this level. Scalar levels and invalid sizes report 1.
func (d DispatchLevel) Lanes(elementSizeBits int) int {
	w := d.Width()
	if w == 0 || elementSizeBits <= 0 {
		return 1
	}
	n := w * 8 / elementSizeBits
	if n < 1 {
		return 1
	}
	return n
}

// currentLevel is the widest tier that has kernels compiled to its
// instructions on this processor. Set by init() in dispatch_*.go files and
// never changed afterwards. Builds without GOEXPERIMENT=simd report
// DispatchScalar.
var currentLevel DispatchLevel

// hasFMA is set by init() when the processor has fused multiply-add,
// whatever the current level.
var hasFMA bool

// CurrentLevel returns the widest SIMD tier with compiled kernels.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes, 0 when scalar.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasBaselineVector reports whether at least the 128-bit tier is available.
func HasBaselineVector() bool {
	return currentLevel.IsVector()
}

// HasWideVector reports whether a 256-bit tier is available.
func HasWideVector() bool {
	return currentLevel.IsWide()
}

// HasFMA reports whether the processor has fused multiply-add. Kernels
// built on hardware FMA are only selected when it does; the scalar
// kernels never need it.
func HasFMA() bool {
	return hasFMA
}

// PreferredVectorWidth returns the element count per register for the
// widest supported tier: 1 without SIMD, 4 for float32 on a 128-bit tier,
// 8 for float32 on a 256-bit tier.
func PreferredVectorWidth(elementSizeBits int) int {
	return currentLevel.Lanes(elementSizeBits)
}

// MaxLanes returns the number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - uint16: 32/2 = 16 lanes
func MaxLanes[T Lanes]() int {
	var dummy T
	return min(currentLevel.Lanes(int(unsafe.Sizeof(dummy))*8), MaxVecLanes)
}

// NoSimdEnv checks if the PIXELCONV_NO_SIMD environment variable is set.
// When set, the scalar tier is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envFlag("PIXELCONV_NO_SIMD")
}

// NoWideEnv checks if PIXELCONV_NO_WIDE is set, which caps detection at
// the 128-bit tier.
func NoWideEnv() bool {
	return envFlag("PIXELCONV_NO_WIDE")
}

func envFlag(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
