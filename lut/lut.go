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

// Package lut builds the lookup tables used by the conversion kernels.
//
// Tables are indexed by an 8-bit companded sample (inverse-gamma and
// alpha tables) or by a Q15 linear value in [0, UQ15One] (gamma table).
// Each table is built once per process on first use and shared by every
// processor; tables are never modified after construction.
package lut

import (
	"math"
	"sync"
)

const (
	// UQ15One is 1.0 in Q15 fixed point.
	UQ15One = 1 << 15

	// UQ15Round is one half in Q15, added before a rescaling shift.
	UQ15Round = 1 << 14

	// InterpScale is the number of segments in the interpolation tables.
	InterpScale = 4096
)

// Target is the numeric representation an inverse-gamma table produces.
type Target interface {
	uint16 | float32
}

// CompandedToLinear applies the sRGB decoding curve to v in [0, 1].
func CompandedToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// LinearToCompanded applies the sRGB encoding curve to v in [0, 1].
func LinearToCompanded(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}

// BuildInverseGammaUQ15 maps every companded byte to a rounded Q15 linear value.
func BuildInverseGammaUQ15() *[256]uint16 {
	t := new([256]uint16)
	for i := range t {
		t[i] = uint16(math.Round(CompandedToLinear(float64(i)/255) * UQ15One))
	}
	return t
}

// BuildInverseGammaFloat maps every companded byte to a float linear value.
func BuildInverseGammaFloat() *[256]float32 {
	t := new([256]float32)
	for i := range t {
		t[i] = float32(CompandedToLinear(float64(i) / 255))
	}
	return t
}

// BuildGamma maps every Q15 linear value in [0, UQ15One] to a companded byte.
// Callers clamp larger values to UQ15One before indexing.
func BuildGamma() *[UQ15One + 1]byte {
	t := new([UQ15One + 1]byte)
	for i := range t {
		t[i] = byte(math.Round(LinearToCompanded(float64(i)/UQ15One) * 255))
	}
	return t
}

// BuildAlphaScale maps every alpha byte to its float weight a/255.
func BuildAlphaScale() *[256]float32 {
	t := new([256]float32)
	for i := range t {
		t[i] = float32(i) / 255
	}
	return t
}

// BuildInterp samples f at InterpScale+1 evenly spaced points on [0, 1].
// The extra trailing entry repeats f(1) so that interpolation at exactly
// 1.0 can read one entry past the last segment.
func BuildInterp(f func(float64) float64) *[InterpScale + 2]float32 {
	t := new([InterpScale + 2]float32)
	for i := range t {
		t[i] = float32(f(float64(min(i, InterpScale)) / InterpScale))
	}
	return t
}

var (
	inverseGammaUQ15   = sync.OnceValue(BuildInverseGammaUQ15)
	inverseGammaFloat  = sync.OnceValue(BuildInverseGammaFloat)
	gamma              = sync.OnceValue(BuildGamma)
	alphaScale         = sync.OnceValue(BuildAlphaScale)
	inverseGammaInterp = sync.OnceValue(func() *[InterpScale + 2]float32 { return BuildInterp(CompandedToLinear) })
	gammaInterp        = sync.OnceValue(func() *[InterpScale + 2]float32 { return BuildInterp(LinearToCompanded) })
)

// InverseGamma returns the shared companded-to-linear table for T:
// Q15 values for uint16, normalized values for float32.
func InverseGamma[T Target]() *[256]T {
	var zero T
	switch any(zero).(type) {
	case uint16:
		return any(inverseGammaUQ15()).(*[256]T)
	default:
		return any(inverseGammaFloat()).(*[256]T)
	}
}

// Gamma returns the shared linear-to-companded table.
func Gamma() *[UQ15One + 1]byte {
	return gamma()
}

// AlphaScale returns the shared alpha weight table.
func AlphaScale() *[256]float32 {
	return alphaScale()
}

// InverseGammaInterp returns the shared float companded-to-linear
// interpolation table.
func InverseGammaInterp() *[InterpScale + 2]float32 {
	return inverseGammaInterp()
}

// GammaInterp returns the shared float linear-to-companded interpolation table.
func GammaInterp() *[InterpScale + 2]float32 {
	return gammaInterp()
}
