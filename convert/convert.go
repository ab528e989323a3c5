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

// Package convert converts scanlines between companded and linear light.
//
// A Processor is built for one (source element, destination element,
// layout, direction) combination and picks its kernel once, at
// construction, from the SIMD tier reported by hwy. Every kernel has a
// scalar unrolled form and a portable form written with hwy primitives.
// Builds with GOEXPERIMENT=simd add AVX2 forms of the float kernels. All
// forms produce byte-identical output; by default a processor runs the
// AVX2 form when the CPU supports it and the scalar form otherwise.
//
// Images and frames convert row by row, optionally across a Pool.
//
// ConvertScanline trusts its caller: the byte count must be a whole
// number of source units and the output must hold OutputSize bytes.
// Use ConvertScanlineChecked, or build with the pixelconv_debug tag, to
// have those preconditions verified.
package convert

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedConversion is returned when no kernel exists for a
	// combination of element types, layout and direction.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrStride is returned when a byte count or row stride does not
	// match the processor's unit size.
	ErrStride = errors.New("invalid stride")

	// ErrShortBuffer is returned when an input or output buffer is too
	// small for the requested byte count.
	ErrShortBuffer = errors.New("buffer too short")
)

// Elem is the storage type of one sample.
type Elem int

const (
	// Byte is an 8-bit unsigned sample.
	Byte Elem = iota
	// UQ15 is a 16-bit Q15 fixed-point sample where 32768 is 1.0.
	UQ15
	// Float is a 32-bit IEEE float sample where 1.0 is full intensity.
	Float
)

// Size returns the sample size in bytes.
func (e Elem) Size() int {
	switch e {
	case Byte:
		return 1
	case UQ15:
		return 2
	case Float:
		return 4
	}
	return 0
}

func (e Elem) String() string {
	switch e {
	case Byte:
		return "byte"
	case UQ15:
		return "uq15"
	case Float:
		return "float"
	}
	return fmt.Sprintf("Elem(%d)", int(e))
}

// Direction is the direction of the transfer function.
type Direction int

const (
	// ToLinear decodes companded samples to linear light.
	ToLinear Direction = iota
	// FromLinear encodes linear light to companded samples.
	FromLinear
)

func (d Direction) String() string {
	switch d {
	case ToLinear:
		return "to-linear"
	case FromLinear:
		return "from-linear"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Layout is the channel shape a kernel handles.
type Layout int

const (
	// Opaque maps every sample independently, one to one.
	Opaque Layout = iota
	// Alpha handles three color channels followed by alpha. The linear
	// side is premultiplied.
	Alpha
	// Pad handles three color channels stored in four lanes on the
	// linear side. To-linear leaves the fourth output lane unwritten;
	// from-linear ignores the fourth input lane.
	Pad
)

func (l Layout) String() string {
	switch l {
	case Opaque:
		return "opaque"
	case Alpha:
		return "alpha"
	case Pad:
		return "pad"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Key identifies a kernel.
type Key struct {
	Src, Dst Elem
	Layout   Layout
	Dir      Direction
}

func (k Key) String() string {
	return fmt.Sprintf("%v->%v/%v/%v", k.Src, k.Dst, k.Layout, k.Dir)
}
