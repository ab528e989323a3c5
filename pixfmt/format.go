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

// Package pixfmt describes pixel formats and maps format identifiers to
// descriptions.
//
// A PixelFormat records a buffer's bit depth, channel count and the
// numeric, color, alpha and value encoding of its samples. Built-in
// formats are package-level values; formats of the native imaging
// subsystem are discovered through a Catalog the first time a Registry
// is used.
package pixfmt

import "github.com/google/uuid"

// NumericRepresentation is how a single sample is stored. The values match
// the numeric codes reported by native catalogs.
type NumericRepresentation int

const (
	NumericUnspecified NumericRepresentation = iota
	NumericIndexed
	NumericUnsignedInteger
	NumericSignedInteger
	NumericFixed
	NumericFloat
)

// ColorRepresentation is the color model of a format.
type ColorRepresentation int

const (
	ColorUnspecified ColorRepresentation = iota
	ColorGrey
	ColorBgr
	ColorRgb
	ColorCmyk
)

// AlphaRepresentation is how the alpha channel relates to the color channels.
type AlphaRepresentation int

const (
	AlphaNone AlphaRepresentation = iota
	// AlphaAssociated means color channels are premultiplied by alpha.
	AlphaAssociated
	AlphaUnassociated
)

// Encoding is the value encoding of the color samples.
type Encoding int

const (
	EncodingUnspecified Encoding = iota
	// EncodingCompanded is gamma-encoded light, as stored in image files.
	EncodingCompanded
	// EncodingLinear is light proportional to physical intensity.
	EncodingLinear
	// EncodingScRGB is extended-range linear light.
	EncodingScRGB
)

// PixelFormat is an immutable description of a pixel layout. The
// identifier determines every other field, so two formats are equal when
// their identifiers are.
type PixelFormat struct {
	id       uuid.UUID
	name     string
	native   bool
	bpp      int
	channels int
	numeric  NumericRepresentation
	color    ColorRepresentation
	alpha    AlphaRepresentation
	encoding Encoding
}

// ID returns the format identifier.
func (f *PixelFormat) ID() uuid.UUID { return f.id }

// Name returns the diagnostic name.
func (f *PixelFormat) Name() string { return f.name }

// String implements fmt.Stringer.
func (f *PixelFormat) String() string { return f.name }

// IsNative reports whether the description came from a native catalog.
func (f *PixelFormat) IsNative() bool { return f.native }

func (f *PixelFormat) BitsPerPixel() int { return f.bpp }

func (f *PixelFormat) ChannelCount() int { return f.channels }

// BytesPerPixel is the bit depth rounded up to whole bytes.
func (f *PixelFormat) BytesPerPixel() int { return (f.bpp + 7) / 8 }

// BitsPerChannel is the bit depth of a single sample.
func (f *PixelFormat) BitsPerChannel() int {
	if f.channels == 0 {
		return 0
	}
	return f.bpp / f.channels
}

func (f *PixelFormat) NumericRepresentation() NumericRepresentation { return f.numeric }

func (f *PixelFormat) ColorRepresentation() ColorRepresentation { return f.color }

func (f *PixelFormat) AlphaRepresentation() AlphaRepresentation { return f.alpha }

func (f *PixelFormat) Encoding() Encoding { return f.encoding }

// HasAlpha reports whether the format carries an alpha channel.
func (f *PixelFormat) HasAlpha() bool { return f.alpha != AlphaNone }

// Equal compares identifiers only.
func (f *PixelFormat) Equal(o *PixelFormat) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.id == o.id
}

// IsBinaryCompatible reports whether buffers of f can be reinterpreted
// as o without conversion.
func (f *PixelFormat) IsBinaryCompatible(o *PixelFormat) bool {
	return IsBinaryCompatible(f, o)
}

// IsBinaryCompatible reports whether a and b share memory layout and
// numeric semantics: bit depth, channel count and the numeric, color,
// alpha and value encodings all match. Identifiers and names are ignored.
func IsBinaryCompatible(a, b *PixelFormat) bool {
	if a == nil || b == nil {
		return false
	}
	return a.bpp == b.bpp &&
		a.channels == b.channels &&
		a.numeric == b.numeric &&
		a.color == b.color &&
		a.alpha == b.alpha &&
		a.encoding == b.encoding
}
