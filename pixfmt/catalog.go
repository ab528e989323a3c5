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

package pixfmt

import (
	"strings"

	"github.com/google/uuid"
)

// NativeFormat is one entry of a native imaging subsystem's pixel format
// catalog, as reported by that subsystem.
type NativeFormat struct {
	FriendlyName         string
	ID                   uuid.UUID
	BitsPerPixel         int
	ChannelCount         int
	NumericCode          int
	SupportsTransparency bool
}

// Catalog enumerates the pixel formats of a native imaging subsystem.
// A Registry calls Enumerate at most once.
type Catalog interface {
	Enumerate() ([]NativeFormat, error)
}

// CatalogFunc adapts a function to the Catalog interface.
type CatalogFunc func() ([]NativeFormat, error)

// Enumerate calls f.
func (f CatalogFunc) Enumerate() ([]NativeFormat, error) { return f() }

type staticCatalog []NativeFormat

func (c staticCatalog) Enumerate() ([]NativeFormat, error) {
	return append([]NativeFormat(nil), c...), nil
}

func wicFormat(suffix string) uuid.UUID {
	return uuid.MustParse("6fddc324-4e03-4bfe-b185-3d77768dc9" + suffix)
}

var standardFormats = staticCatalog{
	{FriendlyName: "8bpp Indexed", ID: wicFormat("04"), BitsPerPixel: 8, ChannelCount: 1, NumericCode: int(NumericIndexed), SupportsTransparency: true},
	{FriendlyName: "8bpp Gray", ID: Grey8bpp, BitsPerPixel: 8, ChannelCount: 1, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "16bpp Gray", ID: wicFormat("0b"), BitsPerPixel: 16, ChannelCount: 1, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "24bpp BGR", ID: Bgr24bpp, BitsPerPixel: 24, ChannelCount: 3, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "24bpp RGB", ID: wicFormat("0d"), BitsPerPixel: 24, ChannelCount: 3, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "32bpp BGR", ID: wicFormat("0e"), BitsPerPixel: 32, ChannelCount: 3, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "32bpp BGRA", ID: Bgra32bpp, BitsPerPixel: 32, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger), SupportsTransparency: true},
	{FriendlyName: "32bpp pBGRA", ID: wicFormat("10"), BitsPerPixel: 32, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger), SupportsTransparency: true},
	{FriendlyName: "32bpp RGBA", ID: uuid.MustParse("f5c7ad2d-6a8d-43dd-a7a8-a29935261ae9"), BitsPerPixel: 32, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger), SupportsTransparency: true},
	{FriendlyName: "32bpp Gray Float", ID: wicFormat("11"), BitsPerPixel: 32, ChannelCount: 1, NumericCode: int(NumericFloat)},
	{FriendlyName: "48bpp RGB", ID: wicFormat("15"), BitsPerPixel: 48, ChannelCount: 3, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "64bpp RGBA", ID: wicFormat("16"), BitsPerPixel: 64, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger), SupportsTransparency: true},
	{FriendlyName: "64bpp pRGBA", ID: wicFormat("17"), BitsPerPixel: 64, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger), SupportsTransparency: true},
	{FriendlyName: "128bpp RGBA Float", ID: wicFormat("19"), BitsPerPixel: 128, ChannelCount: 4, NumericCode: int(NumericFloat), SupportsTransparency: true},
	{FriendlyName: "32bpp CMYK", ID: wicFormat("1c"), BitsPerPixel: 32, ChannelCount: 4, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "8bpp Y", ID: PlanarY8bpp, BitsPerPixel: 8, ChannelCount: 1, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "8bpp Cb", ID: PlanarCb8bpp, BitsPerPixel: 8, ChannelCount: 1, NumericCode: int(NumericUnsignedInteger)},
	{FriendlyName: "8bpp Cr", ID: PlanarCr8bpp, BitsPerPixel: 8, ChannelCount: 1, NumericCode: int(NumericUnsignedInteger)},
}

// StandardCatalog returns a static catalog of the common platform formats,
// described the way a Windows Imaging Component catalog reports them.
// It is the default catalog of a new Registry.
func StandardCatalog() Catalog {
	return standardFormats
}

// FromNative translates a native catalog entry into a PixelFormat.
//
// Native catalogs expose no structured color metadata, so the color,
// encoding and alpha fields are derived from the friendly name:
//   - "BGR", "RGB" and "CMYK" select the color model; "Gray" or a name
//     ending in " Y" selects grey; anything else is unspecified.
//   - Grey, BGR and RGB formats are scRGB when stored as fixed point or
//     float and companded otherwise. Other color models are unspecified.
//   - "pBGRA" or "pRGBA" means associated alpha; otherwise transparency
//     support means unassociated alpha.
func FromNative(n NativeFormat) *PixelFormat {
	numeric := NumericRepresentation(n.NumericCode)
	name := n.FriendlyName

	var color ColorRepresentation
	switch {
	case strings.Contains(name, "BGR"):
		color = ColorBgr
	case strings.Contains(name, "RGB"):
		color = ColorRgb
	case strings.Contains(name, "CMYK"):
		color = ColorCmyk
	case strings.Contains(name, "Gray"), strings.HasSuffix(name, " Y"):
		color = ColorGrey
	}

	var encoding Encoding
	if color == ColorGrey || color == ColorBgr || color == ColorRgb {
		if numeric == NumericFixed || numeric == NumericFloat {
			encoding = EncodingScRGB
		} else {
			encoding = EncodingCompanded
		}
	}

	alpha := AlphaNone
	switch {
	case strings.Contains(name, "pBGRA"), strings.Contains(name, "pRGBA"):
		alpha = AlphaAssociated
	case n.SupportsTransparency:
		alpha = AlphaUnassociated
	}

	return &PixelFormat{
		id:       n.ID,
		name:     name,
		native:   true,
		bpp:      n.BitsPerPixel,
		channels: n.ChannelCount,
		numeric:  numeric,
		color:    color,
		alpha:    alpha,
		encoding: encoding,
	}
}
