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

import "github.com/google/uuid"

// Built-in formats used by the conversion pipeline. They are constructed
// once at package initialization and every Registry starts with them.
var (
	// Grey16BppUQ15 is companded greyscale in Q15 fixed point.
	Grey16BppUQ15 = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe889f"),
		name:     "16bpp Grey UQ15",
		bpp:      16,
		channels: 1,
		numeric:  NumericFixed,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingCompanded,
	}

	Grey16BppLinearUQ15 = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a0"),
		name:     "16bpp Grey UQ15 Linear",
		bpp:      16,
		channels: 1,
		numeric:  NumericFixed,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	Grey32BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe889e"),
		name:     "32bpp Grey Float",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingCompanded,
	}

	Grey32BppLinearFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a1"),
		name:     "32bpp Grey Float Linear",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	Bgr48BppLinearUQ15 = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a2"),
		name:     "48bpp BGR UQ15 Linear",
		bpp:      48,
		channels: 3,
		numeric:  NumericFixed,
		color:    ColorBgr,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	Bgr96BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a3"),
		name:     "96bpp BGR Float",
		bpp:      96,
		channels: 3,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaNone,
		encoding: EncodingCompanded,
	}

	Bgr96BppLinearFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a4"),
		name:     "96bpp BGR Float Linear",
		bpp:      96,
		channels: 3,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	// Pbgra64BppLinearUQ15 is linear BGRA with premultiplied alpha in Q15 fixed point.
	Pbgra64BppLinearUQ15 = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a6"),
		name:     "64bpp pBGRA UQ15 Linear",
		bpp:      64,
		channels: 4,
		numeric:  NumericFixed,
		color:    ColorBgr,
		alpha:    AlphaAssociated,
		encoding: EncodingLinear,
	}

	Pbgra128BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a7"),
		name:     "128bpp pBGRA Float",
		bpp:      128,
		channels: 4,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaAssociated,
		encoding: EncodingCompanded,
	}

	Pbgra128BppLinearFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a8"),
		name:     "128bpp pBGRA Float Linear",
		bpp:      128,
		channels: 4,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaAssociated,
		encoding: EncodingLinear,
	}

	Y16BppLinearUQ15 = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88a9"),
		name:     "16bpp Y UQ15 Linear",
		bpp:      16,
		channels: 1,
		numeric:  NumericFixed,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	Y32BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88aa"),
		name:     "32bpp Y Float",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingCompanded,
	}

	Y32BppLinearFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88ab"),
		name:     "32bpp Y Float Linear",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorGrey,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}

	// CbCr64BppFloat is interleaved float chroma.
	CbCr64BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88ac"),
		name:     "64bpp CbCr Float",
		bpp:      64,
		channels: 2,
		numeric:  NumericFloat,
		color:    ColorUnspecified,
		alpha:    AlphaNone,
		encoding: EncodingUnspecified,
	}

	Cb32BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88af"),
		name:     "32bpp Cb Float",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorUnspecified,
		alpha:    AlphaNone,
		encoding: EncodingUnspecified,
	}

	Cr32BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88b0"),
		name:     "32bpp Cr Float",
		bpp:      32,
		channels: 1,
		numeric:  NumericFloat,
		color:    ColorUnspecified,
		alpha:    AlphaNone,
		encoding: EncodingUnspecified,
	}

	// Bgrx128BppFloat is companded float BGR padded to four lanes; the fourth lane carries no data.
	Bgrx128BppFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88ad"),
		name:     "128bpp BGRX Float",
		bpp:      128,
		channels: 4,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaNone,
		encoding: EncodingCompanded,
	}

	Bgrx128BppLinearFloat = &PixelFormat{
		id:       uuid.MustParse("c175220d-375b-48c9-8dd9-1d2824fe88ae"),
		name:     "128bpp BGRX Float Linear",
		bpp:      128,
		channels: 4,
		numeric:  NumericFloat,
		color:    ColorBgr,
		alpha:    AlphaNone,
		encoding: EncodingLinear,
	}
)

// builtins lists every built-in format in registration order.
var builtins = []*PixelFormat{
	Grey16BppUQ15,
	Grey16BppLinearUQ15,
	Grey32BppFloat,
	Grey32BppLinearFloat,
	Bgr48BppLinearUQ15,
	Bgr96BppFloat,
	Bgr96BppLinearFloat,
	Pbgra64BppLinearUQ15,
	Pbgra128BppFloat,
	Pbgra128BppLinearFloat,
	Y16BppLinearUQ15,
	Y32BppFloat,
	Y32BppLinearFloat,
	CbCr64BppFloat,
	Cb32BppFloat,
	Cr32BppFloat,
	Bgrx128BppFloat,
	Bgrx128BppLinearFloat,
}

// Identifiers of common interchange formats. External code may reference
// them directly; the registry resolves them through its catalog.
var (
	// Grey8bpp is greyscale data with 1 byte per pixel.
	Grey8bpp = uuid.MustParse("6fddc324-4e03-4bfe-b185-3d77768dc908")
	// Bgr24bpp is RGB data with 1 byte per channel in BGR byte order.
	Bgr24bpp = uuid.MustParse("6fddc324-4e03-4bfe-b185-3d77768dc90c")
	// Bgra32bpp is RGBA data with 1 byte per channel in BGRA byte order.
	Bgra32bpp = uuid.MustParse("6fddc324-4e03-4bfe-b185-3d77768dc90f")

	// PlanarY8bpp is planar luma with 1 byte per pixel.
	PlanarY8bpp = uuid.MustParse("91b4db54-2df9-42f0-b449-2909bb3df88e")
	// PlanarCb8bpp is planar blue-yellow chroma with 1 byte per pixel.
	PlanarCb8bpp = uuid.MustParse("1339f224-6bfe-4c3e-9302-e4f3a6d0ca2a")
	// PlanarCr8bpp is planar red-green chroma with 1 byte per pixel.
	PlanarCr8bpp = uuid.MustParse("b8145053-2116-49f0-8835-ed844b205c51")
)
