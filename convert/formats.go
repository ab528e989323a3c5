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

package convert

import (
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pixelconv/pixfmt"
)

// ForFormats returns the processor converting buffers of src into buffers
// of dst.
//
// Binary-compatible formats get a reinterpret processor that copies bytes
// and never runs a kernel. Otherwise one side must be companded and the
// other linear, with matching color models, and:
//   - equal channel counts and no alpha select the opaque kernel;
//   - four channels with premultiplied alpha on the linear side select the
//     alpha kernel. A byte companded side stores unassociated alpha; a
//     float companded side stores premultiplied alpha;
//   - three channels against four alpha-less channels on the linear side
//     select the pad kernel.
func ForFormats(src, dst *pixfmt.PixelFormat, opts ...Option) (*Processor, error) {
	if src == nil || dst == nil {
		return nil, errors.Wrap(ErrUnsupportedConversion, "nil pixel format")
	}
	if src.Equal(dst) || pixfmt.IsBinaryCompatible(src, dst) {
		return newReinterpret(src.BytesPerPixel()), nil
	}

	key, err := keyFor(src, dst)
	if err != nil {
		return nil, errors.Wrapf(err, "%s to %s", src, dst)
	}
	p, err := New(key, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s to %s", src, dst)
	}
	if src.BytesPerPixel()*p.dstUnit != dst.BytesPerPixel()*p.srcUnit {
		return nil, errors.Wrapf(ErrUnsupportedConversion,
			"%s to %s: pixel sizes %d and %d do not match kernel %v",
			src, dst, src.BytesPerPixel(), dst.BytesPerPixel(), key)
	}
	return p, nil
}

func elemOf(f *pixfmt.PixelFormat) (Elem, bool) {
	switch bpc := f.BitsPerChannel(); {
	case f.NumericRepresentation() == pixfmt.NumericUnsignedInteger && bpc == 8:
		return Byte, true
	case f.NumericRepresentation() == pixfmt.NumericFixed && bpc == 16:
		return UQ15, true
	case f.NumericRepresentation() == pixfmt.NumericFloat && bpc == 32:
		return Float, true
	}
	return 0, false
}

func keyFor(src, dst *pixfmt.PixelFormat) (Key, error) {
	var key Key

	se, ok := elemOf(src)
	if !ok {
		return key, errors.Wrapf(ErrUnsupportedConversion, "no sample type for %s", src)
	}
	de, ok := elemOf(dst)
	if !ok {
		return key, errors.Wrapf(ErrUnsupportedConversion, "no sample type for %s", dst)
	}
	key.Src, key.Dst = se, de

	companded, linear := src, dst
	switch {
	case src.Encoding() == pixfmt.EncodingCompanded && dst.Encoding() == pixfmt.EncodingLinear:
		key.Dir = ToLinear
	case src.Encoding() == pixfmt.EncodingLinear && dst.Encoding() == pixfmt.EncodingCompanded:
		key.Dir = FromLinear
		companded, linear = dst, src
	default:
		return key, errors.Wrapf(ErrUnsupportedConversion,
			"encodings %v and %v", src.Encoding(), dst.Encoding())
	}

	if src.ColorRepresentation() != dst.ColorRepresentation() {
		return key, errors.Wrapf(ErrUnsupportedConversion,
			"color models %v and %v", src.ColorRepresentation(), dst.ColorRepresentation())
	}

	cc, lc := companded.ChannelCount(), linear.ChannelCount()
	switch {
	case cc == lc && !companded.HasAlpha() && !linear.HasAlpha():
		key.Layout = Opaque
	case cc == 4 && lc == 4 && linear.AlphaRepresentation() == pixfmt.AlphaAssociated:
		want := pixfmt.AlphaUnassociated
		if key.Src == Float && key.Dst == Float {
			want = pixfmt.AlphaAssociated
		}
		if companded.AlphaRepresentation() != want {
			return key, errors.Wrapf(ErrUnsupportedConversion,
				"companded alpha %v, want %v", companded.AlphaRepresentation(), want)
		}
		key.Layout = Alpha
	case cc == 3 && lc == 4 && !companded.HasAlpha() && !linear.HasAlpha():
		key.Layout = Pad
	default:
		return key, errors.Wrapf(ErrUnsupportedConversion,
			"channel layout %d/%v to %d/%v",
			src.ChannelCount(), src.AlphaRepresentation(), dst.ChannelCount(), dst.AlphaRepresentation())
	}
	return key, nil
}
