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

// RowAlign is the byte multiple NewImage pads rows to: the register width
// of the widest tier, so every row of an image starts on a vector
// boundary and a whole-vector loop never straddles two rows.
const RowAlign = 32

// Image is a pixel buffer of one format with a fixed stride between rows.
type Image struct {
	format *pixfmt.PixelFormat
	data   []byte
	width  int
	height int
	stride int // bytes per row, including padding
}

// NewImage allocates a zeroed image whose stride is the row size rounded
// up to RowAlign. A non-positive size gives an empty image. format must
// not be nil.
func NewImage(format *pixfmt.PixelFormat, width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{format: format}
	}
	rowBytes := width * format.BytesPerPixel()
	stride := (rowBytes + RowAlign - 1) / RowAlign * RowAlign
	return &Image{
		format: format,
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// WrapImage returns an image backed by data, with rows stride bytes
// apart. The last row need not be padded.
func WrapImage(format *pixfmt.PixelFormat, width, height int, data []byte, stride int) (*Image, error) {
	if format == nil {
		return nil, errors.New("convert: nil pixel format")
	}
	if width < 0 || height < 0 {
		return nil, errors.Errorf("convert: invalid image size %dx%d", width, height)
	}
	rowBytes := width * format.BytesPerPixel()
	if stride < rowBytes {
		return nil, errors.Wrapf(ErrStride, "stride %d is less than row size %d", stride, rowBytes)
	}
	if height > 0 {
		if need := (height-1)*stride + rowBytes; len(data) < need {
			return nil, errors.Wrapf(ErrShortBuffer, "buffer holds %d bytes, %dx%d image needs %d",
				len(data), width, height, need)
		}
	}
	return &Image{format: format, data: data, width: width, height: height, stride: stride}, nil
}

// Format returns the pixel format of the image.
func (img *Image) Format() *pixfmt.PixelFormat { return img.format }

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Stride returns the bytes between the starts of consecutive rows.
func (img *Image) Stride() int { return img.stride }

// RowBytes returns the bytes of pixel data in one row, without padding.
func (img *Image) RowBytes() int {
	if img.format == nil {
		return 0
	}
	return img.width * img.format.BytesPerPixel()
}

// Bytes returns the backing buffer.
func (img *Image) Bytes() []byte { return img.data }

// Row returns row y including its padding, clipped to the buffer.
func (img *Image) Row(y int) []byte {
	start := y * img.stride
	return img.data[start:min(start+img.stride, len(img.data))]
}

// RowSlice returns the pixel data of row y without padding.
func (img *Image) RowSlice(y int) []byte {
	start := y * img.stride
	return img.data[start : start+img.RowBytes()]
}

// SameSize reports whether both images have the same dimensions.
func (img *Image) SameSize(other *Image) bool {
	return img.width == other.width && img.height == other.height
}

// Frame returns the row layout for converting img into dst.
func (img *Image) Frame(dst *Image) Frame {
	return Frame{
		RowBytes:  img.RowBytes(),
		Height:    img.height,
		InStride:  img.stride,
		OutStride: dst.stride,
	}
}

// ConvertImage converts src into dst, which must have the same
// dimensions, with a processor for their formats. Rows are split across
// pool as in ConvertFrame.
func ConvertImage(p *Processor, src, dst *Image, pool *Pool) error {
	if !src.SameSize(dst) {
		return errors.Errorf("convert: image sizes %dx%d and %dx%d differ",
			src.width, src.height, dst.width, dst.height)
	}
	if src.RowBytes()%p.srcUnit != 0 || p.OutputSize(src.RowBytes()) != dst.RowBytes() {
		return errors.Wrapf(ErrUnsupportedConversion, "%v does not convert %s to %s",
			p, src.format, dst.format)
	}
	return ConvertFrame(p, src.data, dst.data, src.Frame(dst), pool)
}
