package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-pixelconv/pixfmt"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		format        *pixfmt.PixelFormat
		width, height int
		stride        int
	}{
		{pixfmt.Grey32BppFloat, 1, 1, 32},
		{pixfmt.Grey32BppFloat, 8, 3, 32},
		{pixfmt.Grey32BppFloat, 9, 3, 64},
		{pixfmt.Bgr96BppLinearFloat, 5, 2, 64},
		{pixfmt.Bgr48BppLinearUQ15, 100, 7, 608},
	}
	for _, tt := range tests {
		img := NewImage(tt.format, tt.width, tt.height)
		if img.Width() != tt.width || img.Height() != tt.height {
			t.Errorf("%s %dx%d: got %dx%d", tt.format, tt.width, tt.height, img.Width(), img.Height())
		}
		if img.Stride() != tt.stride || img.Stride()%RowAlign != 0 {
			t.Errorf("%s %dx%d: stride %d, want %d", tt.format, tt.width, tt.height, img.Stride(), tt.stride)
		}
		if got := len(img.Bytes()); got != tt.stride*tt.height {
			t.Errorf("%s %dx%d: buffer %d bytes", tt.format, tt.width, tt.height, got)
		}
		if got := len(img.RowSlice(tt.height - 1)); got != tt.width*tt.format.BytesPerPixel() {
			t.Errorf("%s: RowSlice holds %d bytes", tt.format, got)
		}
		if got := len(img.Row(0)); got != tt.stride {
			t.Errorf("%s: Row holds %d bytes, want the stride", tt.format, got)
		}
	}
}

func TestNewImageEmpty(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		img := NewImage(pixfmt.Grey32BppFloat, size[0], size[1])
		if img.Width() != 0 || img.Height() != 0 || img.Bytes() != nil {
			t.Errorf("NewImage(%d, %d) = %dx%d with %d bytes", size[0], size[1],
				img.Width(), img.Height(), len(img.Bytes()))
		}
	}
}

func TestWrapImage(t *testing.T) {
	// Three rows of two pixels, 10 bytes apart, last row unpadded.
	data := make([]byte, 2*10+6)
	img, err := WrapImage(pixfmt.Bgr48BppLinearUQ15, 1, 3, data, 10)
	if err != nil {
		t.Fatal(err)
	}
	if img.Stride() != 10 || len(img.Row(2)) != 6 || len(img.RowSlice(2)) != 6 {
		t.Errorf("stride %d, last row %d/%d bytes", img.Stride(), len(img.Row(2)), len(img.RowSlice(2)))
	}

	if _, err := WrapImage(pixfmt.Bgr48BppLinearUQ15, 2, 3, data, 10); !errors.Is(err, ErrStride) {
		t.Errorf("stride below row size: got %v, want ErrStride", err)
	}
	if _, err := WrapImage(pixfmt.Bgr48BppLinearUQ15, 1, 4, data, 10); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short buffer: got %v, want ErrShortBuffer", err)
	}
	if _, err := WrapImage(nil, 1, 1, data, 10); err == nil {
		t.Error("nil format: expected an error")
	}
}

// TestConvertImage converts a packed image into an aligned one and checks
// every row against a scanline conversion.
func TestConvertImage(t *testing.T) {
	const width, height = 29, 11
	src := pixfmt.Pbgra128BppFloat
	dst := pixfmt.Pbgra128BppLinearFloat
	p, err := ForFormats(src, dst)
	if err != nil {
		t.Fatal(err)
	}

	rowBytes := width * src.BytesPerPixel()
	packed := randomInput(newRNG(), p.Key(), p.SrcUnit(), width*height)
	in, err := WrapImage(src, width, height, packed, rowBytes)
	if err != nil {
		t.Fatal(err)
	}
	out := NewImage(dst, width, height)
	if out.Stride() == rowBytes {
		t.Fatalf("stride %d is not padded", out.Stride())
	}

	pool := NewPool(3)
	defer pool.Close()
	if err := ConvertImage(p, in, out, pool); err != nil {
		t.Fatal(err)
	}
	for y := range height {
		want := make([]byte, rowBytes)
		p.ConvertScanline(in.RowSlice(y), want, rowBytes)
		if diff := cmp.Diff(want, out.RowSlice(y)); diff != "" {
			t.Fatalf("row %d (-want +got):\n%s", y, diff)
		}
		for i, b := range out.Row(y)[rowBytes:] {
			if b != 0 {
				t.Fatalf("row %d: padding byte %d written", y, i)
			}
		}
	}
}

func TestConvertImageMismatch(t *testing.T) {
	p, err := ForFormats(pixfmt.Grey32BppFloat, pixfmt.Grey32BppLinearFloat)
	if err != nil {
		t.Fatal(err)
	}
	src := NewImage(pixfmt.Grey32BppFloat, 4, 4)
	if err := ConvertImage(p, src, NewImage(pixfmt.Grey32BppLinearFloat, 4, 5), nil); err == nil {
		t.Error("different sizes: expected an error")
	}
	if err := ConvertImage(p, src, NewImage(pixfmt.Bgr96BppLinearFloat, 4, 4), nil); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("wrong destination format: got %v, want ErrUnsupportedConversion", err)
	}
}
