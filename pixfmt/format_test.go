package pixfmt

import (
	"testing"

	"github.com/google/uuid"
)

func TestBytesPerPixel(t *testing.T) {
	tests := []struct {
		f          *PixelFormat
		bytes, bpc int
	}{
		{Grey16BppUQ15, 2, 16},
		{Bgr48BppLinearUQ15, 6, 16},
		{Pbgra128BppLinearFloat, 16, 32},
		{CbCr64BppFloat, 8, 32},
		{FromNative(NativeFormat{BitsPerPixel: 1, ChannelCount: 1}), 1, 1},
	}
	for _, tt := range tests {
		if got := tt.f.BytesPerPixel(); got != tt.bytes {
			t.Errorf("%v: BytesPerPixel = %d, want %d", tt.f, got, tt.bytes)
		}
		if got := tt.f.BitsPerChannel(); got != tt.bpc {
			t.Errorf("%v: BitsPerChannel = %d, want %d", tt.f, got, tt.bpc)
		}
	}
}

func TestBuiltinIdentifiersUnique(t *testing.T) {
	seen := make(map[uuid.UUID]string)
	for _, f := range builtins {
		if prev, ok := seen[f.ID()]; ok {
			t.Errorf("%s and %s share identifier %s", prev, f, f.ID())
		}
		seen[f.ID()] = f.Name()
		if f.IsNative() {
			t.Errorf("%s: built-in marked native", f)
		}
	}
	if len(seen) != 18 {
		t.Errorf("got %d built-in formats, want 18", len(seen))
	}
}

func TestEqual(t *testing.T) {
	copyOf := *Grey32BppFloat
	if !Grey32BppFloat.Equal(&copyOf) {
		t.Error("formats with the same identifier should be equal")
	}
	if Grey32BppFloat.Equal(Y32BppFloat) {
		t.Error("formats with different identifiers should not be equal")
	}
}

func TestIsBinaryCompatible(t *testing.T) {
	tests := []struct {
		a, b *PixelFormat
		want bool
	}{
		{Grey32BppFloat, Grey32BppFloat, true},
		// Same layout, different identifier and name.
		{Grey32BppFloat, Y32BppFloat, true},
		{Grey32BppLinearFloat, Y32BppLinearFloat, true},
		{Grey16BppLinearUQ15, Y16BppLinearUQ15, true},
		{Grey32BppFloat, Grey32BppLinearFloat, false},
		{Bgr96BppFloat, Bgrx128BppFloat, false},
		{Bgrx128BppLinearFloat, Pbgra128BppLinearFloat, false},
		{Cb32BppFloat, Cr32BppFloat, true},
		{Grey32BppFloat, nil, false},
	}
	for _, tt := range tests {
		if got := IsBinaryCompatible(tt.a, tt.b); got != tt.want {
			t.Errorf("IsBinaryCompatible(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if tt.b != nil && tt.a.IsBinaryCompatible(tt.b) != IsBinaryCompatible(tt.b, tt.a) {
			t.Errorf("IsBinaryCompatible(%v, %v) is not symmetric", tt.a, tt.b)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{NumericFixed.String(), "Fixed"},
		{NumericRepresentation(9).String(), "NumericRepresentation(9)"},
		{ColorCmyk.String(), "Cmyk"},
		{AlphaAssociated.String(), "Associated"},
		{EncodingScRGB.String(), "scRGB"},
		{Pbgra64BppLinearUQ15.String(), "64bpp pBGRA UQ15 Linear"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
