package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestConvertFrame(t *testing.T) {
	p := mustNew(t, Key{Byte, UQ15, Alpha, ToLinear})

	// Rows of 16 KiB, so the pool splits the frame into ranges of four.
	const width, height = 4099, 23
	f := Frame{
		RowBytes:  width * 4,
		Height:    height,
		InStride:  width*4 + 12,
		OutStride: width*8 + 6,
	}
	in := make([]byte, f.InStride*height)
	newRNG().Read(in)

	want := filled(f.OutStride * height)
	for y := range height {
		row := in[y*f.InStride : y*f.InStride+f.RowBytes]
		p.ConvertScanline(row, want[y*f.OutStride:], len(row))
	}

	seq := filled(len(want))
	if err := ConvertFrame(p, in, seq, f, nil); err != nil {
		t.Fatalf("ConvertFrame without pool: %v", err)
	}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("sequential frame (-want +got):\n%s", diff)
	}

	pool := NewPool(4)
	defer pool.Close()
	par := filled(len(want))
	if err := ConvertFrame(p, in, par, f, pool); err != nil {
		t.Fatalf("ConvertFrame with pool: %v", err)
	}
	if diff := cmp.Diff(want, par); diff != "" {
		t.Errorf("parallel frame (-want +got):\n%s", diff)
	}
}

func TestFrameGrain(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	tests := []struct {
		name   string
		f      Frame
		chunks int
	}{
		{"thumbnail", Frame{RowBytes: 64 * 4, Height: 64}, 1},
		{"one chunk per row", Frame{RowBytes: minChunkBytes, Height: 3}, 3},
		{"hd", Frame{RowBytes: 1920 * 4, Height: 1080}, 4},
		{"tall and narrow", Frame{RowBytes: 4, Height: 20000}, 1},
	}
	for _, tt := range tests {
		if got := pool.Split(tt.f.Height, tt.f.grain()); got != tt.chunks {
			t.Errorf("%s: split into %d ranges, want %d", tt.name, got, tt.chunks)
		}
	}
}

func TestFrameValidate(t *testing.T) {
	p := mustNew(t, Key{Float, Byte, Pad, FromLinear})
	ok := Frame{RowBytes: 32, Height: 3, InStride: 40, OutStride: 6}
	in := make([]byte, 2*40+32)
	out := make([]byte, 2*6+6)

	if err := ok.Validate(p, in, out); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := (Frame{}).Validate(p, nil, nil); err != nil {
		t.Errorf("empty frame: %v", err)
	}

	tests := []struct {
		name    string
		f       Frame
		in, out []byte
		want    error
	}{
		{"partial pixel", Frame{RowBytes: 30, Height: 3, InStride: 40, OutStride: 6}, in, out, ErrStride},
		{"input stride", Frame{RowBytes: 32, Height: 3, InStride: 16, OutStride: 6}, in, out, ErrStride},
		{"output stride", Frame{RowBytes: 32, Height: 3, InStride: 40, OutStride: 5}, in, out, ErrStride},
		{"short input", ok, in[:len(in)-1], out, ErrShortBuffer},
		{"short output", ok, in, out[:len(out)-1], ErrShortBuffer},
	}
	for _, tt := range tests {
		err := tt.f.Validate(p, tt.in, tt.out)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
		if err := ConvertFrame(p, tt.in, tt.out, tt.f, nil); !errors.Is(err, tt.want) {
			t.Errorf("%s: ConvertFrame returned %v, want %v", tt.name, err, tt.want)
		}
	}

	if err := (Frame{Height: -1}).Validate(p, in, out); err == nil {
		t.Error("negative height accepted")
	}
}

func BenchmarkConvertFrame(b *testing.B) {
	p := mustNew(b, Key{Byte, Float, Alpha, ToLinear})
	const width, height = 1920, 1080
	f := Frame{RowBytes: width * 4, Height: height, InStride: width * 4, OutStride: width * 16}
	in := make([]byte, f.InStride*height)
	out := make([]byte, f.OutStride*height)
	newRNG().Read(in)

	pool := NewPool(0)
	defer pool.Close()
	b.SetBytes(int64(len(in)))
	for b.Loop() {
		if err := ConvertFrame(p, in, out, f, pool); err != nil {
			b.Fatal(err)
		}
	}
}
