package convert

import (
	"os"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-pixelconv/hwy"
)

// TestDefaultSelection checks that New without options runs either a
// compiled kernel for the detected tier or the scalar kernel, never a
// portable vector kernel.
func TestDefaultSelection(t *testing.T) {
	t.Logf("level=%v fma=%v native=%d", hwy.CurrentLevel(), hwy.HasFMA(), len(NativeKeys()))
	for _, key := range Keys() {
		p := mustNew(t, key)
		switch {
		case p.IsNative():
			if p.Level() != hwy.CurrentLevel() {
				t.Errorf("%v: native kernel at %v, detected %v", key, p.Level(), hwy.CurrentLevel())
			}
		case p.Level() != hwy.DispatchScalar:
			t.Errorf("%v: default processor runs portable %v kernel", key, p.Level())
		}
		if hwy.CurrentLevel() == hwy.DispatchScalar && p.IsNative() {
			t.Errorf("%v: native kernel on the scalar tier", key)
		}
	}
}

func TestForcedLevelIsPortable(t *testing.T) {
	for _, key := range Keys() {
		for _, level := range vectorLevels {
			if p := mustNew(t, key, WithLevel(level)); p.IsNative() {
				t.Errorf("%v with %v: got native kernel", key, level)
			}
		}
	}
}

func TestSelectNative(t *testing.T) {
	saved := natives
	t.Cleanup(func() { natives = saved })

	plain := Key{Float, Byte, Opaque, FromLinear}
	fused := Key{Float, Float, Opaque, ToLinear}
	natives = map[Key]nativeKernel{
		plain: {level: hwy.DispatchAVX2, build: func() kernel { return nil }},
		fused: {level: hwy.DispatchAVX2, fma: true, build: func() kernel { return nil }},
	}
	tests := []struct {
		key   Key
		level hwy.DispatchLevel
		fma   bool
		want  bool
	}{
		{plain, hwy.DispatchAVX2, false, true},
		{plain, hwy.DispatchSSE2, true, false},
		{plain, hwy.DispatchScalar, true, false},
		{fused, hwy.DispatchAVX2, true, true},
		{fused, hwy.DispatchAVX2, false, false},
		{Key{Byte, Float, Alpha, ToLinear}, hwy.DispatchAVX2, true, false},
	}
	for _, tt := range tests {
		if _, got := selectNative(tt.key, tt.level, tt.fma); got != tt.want {
			t.Errorf("selectNative(%v, %v, fma=%v) = %v, want %v", tt.key, tt.level, tt.fma, got, tt.want)
		}
	}
}

// TestNativeMatchesScalar compares every compiled kernel this processor
// can run with the scalar kernel.
func TestNativeMatchesScalar(t *testing.T) {
	ran := 0
	for _, key := range NativeKeys() {
		p := mustNew(t, key)
		if !p.IsNative() {
			continue
		}
		ran++
		scalar := mustNew(t, key, WithLevel(hwy.DispatchScalar))
		rng := newRNG()
		for _, units := range []int{1, 7, 8, 29, 1000 + rng.Intn(64)} {
			in := randomInput(rng, key, p.SrcUnit(), units)
			want := filled(scalar.OutputSize(len(in)))
			got := filled(p.OutputSize(len(in)))
			scalar.ConvertScanline(in, want, len(in))
			p.ConvertScanline(in, got, len(in))
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%v, %d units: native differs from scalar (-scalar +native):\n%s", p, units, diff)
			}
		}
	}
	if ran == 0 {
		t.Skipf("no compiled kernels for %v in this build", hwy.CurrentLevel())
	}
}

// TestNoSimdEnvSelectsScalar runs itself in a child process with
// PIXELCONV_NO_SIMD set, since detection happens once at package init.
func TestNoSimdEnvSelectsScalar(t *testing.T) {
	if hwy.NoSimdEnv() {
		if hwy.CurrentLevel() != hwy.DispatchScalar || hwy.HasFMA() {
			t.Fatalf("PIXELCONV_NO_SIMD set: level %v, fma %v", hwy.CurrentLevel(), hwy.HasFMA())
		}
		for _, key := range Keys() {
			if p := mustNew(t, key); p.Level() != hwy.DispatchScalar || p.IsNative() {
				t.Errorf("PIXELCONV_NO_SIMD set: %v selected %v", key, p)
			}
		}
		return
	}
	cmd := exec.Command(os.Args[0], "-test.run=^TestNoSimdEnvSelectsScalar$", "-test.count=1")
	cmd.Env = append(os.Environ(), "PIXELCONV_NO_SIMD=1")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("child process: %v\n%s", err, out)
	}
}

// BenchmarkSelectedTier compares the processor New picks by default with
// the scalar kernel and the portable kernel of the detected tier.
func BenchmarkSelectedTier(b *testing.B) {
	const samples = 1920 * 4
	portable := hwy.CurrentLevel()
	if !portable.IsVector() {
		portable = hwy.DispatchAVX2
	}
	for _, key := range Keys() {
		for _, bc := range []struct {
			name string
			opts []Option
		}{
			{"default", nil},
			{"scalar", []Option{WithLevel(hwy.DispatchScalar)}},
			{"portable", []Option{WithLevel(portable)}},
		} {
			p := mustNew(b, key, bc.opts...)
			in := randomInput(newRNG(), key, p.SrcUnit(), samples*key.Src.Size()/p.SrcUnit())
			out := make([]byte, p.OutputSize(len(in)))
			b.Run(key.String()+"/"+bc.name, func(b *testing.B) {
				b.SetBytes(int64(len(in)))
				for b.Loop() {
					p.ConvertScanline(in, out, len(in))
				}
			})
		}
	}
}
