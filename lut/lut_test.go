package lut

import (
	"math"
	"testing"
)

func TestTableEndpoints(t *testing.T) {
	igt := InverseGamma[uint16]()
	if igt[0] != 0 || igt[255] != UQ15One {
		t.Errorf("InverseGamma[uint16]: endpoints %d, %d; want 0, %d", igt[0], igt[255], UQ15One)
	}
	igf := InverseGamma[float32]()
	if igf[0] != 0 || igf[255] != 1 {
		t.Errorf("InverseGamma[float32]: endpoints %v, %v; want 0, 1", igf[0], igf[255])
	}
	gt := Gamma()
	if len(gt) != UQ15One+1 {
		t.Fatalf("Gamma: got %d entries, want %d", len(gt), UQ15One+1)
	}
	if gt[0] != 0 || gt[UQ15One] != 255 {
		t.Errorf("Gamma: endpoints %d, %d; want 0, 255", gt[0], gt[UQ15One])
	}
	at := AlphaScale()
	if at[0] != 0 || at[255] != 1 {
		t.Errorf("AlphaScale: endpoints %v, %v; want 0, 1", at[0], at[255])
	}
}

func TestTablesMonotonic(t *testing.T) {
	igt := InverseGamma[uint16]()
	for i := 1; i < len(igt); i++ {
		if igt[i] < igt[i-1] {
			t.Fatalf("InverseGamma[uint16] decreases at %d: %d < %d", i, igt[i], igt[i-1])
		}
	}
	igf := InverseGamma[float32]()
	for i := 1; i < len(igf); i++ {
		if igf[i] < igf[i-1] {
			t.Fatalf("InverseGamma[float32] decreases at %d", i)
		}
	}
	gt := Gamma()
	for i := 1; i < len(gt); i++ {
		if gt[i] < gt[i-1] {
			t.Fatalf("Gamma decreases at %d: %d < %d", i, gt[i], gt[i-1])
		}
	}
	for _, tbl := range []*[InterpScale + 2]float32{InverseGammaInterp(), GammaInterp()} {
		for i := 1; i < len(tbl); i++ {
			if tbl[i] < tbl[i-1] {
				t.Fatalf("interpolation table decreases at %d", i)
			}
		}
	}
}

func TestTablesShared(t *testing.T) {
	if InverseGamma[uint16]() != InverseGamma[uint16]() {
		t.Error("InverseGamma[uint16] returned different tables")
	}
	if Gamma() != Gamma() {
		t.Error("Gamma returned different tables")
	}
	if BuildGamma() == Gamma() {
		t.Error("BuildGamma should return a fresh table")
	}
}

func TestGammaRoundTrip(t *testing.T) {
	igt := InverseGamma[uint16]()
	gt := Gamma()
	for i := range 256 {
		got := int(gt[igt[i]])
		if d := got - i; d < -1 || d > 1 {
			t.Errorf("byte %d: round trip gives %d", i, got)
		}
	}
}

func TestTransferFunctions(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.02, 0.2, 0.5, 0.9, 1} {
		got := LinearToCompanded(CompandedToLinear(v))
		if math.Abs(got-v) > 1e-6 {
			t.Errorf("LinearToCompanded(CompandedToLinear(%v)) = %v", v, got)
		}
	}
}

func TestFix15(t *testing.T) {
	tests := []struct {
		in   byte
		want uint16
	}{
		{0, 0},
		{1, 129},
		{128, 16448},
		{255, UQ15One},
	}
	for _, tt := range tests {
		if got := Fix15(tt.in); got != tt.want {
			t.Errorf("Fix15(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUnFix(t *testing.T) {
	if got := UnFix15(UQ15One * UQ15One); got != UQ15One {
		t.Errorf("UnFix15(1*1) = %d, want %d", got, UQ15One)
	}
	if got := UnFix15(UQ15Round); got != 1 {
		t.Errorf("UnFix15(half) = %d, want 1 (rounds)", got)
	}
	if got := UnFix15ToByte(UQ15One * 255); got != 255 {
		t.Errorf("UnFix15ToByte(255.0) = %d, want 255", got)
	}
	if got := UnFix15ToByte(65535 * 255); got != 255 {
		t.Errorf("UnFix15ToByte should saturate, got %d", got)
	}
	if got := UnFixToUQ15One(uint64(UQ15One) * Reciprocal15(1)); got != UQ15One {
		t.Errorf("UnFixToUQ15One should saturate, got %d", got)
	}
	if got := ClampToUQ15One(40000); got != UQ15One {
		t.Errorf("ClampToUQ15One(40000) = %d", got)
	}
}

func TestFixToUQ15One(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		in   float32
		want uint32
	}{
		{0, 0},
		{0.5, 16384},
		{1, UQ15One},
		{-1, 0},
		{2, UQ15One},
		{nan, 0},
		{float32(math.Inf(1)), UQ15One},
	}
	for _, tt := range tests {
		if got := FixToUQ15One(tt.in); got != tt.want {
			t.Errorf("FixToUQ15One(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := FixToByte(0.5); got != 128 {
		t.Errorf("FixToByte(0.5) = %d, want 128", got)
	}
	if got := FixToByte(1.5); got != 255 {
		t.Errorf("FixToByte(1.5) = %d, want 255", got)
	}
}

func TestInterpolate(t *testing.T) {
	tbl := InverseGammaInterp()
	if got := Interpolate(tbl, 0); got != 0 {
		t.Errorf("Interpolate(0) = %v, want 0", got)
	}
	if got := Interpolate(tbl, float32(math.NaN())); got != 0 {
		t.Errorf("Interpolate(NaN) = %v, want 0", got)
	}
	if got := Interpolate(tbl, 1); math.Abs(float64(got)-1) > 1e-6 {
		t.Errorf("Interpolate(1) = %v, want 1", got)
	}
	if got := Interpolate(tbl, 3); got != Interpolate(tbl, 1) {
		t.Errorf("Interpolate(3) = %v, want clamp to 1", got)
	}
	for _, x := range []float32{0.01, 0.25, 0.5, 0.73, 0.999} {
		got := float64(Interpolate(tbl, x))
		want := CompandedToLinear(float64(x))
		if math.Abs(got-want) > 1e-5 {
			t.Errorf("Interpolate(%v) = %v, want ~%v", x, got, want)
		}
	}
}

func BenchmarkBuildGamma(b *testing.B) {
	for b.Loop() {
		BuildGamma()
	}
}
