package hwy

import "testing"

func TestDispatchLevelLanes(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		bits  int
		want  int
	}{
		{DispatchScalar, 32, 1},
		{DispatchSSE2, 32, 4},
		{DispatchSSE2, 16, 8},
		{DispatchNEON, 8, 16},
		{DispatchAVX2, 32, 8},
		{DispatchAVX2, 16, 16},
		{DispatchAVX2, 0, 1},
		{DispatchAVX2, 512, 1},
	}
	for _, tt := range tests {
		if got := tt.level.Lanes(tt.bits); got != tt.want {
			t.Errorf("%v.Lanes(%d) = %d, want %d", tt.level, tt.bits, got, tt.want)
		}
	}
}

func TestDispatchLevelTiers(t *testing.T) {
	if DispatchScalar.IsVector() {
		t.Error("scalar reported as vector")
	}
	if !DispatchSSE2.IsVector() || DispatchSSE2.IsWide() {
		t.Error("sse2 should be a narrow vector tier")
	}
	if !DispatchAVX2.IsWide() {
		t.Error("avx2 should be wide")
	}
	for _, tt := range []struct{ in, want DispatchLevel }{
		{DispatchAVX2, DispatchSSE2},
		{DispatchSSE2, DispatchSSE2},
		{DispatchNEON, DispatchNEON},
		{DispatchScalar, DispatchScalar},
	} {
		if got := tt.in.Narrow(); got != tt.want {
			t.Errorf("%v.Narrow() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	level := CurrentLevel()
	if HasBaselineVector() != level.IsVector() {
		t.Errorf("HasBaselineVector() = %v for %v", HasBaselineVector(), level)
	}
	if HasWideVector() && !HasBaselineVector() {
		t.Error("wide tier without baseline tier")
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}
	if got := PreferredVectorWidth(32); got != level.Lanes(32) {
		t.Errorf("PreferredVectorWidth(32) = %d", got)
	}
	if !HasBaselineVector() && PreferredVectorWidth(32) != 1 {
		t.Error("scalar tier must report one lane")
	}
	if MaxLanes[uint8]() > MaxVecLanes {
		t.Errorf("MaxLanes[uint8]() = %d exceeds MaxVecLanes", MaxLanes[uint8]())
	}
}

func TestEnvFlag(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("PIXELCONV_TEST_FLAG", tt.val)
		if got := envFlag("PIXELCONV_TEST_FLAG"); got != tt.want {
			t.Errorf("envFlag(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}
