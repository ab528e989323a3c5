//go:build !(amd64 && goexperiment.simd)

package hwy

import "testing"

func TestPortableBuildIsScalar(t *testing.T) {
	if CurrentLevel() != DispatchScalar {
		t.Errorf("CurrentLevel() = %v without compiled vector kernels, want scalar", CurrentLevel())
	}
	if HasBaselineVector() || HasWideVector() {
		t.Error("portable build reports a vector tier")
	}
	if got := MaxLanes[float32](); got != 1 {
		t.Errorf("MaxLanes[float32]() = %d, want 1", got)
	}
}
