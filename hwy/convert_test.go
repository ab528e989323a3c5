package hwy

import "testing"

func TestConvertToTruncates(t *testing.T) {
	v := LoadN([]float32{0.4, 0.5, 1.99, 32768.5}, 4)
	got := ConvertTo[int32](v).Data()
	want := []int32{0, 0, 1, 32768}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvertToWidens(t *testing.T) {
	v := LoadN([]uint8{0, 128, 255}, 3)
	got := ConvertTo[uint32](v)
	if got.NumLanes() != 3 || got.Lane(2) != 255 {
		t.Errorf("ConvertTo[uint32]: got %v", got.Data())
	}
}
