package hwy

import "testing"

func TestPromoteU8ToI32(t *testing.T) {
	v := PromoteU8ToI32(LoadN([]uint8{0, 1, 128, 255}, 4))
	want := []int32{0, 1, 128, 255}
	for i, w := range want {
		if got := v.Lane(i); got != w {
			t.Errorf("lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestPromoteDemoteU16(t *testing.T) {
	v := PromoteU16ToU32(LoadN([]uint16{0, 32768, 65535}, 3))
	if v.Lane(2) != 65535 {
		t.Errorf("PromoteU16ToU32: got %d, want 65535", v.Lane(2))
	}
	d := DemoteU32ToU16(LoadN([]uint32{1, 70000, 32768}, 3))
	want := []uint16{1, 0xFFFF, 32768}
	for i, w := range want {
		if got := d.Lane(i); got != w {
			t.Errorf("DemoteU32ToU16 lane %d: got %d, want %d", i, got, w)
		}
	}
}
