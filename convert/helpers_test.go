package convert

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-pixelconv/hwy"
)

// vectorLevels are the tiers whose kernels are checked against scalar.
var vectorLevels = []hwy.DispatchLevel{hwy.DispatchSSE2, hwy.DispatchAVX2, hwy.DispatchNEON}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func mustNew(t testing.TB, key Key, opts ...Option) *Processor {
	t.Helper()
	p, err := New(key, opts...)
	if err != nil {
		t.Fatalf("New(%v): %v", key, err)
	}
	return p
}

func uint16Bytes(v ...uint16) []byte {
	b := make([]byte, 2*len(v))
	copy(asUint16(b), v)
	return b
}

func float32Bytes(v ...float32) []byte {
	b := make([]byte, 4*len(v))
	copy(asFloat32(b), v)
	return b
}

// randomInput fills units source units for key with values that cover
// the clamping and transparency edge cases of the source element type.
func randomInput(rng *rand.Rand, key Key, srcUnit, units int) []byte {
	b := make([]byte, srcUnit*units)
	switch key.Src {
	case Byte:
		rng.Read(b)
	case UQ15:
		s := asUint16(b)
		for i := range s {
			switch rng.Intn(8) {
			case 0:
				s[i] = 0
			case 1:
				s[i] = uint16(32768 + rng.Intn(32768))
			default:
				s[i] = uint16(rng.Intn(32769))
			}
		}
	case Float:
		s := asFloat32(b)
		for i := range s {
			switch rng.Intn(10) {
			case 0:
				s[i] = 0
			case 1:
				s[i] = float32(math.NaN())
			case 2:
				s[i] = -rng.Float32()
			case 3:
				s[i] = 1 + rng.Float32()
			case 4:
				s[i] = rng.Float32() * 0.003
			default:
				s[i] = rng.Float32()
			}
		}
	}
	return b
}

// filled returns n bytes set to a sentinel so unwritten output lanes
// compare equal across runs.
func filled(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = 0xA5
	}
	return b
}
