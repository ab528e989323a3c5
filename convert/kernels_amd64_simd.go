//go:build amd64 && goexperiment.simd

package convert

import (
	"simd/archsimd"

	"github.com/ajroetker/go-pixelconv/hwy"
	"github.com/ajroetker/go-pixelconv/lut"
)

// AVX2 kernels. Table lookups have no vector form: indices are computed
// eight at a time, stored and looked up lane by lane. Each step rounds the
// way the scalar kernel does, and the remainder goes through it.

func init() {
	natives[Key{Float, Byte, Opaque, FromLinear}] = nativeKernel{
		level: hwy.DispatchAVX2,
		build: func() kernel {
			gt := lut.Gamma()
			return func(in, out []byte) { fromLinearOpaqueFloatAVX2(gt, asFloat32(in), out) }
		},
	}
	natives[Key{Float, Byte, Pad, FromLinear}] = nativeKernel{
		level: hwy.DispatchAVX2,
		build: func() kernel {
			gt := lut.Gamma()
			return func(in, out []byte) { fromLinearPadAVX2(gt, asFloat32(in), out) }
		},
	}
	natives[Key{Float, Float, Opaque, ToLinear}] = nativeKernel{
		level: hwy.DispatchAVX2,
		fma:   true,
		build: func() kernel { return interpOpaqueAVX2Kernel(lut.InverseGammaInterp()) },
	}
	natives[Key{Float, Float, Opaque, FromLinear}] = nativeKernel{
		level: hwy.DispatchAVX2,
		fma:   true,
		build: func() kernel { return interpOpaqueAVX2Kernel(lut.GammaInterp()) },
	}
}

// Constants are broadcast inside the kernels rather than at package
// level: package initialization also runs on processors without AVX.

type quantizerAVX2 struct {
	one, half, zero archsimd.Float32x8
}

func newQuantizerAVX2() quantizerAVX2 {
	return quantizerAVX2{
		one:  archsimd.BroadcastFloat32x8(lut.UQ15One),
		half: archsimd.BroadcastFloat32x8(0.5),
		zero: archsimd.BroadcastFloat32x8(0),
	}
}

// index stores lut.FixToUQ15One of each lane of v in idx. NaN lanes fail
// the self-comparison and become zero, as in lut.ClampFloat.
func (q quantizerAVX2) index(v archsimd.Float32x8, idx *[8]int32) {
	v = v.Mul(q.one).Add(q.half)
	v = v.Merge(q.zero, v.Equal(v)).Max(q.zero).Min(q.one)
	// VCVTTPS2DQ truncates.
	v.ConvertToInt32().StoreSlice(idx[:])
}

func fromLinearOpaqueFloatAVX2(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	out = out[:len(in)]
	q := newQuantizerAVX2()
	var idx [8]int32
	i := 0
	for ; i+8 <= len(in); i += 8 {
		q.index(archsimd.LoadFloat32x8Slice(in[i:i+8]), &idx)
		d := out[i : i+8 : i+8]
		d[0], d[1], d[2], d[3] = gt[idx[0]], gt[idx[1]], gt[idx[2]], gt[idx[3]]
		d[4], d[5], d[6], d[7] = gt[idx[4]], gt[idx[5]], gt[idx[6]], gt[idx[7]]
	}
	fromLinearOpaqueFloat(gt, in[i:], out[i:])
}

// fromLinearPadAVX2 quantizes two pixels per vector and drops the fourth
// lane of each.
func fromLinearPadAVX2(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	q := newQuantizerAVX2()
	var idx [8]int32
	i, o := 0, 0
	for ; i+8 <= len(in); i, o = i+8, o+6 {
		q.index(archsimd.LoadFloat32x8Slice(in[i:i+8]), &idx)
		d := out[o : o+6 : o+6]
		d[0], d[1], d[2] = gt[idx[0]], gt[idx[1]], gt[idx[2]]
		d[3], d[4], d[5] = gt[idx[4]], gt[idx[5]], gt[idx[6]]
	}
	fromLinearPad(gt, in[i:], out[o:])
}

type interpolatorAVX2 struct {
	tbl              *[lut.InterpScale + 2]float32
	zero, one, scale archsimd.Float32x8
}

func newInterpolatorAVX2(tbl *[lut.InterpScale + 2]float32) interpolatorAVX2 {
	return interpolatorAVX2{
		tbl:   tbl,
		zero:  archsimd.BroadcastFloat32x8(0),
		one:   archsimd.BroadcastFloat32x8(1),
		scale: archsimd.BroadcastFloat32x8(lut.InterpScale),
	}
}

// apply is lut.Interpolate on eight lanes. The final step is one VFMADD,
// which rounds like hwy.FMA32.
func (ip interpolatorAVX2) apply(v archsimd.Float32x8) archsimd.Float32x8 {
	v = v.Merge(ip.zero, v.Equal(v)).Max(ip.zero).Min(ip.one)
	pos := v.Mul(ip.scale)
	i := pos.ConvertToInt32()
	d := pos.Sub(i.ConvertToFloat32())

	var idx [8]int32
	var lo, hi [8]float32
	i.StoreSlice(idx[:])
	for k, j := range idx {
		lo[k], hi[k] = ip.tbl[j], ip.tbl[j+1]
	}
	l := archsimd.LoadFloat32x8Slice(lo[:])
	h := archsimd.LoadFloat32x8Slice(hi[:])
	return h.Sub(l).MulAdd(d, l)
}

func interpOpaqueAVX2Kernel(tbl *[lut.InterpScale + 2]float32) kernel {
	ip := newInterpolatorAVX2(tbl)
	return func(in, out []byte) {
		src, dst := asFloat32(in), asFloat32(out)
		i := 0
		for ; i+8 <= len(src); i += 8 {
			ip.apply(archsimd.LoadFloat32x8Slice(src[i:i+8])).StoreSlice(dst[i : i+8])
		}
		interpOpaque(tbl, src[i:], dst[i:])
	}
}
