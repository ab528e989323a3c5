// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package convert

import (
	"github.com/ajroetker/go-pixelconv/hwy"
	"github.com/ajroetker/go-pixelconv/lut"
)

// Vector kernels, written once in hwy primitives and instantiated with the
// lane count of a tier: 4 for 128-bit registers, 8 for 256-bit registers.
// Whole vectors go through the vector body; the remainder goes through
// the matching scalar kernel. Every step mirrors the scalar arithmetic,
// including where float results are rounded, so both produce the same
// bytes.

// alphaLanes is the lane count of the alpha kernels: one pixel per vector.
const alphaLanes = 4

func toLinearOpaqueVec[T lut.Target](igt *[256]T, in []byte, out []T, lanes int) {
	hwy.ProcessWithTail(len(in), lanes,
		func(off int) {
			idx := hwy.PromoteU8ToI32(hwy.LoadN(in[off:], lanes))
			hwy.Store(hwy.GatherIndex(igt[:], idx), out[off:])
		},
		func(off, n int) {
			toLinearOpaque(igt, in[off:off+n], out[off:off+n])
		})
}

func fromLinearOpaqueUQ15Vec(gt *[lut.UQ15One + 1]byte, in []uint16, out []byte, lanes int) {
	one := hwy.SetN[uint32](lut.UQ15One, lanes)
	hwy.ProcessWithTail(len(in), lanes,
		func(off int) {
			idx := hwy.Min(hwy.PromoteU16ToU32(hwy.LoadN(in[off:], lanes)), one)
			hwy.Store(hwy.GatherIndex(gt[:], idx), out[off:])
		},
		func(off, n int) {
			fromLinearOpaqueUQ15(gt, in[off:off+n], out[off:off+n])
		})
}

// quantizer computes trunc(clamp(x*UQ15One + 0.5, 0, UQ15One)) per lane,
// the vector form of lut.FixToUQ15One.
type quantizer struct {
	scale, half, zero hwy.Vec[float32]
}

func newQuantizer(lanes int) quantizer {
	return quantizer{
		scale: hwy.SetN[float32](lut.UQ15One, lanes),
		half:  hwy.SetN[float32](0.5, lanes),
		zero:  hwy.ZeroN[float32](lanes),
	}
}

func (q quantizer) index(v, scale hwy.Vec[float32]) hwy.Vec[int32] {
	v = hwy.Clamp(hwy.Add(hwy.Mul(v, scale), q.half), q.zero, q.scale)
	return hwy.ConvertTo[int32](v)
}

func fromLinearOpaqueFloatVec(gt *[lut.UQ15One + 1]byte, in []float32, out []byte, lanes int) {
	q := newQuantizer(lanes)
	hwy.ProcessWithTail(len(in), lanes,
		func(off int) {
			idx := q.index(hwy.LoadN(in[off:], lanes), q.scale)
			hwy.Store(hwy.GatherIndex(gt[:], idx), out[off:])
		},
		func(off, n int) {
			fromLinearOpaqueFloat(gt, in[off:off+n], out[off:off+n])
		})
}

func toLinearAlphaUQ15Vec(igt *[256]uint16, in []byte, out []uint16) {
	round := hwy.SetN[uint32](lut.UQ15Round, alphaLanes)
	for i := 0; i+4 <= len(in); i += 4 {
		px := hwy.LoadN(in[i:], alphaLanes)
		a := uint32(lut.Fix15(px.Lane(3)))
		c := hwy.PromoteU16ToU32(hwy.GatherIndex(igt[:], hwy.PromoteU8ToI32(px)))
		c = hwy.ShiftRight(hwy.Add(hwy.Mul(c, hwy.SetN(a, alphaLanes)), round), 15)
		c = hwy.SetLane(c, 3, a)
		hwy.Store(hwy.DemoteU32ToU16(c), out[i:])
	}
}

func toLinearAlphaFloatVec(igt, at *[256]float32, in []byte, out []float32) {
	for i := 0; i+4 <= len(in); i += 4 {
		px := hwy.LoadN(in[i:], alphaLanes)
		a := at[px.Lane(3)]
		c := hwy.GatherIndex(igt[:], hwy.PromoteU8ToI32(px))
		c = hwy.SetLane(hwy.Mul(c, hwy.SetN(a, alphaLanes)), 3, a)
		hwy.Store(c, out[i:])
	}
}

func fromLinearAlphaUQ15Vec(gt *[lut.UQ15One + 1]byte, in []uint16, out []byte) {
	round := hwy.SetN[uint64](lut.UQ15Round, alphaLanes)
	one := hwy.SetN[uint64](lut.UQ15One, alphaLanes)
	for i := 0; i+4 <= len(in); i += 4 {
		px := hwy.LoadN(in[i:], alphaLanes)
		a := uint32(px.Lane(3))
		o3 := lut.UnFix15ToByte(a * 255)
		if o3 == 0 {
			hwy.Store(hwy.ZeroN[uint8](alphaLanes), out[i:])
			continue
		}
		c := hwy.Mul(hwy.ConvertTo[uint64](px), hwy.SetN(lut.Reciprocal15(a), alphaLanes))
		c = hwy.Min(hwy.ShiftRight(hwy.Add(c, round), 15), one)
		b := hwy.GatherIndex(gt[:], hwy.ConvertTo[uint32](c))
		hwy.Store(hwy.SetLane(b, 3, o3), out[i:])
	}
}

func fromLinearAlphaFloatVec(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	q := newQuantizer(alphaLanes)
	for i := 0; i+4 <= len(in); i += 4 {
		px := hwy.LoadN(in[i:], alphaLanes)
		a := px.Lane(3)
		if !(a >= alphaMin) {
			hwy.Store(hwy.ZeroN[uint8](alphaLanes), out[i:])
			continue
		}
		idx := q.index(px, hwy.SetN(lut.UQ15One/a, alphaLanes))
		b := hwy.GatherIndex(gt[:], idx)
		hwy.Store(hwy.SetLane(b, 3, lut.FixToByte(a)), out[i:])
	}
}

// padLanes returns the lane pattern of pixels stored three to four: a
// permutation that spreads packed channels into four-lane groups, and a
// mask of the lanes that carry data.
func padLanes(lanes int) (hwy.Vec[int32], hwy.Mask) {
	perm := hwy.ZeroN[int32](lanes)
	var mask hwy.Mask
	for j := range lanes {
		if j%4 == 3 {
			perm = hwy.SetLane(perm, j, -1)
			continue
		}
		perm = hwy.SetLane(perm, j, int32(j/4*3+j%4))
		mask |= 1 << j
	}
	return perm, mask
}

func toLinearPadVec(igt *[256]float32, in []byte, out []float32, lanes int) {
	perm, mask := padLanes(lanes)
	pixels := lanes / 4
	hwy.ProcessWithTail(len(in)/3, pixels,
		func(p int) {
			src := hwy.LoadN(in[p*3:], pixels*3)
			idx := hwy.PromoteU8ToI32(hwy.TableLookupLanes(src, perm))
			hwy.MaskStore(mask, hwy.GatherIndex(igt[:], idx), out[p*4:])
		},
		func(p, n int) {
			toLinearPad(igt, in[p*3:(p+n)*3], out[p*4:(p+n)*4])
		})
}

func fromLinearPadVec(gt *[lut.UQ15One + 1]byte, in []float32, out []byte, lanes int) {
	_, mask := padLanes(lanes)
	q := newQuantizer(lanes)
	pixels := lanes / 4
	hwy.ProcessWithTail(len(in)/4, pixels,
		func(p int) {
			idx := q.index(hwy.LoadN(in[p*4:], lanes), q.scale)
			hwy.CompressStore(hwy.GatherIndex(gt[:], idx), mask, out[p*3:])
		},
		func(p, n int) {
			fromLinearPad(gt, in[p*4:(p+n)*4], out[p*3:(p+n)*3])
		})
}

// interpolator is the vector form of lut.Interpolate.
type interpolator struct {
	tbl       []float32
	zero, one hwy.Vec[float32]
	scale     hwy.Vec[float32]
	next      hwy.Vec[int32]
}

func newInterpolator(tbl *[lut.InterpScale + 2]float32, lanes int) interpolator {
	return interpolator{
		tbl:   tbl[:],
		zero:  hwy.ZeroN[float32](lanes),
		one:   hwy.SetN[float32](1, lanes),
		scale: hwy.SetN[float32](lut.InterpScale, lanes),
		next:  hwy.SetN[int32](1, lanes),
	}
}

func (ip interpolator) apply(v hwy.Vec[float32]) hwy.Vec[float32] {
	pos := hwy.Mul(hwy.Clamp(v, ip.zero, ip.one), ip.scale)
	i := hwy.ConvertTo[int32](pos)
	d := hwy.Sub(pos, hwy.ConvertTo[float32](i))
	lo := hwy.GatherIndex(ip.tbl, i)
	hi := hwy.GatherIndex(ip.tbl, hwy.Add(i, ip.next))
	return hwy.MulAdd(hwy.Sub(hi, lo), d, lo)
}

func interpOpaqueVec(tbl *[lut.InterpScale + 2]float32, in, out []float32, lanes int) {
	ip := newInterpolator(tbl, lanes)
	hwy.ProcessWithTail(len(in), lanes,
		func(off int) {
			hwy.Store(ip.apply(hwy.LoadN(in[off:], lanes)), out[off:])
		},
		func(off, n int) {
			interpOpaque(tbl, in[off:off+n], out[off:off+n])
		})
}

func interpAlphaVec(tbl *[lut.InterpScale + 2]float32, in, out []float32) {
	ip := newInterpolator(tbl, alphaLanes)
	for i := 0; i+4 <= len(in); i += 4 {
		px := hwy.LoadN(in[i:], alphaLanes)
		a := px.Lane(3)
		if !(a > 0) {
			hwy.Store(hwy.ZeroN[float32](alphaLanes), out[i:])
			continue
		}
		c := ip.apply(hwy.Mul(px, hwy.SetN(1/a, alphaLanes)))
		c = hwy.Mul(c, hwy.SetN(a, alphaLanes))
		hwy.Store(hwy.SetLane(c, 3, a), out[i:])
	}
}
