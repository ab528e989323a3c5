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

import "github.com/ajroetker/go-pixelconv/lut"

// Scalar kernels. They run on every tier: alone on the scalar tier and
// for the remainder a vector loop leaves behind. Opaque loops are
// unrolled eight or four wide for instruction-level parallelism.

// alphaMin is the smallest float alpha that rounds to a nonzero byte.
const alphaMin = float32(0.5) / 255

func toLinearOpaque[T lut.Target](igt *[256]T, in []byte, out []T) {
	out = out[:len(in)]
	i := 0
	for ; i+8 <= len(in); i += 8 {
		s := in[i : i+8 : i+8]
		d := out[i : i+8 : i+8]
		o0, o1, o2, o3 := igt[s[0]], igt[s[1]], igt[s[2]], igt[s[3]]
		o4, o5, o6, o7 := igt[s[4]], igt[s[5]], igt[s[6]], igt[s[7]]
		d[0], d[1], d[2], d[3] = o0, o1, o2, o3
		d[4], d[5], d[6], d[7] = o4, o5, o6, o7
	}
	for ; i < len(in); i++ {
		out[i] = igt[in[i]]
	}
}

func toLinearAlphaUQ15(igt *[256]uint16, in []byte, out []uint16) {
	for i := 0; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		a := uint32(lut.Fix15(s[3]))
		d[0] = uint16(lut.UnFix15(uint32(igt[s[0]]) * a))
		d[1] = uint16(lut.UnFix15(uint32(igt[s[1]]) * a))
		d[2] = uint16(lut.UnFix15(uint32(igt[s[2]]) * a))
		d[3] = uint16(a)
	}
}

func toLinearAlphaFloat(igt, at *[256]float32, in []byte, out []float32) {
	for i := 0; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		a := at[s[3]]
		d[0] = igt[s[0]] * a
		d[1] = igt[s[1]] * a
		d[2] = igt[s[2]] * a
		d[3] = a
	}
}

func toLinearPad(igt *[256]float32, in []byte, out []float32) {
	for i, o := 0, 0; i+3 <= len(in); i, o = i+3, o+4 {
		s := in[i : i+3 : i+3]
		d := out[o : o+3 : o+3]
		d[0], d[1], d[2] = igt[s[0]], igt[s[1]], igt[s[2]]
	}
}

func fromLinearOpaqueUQ15(gt *[lut.UQ15One + 1]byte, in []uint16, out []byte) {
	out = out[:len(in)]
	i := 0
	for ; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		d[0] = gt[lut.ClampToUQ15One(uint32(s[0]))]
		d[1] = gt[lut.ClampToUQ15One(uint32(s[1]))]
		d[2] = gt[lut.ClampToUQ15One(uint32(s[2]))]
		d[3] = gt[lut.ClampToUQ15One(uint32(s[3]))]
	}
	for ; i < len(in); i++ {
		out[i] = gt[lut.ClampToUQ15One(uint32(in[i]))]
	}
}

func fromLinearOpaqueFloat(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	out = out[:len(in)]
	i := 0
	for ; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		d[0] = gt[lut.FixToUQ15One(s[0])]
		d[1] = gt[lut.FixToUQ15One(s[1])]
		d[2] = gt[lut.FixToUQ15One(s[2])]
		d[3] = gt[lut.FixToUQ15One(s[3])]
	}
	for ; i < len(in); i++ {
		out[i] = gt[lut.FixToUQ15One(in[i])]
	}
}

func fromLinearAlphaUQ15(gt *[lut.UQ15One + 1]byte, in []uint16, out []byte) {
	for i := 0; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		a := uint32(s[3])
		o3 := lut.UnFix15ToByte(a * 255)
		if o3 == 0 {
			d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			continue
		}
		r := lut.Reciprocal15(a)
		d[0] = gt[lut.UnFixToUQ15One(uint64(s[0])*r)]
		d[1] = gt[lut.UnFixToUQ15One(uint64(s[1])*r)]
		d[2] = gt[lut.UnFixToUQ15One(uint64(s[2])*r)]
		d[3] = o3
	}
}

func fromLinearAlphaFloat(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	for i := 0; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		a := s[3]
		if !(a >= alphaMin) {
			d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			continue
		}
		r := lut.UQ15One / a
		d[0] = gt[lut.FixScaled(s[0], r, lut.UQ15One)]
		d[1] = gt[lut.FixScaled(s[1], r, lut.UQ15One)]
		d[2] = gt[lut.FixScaled(s[2], r, lut.UQ15One)]
		d[3] = lut.FixToByte(a)
	}
}

func fromLinearPad(gt *[lut.UQ15One + 1]byte, in []float32, out []byte) {
	for i, o := 0, 0; i+4 <= len(in); i, o = i+4, o+3 {
		s := in[i : i+3 : i+3]
		d := out[o : o+3 : o+3]
		d[0] = gt[lut.FixToUQ15One(s[0])]
		d[1] = gt[lut.FixToUQ15One(s[1])]
		d[2] = gt[lut.FixToUQ15One(s[2])]
	}
}

// interpOpaque converts float samples through an interpolation table.
func interpOpaque(tbl *[lut.InterpScale + 2]float32, in, out []float32) {
	out = out[:len(in)]
	i := 0
	for ; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		d[0] = lut.Interpolate(tbl, s[0])
		d[1] = lut.Interpolate(tbl, s[1])
		d[2] = lut.Interpolate(tbl, s[2])
		d[3] = lut.Interpolate(tbl, s[3])
	}
	for ; i < len(in); i++ {
		out[i] = lut.Interpolate(tbl, in[i])
	}
}

// interpAlpha converts premultiplied float pixels through an interpolation
// table: colors are unpremultiplied, converted and premultiplied again.
// Alpha passes through; pixels with alpha <= 0 become zero.
func interpAlpha(tbl *[lut.InterpScale + 2]float32, in, out []float32) {
	for i := 0; i+4 <= len(in); i += 4 {
		s := in[i : i+4 : i+4]
		d := out[i : i+4 : i+4]
		a := s[3]
		if !(a > 0) {
			d[0], d[1], d[2], d[3] = 0, 0, 0, 0
			continue
		}
		inv := 1 / a
		d[0] = lut.Interpolate(tbl, s[0]*inv) * a
		d[1] = lut.Interpolate(tbl, s[1]*inv) * a
		d[2] = lut.Interpolate(tbl, s[2]*inv) * a
		d[3] = a
	}
}
