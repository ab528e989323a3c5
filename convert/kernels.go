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

// kernel converts the whole of in to out. Both are already sliced to the
// exact byte counts of one call.
type kernel func(in, out []byte)

// kernelSet describes every form of one conversion.
type kernelSet struct {
	// srcUnit and dstUnit are the bytes of one processing unit: one
	// sample for opaque kernels, one pixel otherwise.
	srcUnit, dstUnit int

	// vector reports whether build accepts a lane count.
	vector bool
	// wide reports whether the vector form may use 256-bit registers.
	// Alpha kernels work one pixel per vector and stay on 128 bits.
	wide bool

	// build returns the kernel for the given lane count; 0 selects the
	// scalar form. Tables are fetched here, once per processor.
	build func(lanes int) kernel
}

var kernels = map[Key]kernelSet{
	{Byte, UQ15, Opaque, ToLinear}: {
		srcUnit: 1, dstUnit: 2, vector: true, wide: true,
		build: func(lanes int) kernel {
			igt := lut.InverseGamma[uint16]()
			if lanes == 0 {
				return func(in, out []byte) { toLinearOpaque(igt, in, asUint16(out)) }
			}
			return func(in, out []byte) { toLinearOpaqueVec(igt, in, asUint16(out), lanes) }
		},
	},
	{Byte, UQ15, Alpha, ToLinear}: {
		srcUnit: 4, dstUnit: 8, vector: true,
		build: func(lanes int) kernel {
			igt := lut.InverseGamma[uint16]()
			if lanes == 0 {
				return func(in, out []byte) { toLinearAlphaUQ15(igt, in, asUint16(out)) }
			}
			return func(in, out []byte) { toLinearAlphaUQ15Vec(igt, in, asUint16(out)) }
		},
	},
	{Byte, Float, Opaque, ToLinear}: {
		srcUnit: 1, dstUnit: 4, vector: true, wide: true,
		build: func(lanes int) kernel {
			igt := lut.InverseGamma[float32]()
			if lanes == 0 {
				return func(in, out []byte) { toLinearOpaque(igt, in, asFloat32(out)) }
			}
			return func(in, out []byte) { toLinearOpaqueVec(igt, in, asFloat32(out), lanes) }
		},
	},
	{Byte, Float, Alpha, ToLinear}: {
		srcUnit: 4, dstUnit: 16, vector: true,
		build: func(lanes int) kernel {
			igt, at := lut.InverseGamma[float32](), lut.AlphaScale()
			if lanes == 0 {
				return func(in, out []byte) { toLinearAlphaFloat(igt, at, in, asFloat32(out)) }
			}
			return func(in, out []byte) { toLinearAlphaFloatVec(igt, at, in, asFloat32(out)) }
		},
	},
	{Byte, Float, Pad, ToLinear}: {
		srcUnit: 3, dstUnit: 16, vector: true, wide: true,
		build: func(lanes int) kernel {
			igt := lut.InverseGamma[float32]()
			if lanes == 0 {
				return func(in, out []byte) { toLinearPad(igt, in, asFloat32(out)) }
			}
			return func(in, out []byte) { toLinearPadVec(igt, in, asFloat32(out), lanes) }
		},
	},
	{Float, Float, Opaque, ToLinear}: {
		srcUnit: 4, dstUnit: 4, vector: true, wide: true,
		build: func(lanes int) kernel { return interpOpaqueKernel(lut.InverseGammaInterp(), lanes) },
	},
	{Float, Float, Alpha, ToLinear}: {
		srcUnit: 16, dstUnit: 16, vector: true,
		build: func(lanes int) kernel { return interpAlphaKernel(lut.InverseGammaInterp(), lanes) },
	},
	{UQ15, Byte, Opaque, FromLinear}: {
		srcUnit: 2, dstUnit: 1, vector: true, wide: true,
		build: func(lanes int) kernel {
			gt := lut.Gamma()
			if lanes == 0 {
				return func(in, out []byte) { fromLinearOpaqueUQ15(gt, asUint16(in), out) }
			}
			return func(in, out []byte) { fromLinearOpaqueUQ15Vec(gt, asUint16(in), out, lanes) }
		},
	},
	{UQ15, Byte, Alpha, FromLinear}: {
		srcUnit: 8, dstUnit: 4, vector: true,
		build: func(lanes int) kernel {
			gt := lut.Gamma()
			if lanes == 0 {
				return func(in, out []byte) { fromLinearAlphaUQ15(gt, asUint16(in), out) }
			}
			return func(in, out []byte) { fromLinearAlphaUQ15Vec(gt, asUint16(in), out) }
		},
	},
	{Float, Byte, Opaque, FromLinear}: {
		srcUnit: 4, dstUnit: 1, vector: true, wide: true,
		build: func(lanes int) kernel {
			gt := lut.Gamma()
			if lanes == 0 {
				return func(in, out []byte) { fromLinearOpaqueFloat(gt, asFloat32(in), out) }
			}
			return func(in, out []byte) { fromLinearOpaqueFloatVec(gt, asFloat32(in), out, lanes) }
		},
	},
	{Float, Byte, Alpha, FromLinear}: {
		srcUnit: 16, dstUnit: 4, vector: true,
		build: func(lanes int) kernel {
			gt := lut.Gamma()
			if lanes == 0 {
				return func(in, out []byte) { fromLinearAlphaFloat(gt, asFloat32(in), out) }
			}
			return func(in, out []byte) { fromLinearAlphaFloatVec(gt, asFloat32(in), out) }
		},
	},
	{Float, Byte, Pad, FromLinear}: {
		srcUnit: 16, dstUnit: 3, vector: true, wide: true,
		build: func(lanes int) kernel {
			gt := lut.Gamma()
			if lanes == 0 {
				return func(in, out []byte) { fromLinearPad(gt, asFloat32(in), out) }
			}
			return func(in, out []byte) { fromLinearPadVec(gt, asFloat32(in), out, lanes) }
		},
	},
	{Float, Float, Opaque, FromLinear}: {
		srcUnit: 4, dstUnit: 4, vector: true, wide: true,
		build: func(lanes int) kernel { return interpOpaqueKernel(lut.GammaInterp(), lanes) },
	},
	{Float, Float, Alpha, FromLinear}: {
		srcUnit: 16, dstUnit: 16, vector: true,
		build: func(lanes int) kernel { return interpAlphaKernel(lut.GammaInterp(), lanes) },
	},
}

func interpOpaqueKernel(tbl *[lut.InterpScale + 2]float32, lanes int) kernel {
	if lanes == 0 {
		return func(in, out []byte) { interpOpaque(tbl, asFloat32(in), asFloat32(out)) }
	}
	return func(in, out []byte) { interpOpaqueVec(tbl, asFloat32(in), asFloat32(out), lanes) }
}

func interpAlphaKernel(tbl *[lut.InterpScale + 2]float32, lanes int) kernel {
	if lanes == 0 {
		return func(in, out []byte) { interpAlpha(tbl, asFloat32(in), asFloat32(out)) }
	}
	return func(in, out []byte) { interpAlphaVec(tbl, asFloat32(in), asFloat32(out)) }
}

// Keys returns every key with a kernel, in no particular order.
func Keys() []Key {
	keys := make([]Key, 0, len(kernels))
	for k := range kernels {
		keys = append(keys, k)
	}
	return keys
}
