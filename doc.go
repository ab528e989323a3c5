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

// Package pixelconv is the pixel-format conversion core of an image
// pipeline. It converts scanlines between companded (gamma-encoded) and
// linear light, and between 8-bit integer, Q15 fixed-point and float32
// samples.
//
// The work is split across sub-packages:
//
//   - hwy: runtime SIMD tier detection and portable vector primitives.
//   - pixfmt: pixel format descriptions and the format registry.
//   - lut: gamma, inverse-gamma and alpha lookup tables.
//   - convert: per-scanline conversion processors.
//
// Typical usage:
//
//	reg := pixfmt.NewRegistry()
//	src, _ := reg.ByIdentifier(pixfmt.Bgra32bpp)
//	p, err := convert.ForFormats(src, pixfmt.Pbgra64BppLinearUQ15)
//	if err != nil {
//	    return err
//	}
//	for each row {
//	    p.ConvertScanline(in, out, len(in))
//	}
//
// This package itself only holds the shared logger.
package pixelconv
