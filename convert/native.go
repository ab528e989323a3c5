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

import "github.com/ajroetker/go-pixelconv/hwy"

// nativeKernel is a kernel compiled to the vector instructions of one tier.
type nativeKernel struct {
	level hwy.DispatchLevel
	fma   bool // uses hardware fused multiply-add
	build func() kernel
}

// natives holds the compiled kernels of this build, filled by init() in
// kernels_*.go files. It stays empty without GOEXPERIMENT=simd.
var natives = map[Key]nativeKernel{}

// selectNative returns the compiled kernel for key when the processor
// runs its tier and has the features it needs.
func selectNative(key Key, level hwy.DispatchLevel, fma bool) (nativeKernel, bool) {
	nk, ok := natives[key]
	if !ok || nk.level != level || (nk.fma && !fma) {
		return nativeKernel{}, false
	}
	return nk, true
}

// NativeKeys returns the keys with a compiled kernel in this build, in no
// particular order.
func NativeKeys() []Key {
	keys := make([]Key, 0, len(natives))
	for k := range natives {
		keys = append(keys, k)
	}
	return keys
}
