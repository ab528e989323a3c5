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

//go:build amd64

package hwy

// detectX86 maps x86 feature bits to a tier. avx2 must already account
// for OS support of the YMM state.
func detectX86(sse2, avx2, fma, noWide bool) (DispatchLevel, bool) {
	switch {
	case avx2 && !noWide:
		return DispatchAVX2, fma
	case sse2:
		// SSE2 is baseline for amd64
		return DispatchSSE2, false
	default:
		return DispatchScalar, false
	}
}
