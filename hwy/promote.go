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

package hwy

// Concrete widening conversions. Go generics cannot express "To is wider
// than From", so the widening pairs the kernels need are spelled out.

// PromoteU8ToI32 zero-extends byte lanes to int32, the index type used by
// GatherIndex.
func PromoteU8ToI32(v Vec[uint8]) Vec[int32] {
	r := Vec[int32]{n: v.n}
	for i := range v.n {
		r.data[i] = int32(v.data[i])
	}
	return r
}

// PromoteU16ToU32 zero-extends uint16 lanes to uint32 so products of two
// Q15 values do not overflow.
func PromoteU16ToU32(v Vec[uint16]) Vec[uint32] {
	r := Vec[uint32]{n: v.n}
	for i := range v.n {
		r.data[i] = uint32(v.data[i])
	}
	return r
}

// DemoteU32ToU16 narrows uint32 lanes to uint16, saturating at 0xFFFF.
func DemoteU32ToU16(v Vec[uint32]) Vec[uint16] {
	r := Vec[uint16]{n: v.n}
	for i := range v.n {
		r.data[i] = uint16(min(v.data[i], 0xFFFF))
	}
	return r
}
