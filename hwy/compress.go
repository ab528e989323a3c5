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

// MaskStore writes only the active lanes of v to the same positions of dst.
// Inactive positions of dst are left untouched.
func MaskStore[T Lanes](m Mask, v Vec[T], dst []T) {
	n := min(v.n, len(dst))
	for i := range n {
		if m.GetBit(i) {
			dst[i] = v.data[i]
		}
	}
}

// CompressStore packs the active lanes of v to the front of dst and
// returns how many were written.
// For example: v=[1,2,3,4], mask=0b0101 -> dst=[1,3], count=2
func CompressStore[T Lanes](v Vec[T], m Mask, dst []T) int {
	count := 0
	for i := range v.n {
		if m.GetBit(i) {
			if count < len(dst) {
				dst[count] = v.data[i]
			}
			count++
		}
	}
	return min(count, len(dst))
}
