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

// Broadcast returns a vector with every lane set to lane i of v.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	return SetN(v.Lane(lane), v.n)
}

// TableLookupLanes selects lanes of tbl by index: result[i] = tbl[idx[i]].
// The result has as many lanes as idx. Out-of-range indices produce zero.
func TableLookupLanes[T Lanes](tbl Vec[T], idx Vec[int32]) Vec[T] {
	r := Vec[T]{n: idx.n}
	for i := range idx.n {
		j := int(idx.data[i])
		if j >= 0 && j < tbl.n {
			r.data[i] = tbl.data[j]
		}
	}
	return r
}
