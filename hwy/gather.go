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

// GatherIndex loads elements from non-contiguous memory locations specified by indices.
// For each lane i in the index vector, it loads table[indices[i]].
// If an index is out of bounds (negative or >= len(table)), the result for that lane is zero.
func GatherIndex[T Lanes, I ~int32 | ~uint32](table []T, indices Vec[I]) Vec[T] {
	r := Vec[T]{n: indices.n}
	for i := range indices.n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(table) {
			r.data[i] = table[idx]
		}
		// else: leave as zero value
	}
	return r
}
