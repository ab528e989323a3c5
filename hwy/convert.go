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

// ConvertTo converts every lane to type To. Float to integer conversion
// truncates toward zero; callers clamp first, out-of-range values are
// implementation-defined, as for plain Go conversions.
func ConvertTo[To, From Lanes](v Vec[From]) Vec[To] {
	r := Vec[To]{n: v.n}
	for i := range v.n {
		r.data[i] = To(v.data[i])
	}
	return r
}
