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

//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Every ARMv8-A core has NEON with FMLA, but no kernel is compiled to
	// NEON instructions yet, so the scalar tier is the fastest one.
	currentLevel = DispatchScalar
	if NoSimdEnv() {
		return
	}
	hasFMA = cpu.ARM64.HasASIMD
}
