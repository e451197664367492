// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package semver

import (
	"testing"
)

// FuzzParse performs fuzz testing on Parse to find edge cases
func FuzzParse(f *testing.F) {
	// Seed corpus with valid and edge case inputs
	f.Add("1.2.3")
	f.Add("0.0.0")
	f.Add("1.0.0-alpha")
	f.Add("1.0.0-alpha.1")
	f.Add("1.0.0-rc.1+build.1")
	f.Add("1.0.0+20130313144700")
	f.Add("18446744073709551615.0.0")
	f.Add("18446744073709551616.0.0")
	f.Add("")
	f.Add(".")
	f.Add("..")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("1.2")
	f.Add("1.2.3.4")
	f.Add("v1.2.3")
	f.Add("01.2.3")
	f.Add("1.2.3-")
	f.Add("1.2.3+")
	f.Add("1.2.3-+")
	f.Add("1.2.3-alpha..1")
	f.Add("1.2.3+béta")
	f.Add("   1.2.3")
	f.Add("1. 2.3")

	f.Fuzz(func(t *testing.T, input string) {
		for _, strict := range []bool{true, false} {
			// Parse should never panic
			v, err := Parse(input, strict)
			if err != nil {
				continue
			}

			// String() should not panic and must re-parse to an equal
			// version under the same strictness
			s := v.String()
			v2, err2 := Parse(s, strict)
			if err2 != nil {
				t.Errorf("re-parsing %q (from %q, strict=%v) failed: %v", s, input, strict, err2)
				continue
			}
			if !v.Equal(v2) {
				t.Errorf("round-trip mismatch for %q (strict=%v): %v != %v", input, strict, v, v2)
			}

			// Comparison methods should not panic and must be reflexive
			if v.Compare(v2) != 0 {
				t.Errorf("Compare(%q, %q) != 0", s, s)
			}
			ref := New(1, 2, 3)
			got := v.Compare(ref)
			if got != -ref.Compare(v) {
				t.Errorf("Compare not antisymmetric for %q", s)
			}
		}
	})
}
