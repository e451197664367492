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

package text

// IsASCIINumeric reports whether every character in s is an ASCII digit.
// The empty string is vacuously numeric.
func IsASCIINumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsASCIIAlphabetic reports whether every character in s is an ASCII letter.
func IsASCIIAlphabetic(s string) bool {
	for _, r := range s {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

// IsASCIIAlphanumeric reports whether every character in s is an ASCII
// letter or digit. Full-width digits and letters do not qualify.
func IsASCIIAlphanumeric(s string) bool {
	for _, r := range s {
		if !isASCIIAlphanumericRune(r) {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIAlphanumericRune(r rune) bool {
	return (r >= '0' && r <= '9') || isASCIILetter(r)
}
