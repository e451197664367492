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

// Substring returns the part of s spanning the codepoint offsets
// [start, end), and reports whether the range is valid.
// The range is invalid when end <= start, either offset is negative,
// or end exceeds the number of codepoints in s.
func Substring(s string, start, end int) (string, bool) {
	if start < 0 || end <= start {
		return "", false
	}
	runes := []rune(s)
	if len(runes) < end {
		return "", false
	}
	return string(runes[start:end]), true
}

// SubstringToEnd returns the part of s from the codepoint offset start to
// the end of the string, and reports whether the range is valid.
// The range is invalid when start is negative or start is at or past the
// end of s; the result is therefore never empty when ok is true.
func SubstringToEnd(s string, start int) (string, bool) {
	if start < 0 {
		return "", false
	}
	runes := []rune(s)
	if len(runes) <= start {
		return "", false
	}
	return string(runes[start:]), true
}

// CountChar returns the number of occurrences of c in s.
func CountChar(s string, c rune) int {
	n := 0
	for _, r := range s {
		if r == c {
			n++
		}
	}
	return n
}
