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

import "github.com/NVIDIA/textkit/pkg/text"

// <non-digit> ::= <letter> | "-"
func isNonDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-'
}

// <identifier character> ::= <digit> | <non-digit>
func isIdentifierChar(r rune) bool {
	return (r >= '0' && r <= '9') || isNonDigit(r)
}

// identifierRun returns the number of consecutive identifier characters in
// runes starting at offset start.
func identifierRun(runes []rune, start int) int {
	n := 0
	for i := start; i < len(runes); i++ {
		if !isIdentifierChar(runes[i]) {
			break
		}
		n++
	}
	return n
}

// parseNumericIdentifier validates s against the <numeric identifier>
// grammar:
//
//	<numeric identifier> ::= "0"
//	                       | <positive digit>
//	                       | <positive digit> <digits>
//
// In strict mode a leading zero is rejected unless the identifier is
// exactly "0". In lenient mode any all-digit string is accepted.
func parseNumericIdentifier(s string, strict bool) (string, error) {
	if !strict {
		if text.IsASCIINumeric(s) {
			return s, nil
		}
		return "", nonASCIIError(PartNumericIdentifier, s)
	}

	if s == "0" {
		return s, nil
	}
	runes := []rune(s)
	if len(runes) == 0 {
		return "", newParseError(PartNumericIdentifier, ReasonInvalidPattern)
	}
	if runes[0] == '0' {
		return "", newParseError(PartNumericIdentifier, ReasonLeadingZero)
	}
	for _, r := range runes {
		if r < '0' || r > '9' {
			return "", invalidCharError(PartNumericIdentifier, r)
		}
	}
	return s, nil
}

// parseAlphanumericIdentifier validates s against the <alphanumeric
// identifier> grammar:
//
//	<alphanumeric identifier> ::= <non-digit>
//	                            | <non-digit> <identifier characters>
//	                            | <identifier characters> <non-digit>
//	                            | <identifier characters> <non-digit> <identifier characters>
//
// Validation locates the run of identifier characters from the start,
// finds where a non-digit occurs, and checks the full string is consumed.
// In lenient mode any string composed solely of identifier characters is
// accepted.
func parseAlphanumericIdentifier(s string, strict bool) (string, error) {
	runes := []rune(s)
	n := len(runes)

	if !strict {
		for _, r := range runes {
			if !isIdentifierChar(r) {
				return "", nonASCIIError(PartAlphaNumericIdentifier, s)
			}
		}
		return s, nil
	}

	if n > 0 && isNonDigit(runes[0]) {
		// <non-digit> or <non-digit> <identifier characters>
		if 1+identifierRun(runes, 1) == n {
			return s, nil
		}
		return "", newParseError(PartAlphaNumericIdentifier, ReasonInvalidPattern)
	}

	// <identifier characters> <non-digit> [<identifier characters>]
	run1 := identifierRun(runes, 0)
	if run1 == 0 {
		return "", newParseError(PartAlphaNumericIdentifier, ReasonInvalidPattern)
	}
	if run1 < n && isNonDigit(runes[run1]) {
		if run1+1 == n || run1+1+identifierRun(runes, run1+1) == n {
			return s, nil
		}
	}
	return "", newParseError(PartAlphaNumericIdentifier, ReasonInvalidPattern)
}
