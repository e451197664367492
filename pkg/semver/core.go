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
	"errors"
	"strconv"

	"github.com/NVIDIA/textkit/pkg/text"
)

// runeIndexOf returns the codepoint offset of the first occurrence of c in
// runes at or after offset start, or -1 when absent.
func runeIndexOf(runes []rune, start int, c rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == c {
			return i
		}
	}
	return -1
}

// digitRun returns the number of consecutive ASCII digits in runes starting
// at offset start.
func digitRun(runes []rune, start int) int {
	n := 0
	for i := start; i < len(runes); i++ {
		if runes[i] < '0' || runes[i] > '9' {
			break
		}
		n++
	}
	return n
}

// parseCore parses the <version core> at the head of ver:
//
//	<version core> ::= <major> "." <minor> "." <patch>
//
//	<major> ::= <numeric identifier>
//	<minor> ::= <numeric identifier>
//	<patch> ::= <numeric identifier>
//
// It returns major, minor, patch, and the unparsed remainder following the
// patch digit run (hasRemainder is false when the input ends at the patch).
// All offsets are codepoint offsets; slicing goes through the codepoint-safe
// substring so a multi-byte character can never be split.
func parseCore(ver string, strict bool) (major, minor, patch uint64, remainder string, hasRemainder bool, err error) {
	runes := []rune(ver)

	posDot1 := runeIndexOf(runes, 0, '.')
	if posDot1 < 1 {
		return 0, 0, 0, "", false, newParseError(PartVersionNumber, ReasonInvalidPattern)
	}
	posDot2 := runeIndexOf(runes, posDot1+1, '.')
	if posDot2 < posDot1+2 {
		return 0, 0, 0, "", false, newParseError(PartVersionNumber, ReasonInvalidPattern)
	}

	patchStart := posDot2 + 1
	patchLen := digitRun(runes, patchStart)
	if patchLen == 0 {
		// Missing patch number, or the patch does not start with a digit.
		return 0, 0, 0, "", false, newParseError(PartVersionNumber, ReasonInvalidPattern)
	}

	partMajor, okMajor := text.Substring(ver, 0, posDot1)
	partMinor, okMinor := text.Substring(ver, posDot1+1, posDot2)
	partPatch, okPatch := text.Substring(ver, patchStart, patchStart+patchLen)
	if !okMajor || !okMinor || !okPatch {
		return 0, 0, 0, "", false, newParseError(PartVersionNumber, ReasonInvalidPattern)
	}

	if major, err = parseVersionNumber(partMajor, strict); err != nil {
		return 0, 0, 0, "", false, err
	}
	if minor, err = parseVersionNumber(partMinor, strict); err != nil {
		return 0, 0, 0, "", false, err
	}
	if patch, err = parseVersionNumber(partPatch, strict); err != nil {
		return 0, 0, 0, "", false, err
	}

	remainder, hasRemainder = text.SubstringToEnd(ver, patchStart+patchLen)
	return major, minor, patch, remainder, hasRemainder, nil
}

// parseVersionNumber validates one version-core number against the numeric
// identifier grammar and converts it to an unsigned integer. Failures are
// reported against the VersionNumber part, with the validator's reason
// preserved.
func parseVersionNumber(s string, strict bool) (uint64, error) {
	if _, err := parseNumericIdentifier(s, strict); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return 0, &ParseError{Part: PartVersionNumber, Reason: pe.Reason, Char: pe.Char, Text: pe.Text}
		}
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		// Overflow of the 64-bit range.
		return 0, newParseError(PartVersionNumber, ReasonInvalidPattern)
	}
	return n, nil
}
