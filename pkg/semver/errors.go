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

import "fmt"

// Part identifies the grammar part a parse failure was detected in.
type Part string

const (
	// PartMajor is the <major> version number.
	PartMajor Part = "Major"
	// PartMinor is the <minor> version number.
	PartMinor Part = "Minor"
	// PartPatch is the <patch> version number.
	PartPatch Part = "Patch"
	// PartVersionNumber is the <major>.<minor>.<patch> version core.
	PartVersionNumber Part = "VersionNumber"
	// PartPreRelease is the pre-release section following "-".
	PartPreRelease Part = "PreRelease"
	// PartPrereleaseOrBuild is the undifferentiated remainder after the
	// version core, before it is known to be pre-release or build.
	PartPrereleaseOrBuild Part = "PrereleaseOrBuild"
	// PartBuild is the build metadata section following "+".
	PartBuild Part = "Build"
	// PartNumericIdentifier is a single numeric identifier.
	PartNumericIdentifier Part = "NumericIdentifier"
	// PartAlphaNumericIdentifier is a single alphanumeric identifier.
	PartAlphaNumericIdentifier Part = "AlphaNumericIdentifier"
	// PartOther is used when no specific grammar part applies.
	PartOther Part = "Other"
)

// Reason classifies why a grammar part failed to parse.
type Reason string

const (
	// ReasonInvalidChar indicates a character that is illegal in the part;
	// the offending character is carried in ParseError.Char.
	ReasonInvalidChar Reason = "INVALID_CHAR"
	// ReasonInvalidPattern indicates the part does not match its grammar.
	ReasonInvalidPattern Reason = "INVALID_PATTERN"
	// ReasonNonASCIIAlphaNum indicates a string containing characters
	// outside the ASCII alpha-numeric identifier alphabet; the offending
	// text is carried in ParseError.Text.
	ReasonNonASCIIAlphaNum Reason = "NON_ASCII_ALPHA_NUMERIC"
	// ReasonLeadingZero indicates a numeric identifier with a leading zero,
	// rejected in strict mode.
	ReasonLeadingZero Reason = "LEADING_ZERO"
)

// ParseError describes a version parse failure: the grammar part the
// failure was detected in and the reason the part was rejected.
// It is returned by every fallible operation in this package.
type ParseError struct {
	Part   Part
	Reason Reason

	// Char is the offending character for ReasonInvalidChar.
	Char rune
	// Text is the offending text for ReasonNonASCIIAlphaNum.
	Text string
}

// Error implements the error interface. The part is omitted when it is
// PartOther.
func (e *ParseError) Error() string {
	if e.Part == PartOther {
		return e.reason()
	}
	return fmt.Sprintf("%s in part %s", e.reason(), e.Part)
}

func (e *ParseError) reason() string {
	switch e.Reason {
	case ReasonInvalidChar:
		return fmt.Sprintf("invalid character %q found", e.Char)
	case ReasonNonASCIIAlphaNum:
		return fmt.Sprintf("non ASCII alpha-numeric character '%s' found", e.Text)
	case ReasonLeadingZero:
		return "number identifier should not have leading zero"
	default:
		return "invalid pattern"
	}
}

func newParseError(part Part, reason Reason) *ParseError {
	return &ParseError{Part: part, Reason: reason}
}

func invalidCharError(part Part, c rune) *ParseError {
	return &ParseError{Part: part, Reason: ReasonInvalidChar, Char: c}
}

func nonASCIIError(part Part, text string) *ParseError {
	return &ParseError{Part: part, Reason: ReasonNonASCIIAlphaNum, Text: text}
}
