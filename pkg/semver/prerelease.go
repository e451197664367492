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
	"slices"
	"strconv"
	"strings"
)

// PreRelease is the dot-separated pre-release section of a version
// (e.g. "alpha", "alpha.1", "beta.2"). Identifiers are kept in input order,
// as parsed, and the value is immutable once constructed.
type PreRelease struct {
	ids []string
}

// ParsePreRelease parses the pre-release section of a version:
//
//	<pre-release> ::= <dot-separated pre-release identifiers>
//
//	<dot-separated pre-release identifiers> ::= <pre-release identifier>
//	                                          | <pre-release identifier> "." <dot-separated pre-release identifiers>
//	<pre-release identifier> ::= <alphanumeric identifier>
//	                           | <numeric identifier>
func ParsePreRelease(pre string, strict bool) (*PreRelease, error) {
	parts := strings.Split(pre, ".")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id, err := parsePreReleaseIdentifier(p, strict)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return &PreRelease{ids: ids}, nil
}

// parsePreReleaseIdentifier accepts an identifier matching either the
// alphanumeric or the numeric grammar, trying alphanumeric first.
// Identifiers are non-empty, so an empty split part is always rejected.
func parsePreReleaseIdentifier(pre string, strict bool) (string, error) {
	if pre == "" {
		return "", newParseError(PartPreRelease, ReasonInvalidPattern)
	}
	if id, err := parseAlphanumericIdentifier(pre, strict); err == nil {
		return id, nil
	}
	if id, err := parseNumericIdentifier(pre, strict); err == nil {
		return id, nil
	}
	return "", newParseError(PartPreRelease, ReasonInvalidPattern)
}

// Identifiers returns a copy of the identifiers in input order.
func (p *PreRelease) Identifiers() []string {
	return slices.Clone(p.ids)
}

// String joins the identifiers with ".".
func (p *PreRelease) String() string {
	return strings.Join(p.ids, ".")
}

// Equal reports whether p and o hold the same identifiers in the same
// order. Two nil pre-releases are equal.
func (p *PreRelease) Equal(o *PreRelease) bool {
	if p == nil || o == nil {
		return p == nil && o == nil
	}
	return slices.Equal(p.ids, o.ids)
}

// Compare returns -1, 0, or 1 ordering p against o by pre-release
// precedence:
//
//  1. Identifiers consisting of only digits are compared numerically.
//  2. Identifiers with letters or hyphens are compared lexically in ASCII
//     sort order.
//  3. Numeric identifiers always have lower precedence than non-numeric
//     identifiers.
//  4. A larger set of pre-release fields has a higher precedence than a
//     smaller set, if all of the preceding identifiers are equal.
//
// A nil pre-release sorts above any non-nil one, matching version
// precedence where a release outranks its pre-releases. Two nil
// pre-releases compare equal.
//
// Example: alpha < alpha.1 < alpha.beta < beta < beta.2 < beta.11 < rc.1.
func (p *PreRelease) Compare(o *PreRelease) int {
	switch {
	case p == nil && o == nil:
		return 0
	case p == nil:
		return 1
	case o == nil:
		return -1
	}
	for i, x := range p.ids {
		if i >= len(o.ids) {
			return 1
		}
		if c := comparePreReleaseIdentifier(x, o.ids[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.ids) == len(o.ids):
		return 0
	case len(p.ids) < len(o.ids):
		return -1
	default:
		return 1
	}
}

// comparePreReleaseIdentifier orders two identifiers, re-deriving the
// numeric/alphanumeric classification on demand. An all-digit identifier
// that overflows the 64-bit range is treated as non-numeric.
func comparePreReleaseIdentifier(x, y string) int {
	nx, errX := strconv.ParseUint(x, 10, 64)
	ny, errY := strconv.ParseUint(y, 10, 64)
	switch {
	case errX == nil && errY == nil:
		switch {
		case nx < ny:
			return -1
		case nx > ny:
			return 1
		default:
			return 0
		}
	case errX == nil:
		return -1
	case errY == nil:
		return 1
	default:
		return strings.Compare(x, y)
	}
}
