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
	"strings"

	"github.com/NVIDIA/textkit/pkg/text"
)

// Build is the build metadata section of a version
// (e.g. "001", "20130313144700", "exp.sha.5114f85", "21AF26D3-117B344092BD").
// Build metadata never contributes to precedence, so Build has no Compare;
// it is comparison-neutral provenance only.
type Build struct {
	ids []string
}

// ParseBuild parses the build metadata section of a version:
//
//	<build> ::= <dot-separated build identifiers>
//
//	<dot-separated build identifiers> ::= <build identifier>
//	                                    | <build identifier> "." <dot-separated build identifiers>
//	<build identifier> ::= <alphanumeric identifier>
//	                     | <digits>
func ParseBuild(build string, strict bool) (*Build, error) {
	parts := strings.Split(build, ".")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		id, err := parseBuildIdentifier(p, strict)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return &Build{ids: ids}, nil
}

// parseBuildIdentifier accepts an alphanumeric identifier or a plain digit
// run. The <digits> alternative admits leading zeros even in strict mode.
// Identifiers are non-empty, so an empty split part is always rejected.
func parseBuildIdentifier(build string, strict bool) (string, error) {
	if build == "" {
		return "", newParseError(PartBuild, ReasonInvalidPattern)
	}
	if id, err := parseAlphanumericIdentifier(build, strict); err == nil {
		return id, nil
	}
	if text.IsASCIINumeric(build) {
		return build, nil
	}
	return "", newParseError(PartBuild, ReasonInvalidPattern)
}

// Identifiers returns a copy of the identifiers in input order.
func (b *Build) Identifiers() []string {
	return slices.Clone(b.ids)
}

// String joins the identifiers with ".".
func (b *Build) String() string {
	return strings.Join(b.ids, ".")
}

// Equal reports whether b and o hold the same identifiers in the same
// order. Two nil builds are equal.
func (b *Build) Equal(o *Build) bool {
	if b == nil || o == nil {
		return b == nil && o == nil
	}
	return slices.Equal(b.ids, o.ids)
}
