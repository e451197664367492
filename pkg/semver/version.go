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
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/textkit/pkg/text"
)

// Version is a Semantic Versioning 2.0.0 version.
// See https://semver.org for the full specification.
//
// A Version is immutable once constructed: create one through Parse or the
// explicit constructors, never by mutating fields of an existing value.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	PreRelease *PreRelease
	Build      *Build
}

// Zero returns version 0.0.0 with no pre-release and no build metadata.
func Zero() Version {
	return Version{}
}

// New returns the given version with no pre-release and no build metadata.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse parses a version string:
//
//	<valid semver> ::= <version core>
//	                 | <version core> "-" <pre-release>
//	                 | <version core> "+" <build>
//	                 | <version core> "-" <pre-release> "+" <build>
//
// In strict mode numeric identifiers must not carry leading zeros; lenient
// mode accepts them. The returned error is always a *ParseError.
func Parse(ver string, strict bool) (Version, error) {
	major, minor, patch, remainder, hasRemainder, err := parseCore(ver, strict)
	if err != nil {
		return Version{}, err
	}
	v := Version{Major: major, Minor: minor, Patch: patch}
	if hasRemainder {
		v.PreRelease, v.Build, err = parsePreReleaseAndBuild(remainder, strict)
		if err != nil {
			return Version{}, err
		}
	}
	return v, nil
}

// MustParse parses a version string in strict mode and panics on failure.
// Only use this for hardcoded strings or in tests; for runtime data use
// Parse and handle the error explicitly.
func MustParse(ver string) Version {
	v, err := Parse(ver, true)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q): %v", ver, err))
	}
	return v
}

// ParseOr parses a version string leniently and returns the specified
// version when parsing fails. No diagnostic is retained.
func ParseOr(ver string, major, minor, patch uint64) Version {
	v, err := Parse(ver, false)
	if err != nil {
		return New(major, minor, patch)
	}
	return v
}

// ParseOrZero parses a version string leniently and returns the zero
// version when parsing fails.
func ParseOrZero(ver string) Version {
	return ParseOr(ver, 0, 0, 0)
}

// PackageVersion parses a build-supplied version string, typically injected
// at compile time. An empty string or unparsable input yields Zero.
func PackageVersion(ver string) Version {
	if ver == "" {
		return Zero()
	}
	return ParseOrZero(ver)
}

// parsePreReleaseAndBuild dispatches on the remainder following the version
// core: "-" starts a pre-release, "+" starts build metadata, and a "+"
// after "-" separates the two.
func parsePreReleaseAndBuild(remainder string, strict bool) (*PreRelease, *Build, error) {
	runes := []rune(remainder)
	if len(runes) == 0 {
		return nil, nil, newParseError(PartPrereleaseOrBuild, ReasonInvalidPattern)
	}
	posPlus := runeIndexOf(runes, 0, '+')

	switch {
	case runes[0] == '-' && posPlus >= 0:
		preText, okPre := text.Substring(remainder, 1, posPlus)
		buildText, okBuild := text.SubstringToEnd(remainder, posPlus+1)
		if !okPre || !okBuild {
			return nil, nil, newParseError(PartPrereleaseOrBuild, ReasonInvalidPattern)
		}
		pre, err := ParsePreRelease(preText, strict)
		if err != nil {
			return nil, nil, err
		}
		build, err := ParseBuild(buildText, strict)
		if err != nil {
			return nil, nil, err
		}
		return pre, build, nil

	case runes[0] == '-':
		preText, ok := text.SubstringToEnd(remainder, 1)
		if !ok {
			return nil, nil, newParseError(PartPreRelease, ReasonInvalidPattern)
		}
		pre, err := ParsePreRelease(preText, strict)
		if err != nil {
			return nil, nil, err
		}
		return pre, nil, nil

	case runes[0] == '+':
		buildText, ok := text.SubstringToEnd(remainder, posPlus+1)
		if !ok {
			return nil, nil, newParseError(PartBuild, ReasonInvalidPattern)
		}
		build, err := ParseBuild(buildText, strict)
		if err != nil {
			return nil, nil, err
		}
		return nil, build, nil

	default:
		return nil, nil, newParseError(PartPrereleaseOrBuild, ReasonInvalidPattern)
	}
}

// String returns the canonical form
// major.minor.patch[-prerelease][+build], omitting absent parts.
func (v Version) String() string {
	switch {
	case v.PreRelease != nil && v.Build != nil:
		return fmt.Sprintf("%d.%d.%d-%s+%s", v.Major, v.Minor, v.Patch, v.PreRelease, v.Build)
	case v.PreRelease != nil:
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.PreRelease)
	case v.Build != nil:
		return fmt.Sprintf("%d.%d.%d+%s", v.Major, v.Minor, v.Patch, v.Build)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Equal reports structural equality over all fields, build metadata
// included. Note the asymmetry with Compare, which excludes build metadata
// per the SemVer precedence rules: two versions differing only in build
// metadata are Compare-equal but not Equal.
func (v Version) Equal(o Version) bool {
	return v.Major == o.Major &&
		v.Minor == o.Minor &&
		v.Patch == o.Patch &&
		v.PreRelease.Equal(o.PreRelease) &&
		v.Build.Equal(o.Build)
}

// Compare returns -1, 0, or 1 ordering v against o by precedence: major,
// minor, and patch numerically, then pre-release (a version without a
// pre-release sorts higher than one with any pre-release). Build metadata
// is excluded.
func (v Version) Compare(o Version) int {
	if c := compareUint64(v.Major, o.Major); c != 0 {
		return c
	}
	if c := compareUint64(v.Minor, o.Minor); c != 0 {
		return c
	}
	if c := compareUint64(v.Patch, o.Patch); c != 0 {
		return c
	}
	switch {
	case v.PreRelease != nil && o.PreRelease != nil:
		return v.PreRelease.Compare(o.PreRelease)
	case v.PreRelease != nil:
		return -1
	case o.PreRelease != nil:
		return 1
	default:
		return 0
	}
}

func compareUint64(x, y uint64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// MarshalJSON encodes the version in its canonical string form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a version from its string form using lenient
// parsing.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s, false)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version in its canonical string form.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a version from its string form using lenient
// parsing.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s, false)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
