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

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/textkit/pkg/errors"
	"github.com/NVIDIA/textkit/pkg/semver"
)

// Reference represents a parsed container image reference.
type Reference struct {
	// Registry is the registry host (e.g., "docker.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "nvidia/cuda").
	Repository string
	// Tag is the image tag (e.g., "v1.0.0").
	// Empty string means no tag was specified.
	Tag string
	// Digest is the content digest when the reference is digested
	// (e.g., "sha256:..."). Empty when absent.
	Digest string
}

// ParseReference parses a container image reference and extracts its
// components. Short references are normalized the way Docker does
// ("cuda:12.4" becomes "docker.io/library/cuda:12.4").
func ParseReference(image string) (*Reference, error) {
	ref, err := reference.ParseNormalizedNamed(strings.TrimSpace(image))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, "invalid image reference", err)
	}

	r := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	if digested, ok := ref.(reference.Digested); ok {
		r.Digest = digested.Digest().String()
	}
	return r, nil
}

// String returns the image reference without digest:
// "registry/repository:tag" (or without tag if empty).
func (r *Reference) String() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the specified tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
		Digest:     r.Digest,
	}
}

// TagVersion interprets the reference tag as a semantic version. A single
// leading "v" is tolerated ("v1.2.3" parses as "1.2.3"); parsing is lenient
// because registry tags routinely carry leading zeros.
func (r *Reference) TagVersion() (semver.Version, error) {
	if r.Tag == "" {
		return semver.Version{}, apperrors.New(apperrors.ErrCodeNotFound, "reference has no tag")
	}
	tag := strings.TrimPrefix(r.Tag, "v")
	v, err := semver.Parse(tag, false)
	if err != nil {
		return semver.Version{}, apperrors.WrapWithContext(
			apperrors.ErrCodeInvalidInput,
			"tag is not a semantic version",
			err,
			map[string]any{"tag": r.Tag},
		)
	}
	return v, nil
}

// TagVersionOrZero interprets the reference tag as a semantic version,
// returning the zero version when the tag is absent or unparsable.
func (r *Reference) TagVersionOrZero() semver.Version {
	v, err := r.TagVersion()
	if err != nil {
		return semver.Zero()
	}
	return v
}
