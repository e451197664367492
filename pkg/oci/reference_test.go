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
	"errors"
	"testing"

	apperrors "github.com/NVIDIA/textkit/pkg/errors"
	"github.com/NVIDIA/textkit/pkg/semver"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantReg    string
		wantRepo   string
		wantTag    string
		wantDigest bool
		wantErr    bool
	}{
		{
			name:     "full reference with tag",
			input:    "ghcr.io/nvidia/cuda:v12.4.1",
			wantReg:  "ghcr.io",
			wantRepo: "nvidia/cuda",
			wantTag:  "v12.4.1",
		},
		{
			name:     "short reference normalized to docker.io",
			input:    "cuda:12.4",
			wantReg:  "docker.io",
			wantRepo: "library/cuda",
			wantTag:  "12.4",
		},
		{
			name:     "registry with port",
			input:    "localhost:5000/test/image:v1",
			wantReg:  "localhost:5000",
			wantRepo: "test/image",
			wantTag:  "v1",
		},
		{
			name:     "no tag",
			input:    "ghcr.io/nvidia/cuda",
			wantReg:  "ghcr.io",
			wantRepo: "nvidia/cuda",
			wantTag:  "",
		},
		{
			name:     "deeply nested repository",
			input:    "ghcr.io/org/team/project/image:latest",
			wantReg:  "ghcr.io",
			wantRepo: "org/team/project/image",
			wantTag:  "latest",
		},
		{
			name:       "digested reference",
			input:      "ghcr.io/nvidia/cuda@sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			wantReg:    "ghcr.io",
			wantRepo:   "nvidia/cuda",
			wantDigest: true,
		},
		{
			name:    "empty reference",
			input:   "",
			wantErr: true,
		},
		{
			name:    "uppercase repository",
			input:   "ghcr.io/INVALID/Image:v1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseReference() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var se *apperrors.StructuredError
				if !errors.As(err, &se) {
					t.Errorf("error is %T, want *StructuredError", err)
				}
				return
			}

			if ref.Registry != tt.wantReg {
				t.Errorf("Registry = %v, want %v", ref.Registry, tt.wantReg)
			}
			if ref.Repository != tt.wantRepo {
				t.Errorf("Repository = %v, want %v", ref.Repository, tt.wantRepo)
			}
			if ref.Tag != tt.wantTag {
				t.Errorf("Tag = %v, want %v", ref.Tag, tt.wantTag)
			}
			if (ref.Digest != "") != tt.wantDigest {
				t.Errorf("Digest = %q, wantDigest %v", ref.Digest, tt.wantDigest)
			}
		})
	}
}

func TestReference_String(t *testing.T) {
	tests := []struct {
		name string
		ref  *Reference
		want string
	}{
		{
			name: "with tag",
			ref: &Reference{
				Registry:   "ghcr.io",
				Repository: "nvidia/cuda",
				Tag:        "v12.4.1",
			},
			want: "ghcr.io/nvidia/cuda:v12.4.1",
		},
		{
			name: "without tag",
			ref: &Reference{
				Registry:   "ghcr.io",
				Repository: "nvidia/cuda",
			},
			want: "ghcr.io/nvidia/cuda",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("Reference.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReference_WithTag(t *testing.T) {
	ref := &Reference{
		Registry:   "ghcr.io",
		Repository: "nvidia/cuda",
		Tag:        "v1.0.0",
	}

	tagged := ref.WithTag("v2.0.0")
	if tagged.Tag != "v2.0.0" {
		t.Errorf("WithTag() Tag = %v, want v2.0.0", tagged.Tag)
	}
	if ref.Tag != "v1.0.0" {
		t.Error("WithTag() modified original reference")
	}
}

func TestReference_TagVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "v-prefixed tag",
			input: "ghcr.io/nvidia/cuda:v12.4.1",
			want:  "12.4.1",
		},
		{
			name:  "plain tag",
			input: "ghcr.io/nvidia/cuda:12.4.1",
			want:  "12.4.1",
		},
		{
			name:  "tag with leading zeros parses leniently",
			input: "ghcr.io/nvidia/cuda:1.08.2",
			want:  "1.8.2",
		},
		{
			name:  "pre-release tag",
			input: "ghcr.io/nvidia/cuda:v2.0.0-rc.1",
			want:  "2.0.0-rc.1",
		},
		{
			name:    "non-version tag",
			input:   "ghcr.io/nvidia/cuda:latest",
			wantErr: true,
		},
		{
			name:    "no tag",
			input:   "ghcr.io/nvidia/cuda",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseReference(tt.input)
			if err != nil {
				t.Fatalf("ParseReference() failed: %v", err)
			}

			v, err := ref.TagVersion()
			if (err != nil) != tt.wantErr {
				t.Fatalf("TagVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := v.String(); got != tt.want {
				t.Errorf("TagVersion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReference_TagVersionOrZero(t *testing.T) {
	ref, err := ParseReference("ghcr.io/nvidia/cuda:latest")
	if err != nil {
		t.Fatalf("ParseReference() failed: %v", err)
	}
	if got := ref.TagVersionOrZero(); !got.Equal(semver.Zero()) {
		t.Errorf("TagVersionOrZero() = %v, want 0.0.0", got)
	}

	ref, err = ParseReference("ghcr.io/nvidia/cuda:v1.2.3")
	if err != nil {
		t.Fatalf("ParseReference() failed: %v", err)
	}
	if got := ref.TagVersionOrZero(); !got.Equal(semver.New(1, 2, 3)) {
		t.Errorf("TagVersionOrZero() = %v, want 1.2.3", got)
	}
}
