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

package uid

import (
	"strings"

	"github.com/google/uuid"
)

// NewV4 returns a new random (version 4) UUID in the canonical lower case
// form, e.g. "123e4567-e89b-42d3-a456-426655440000".
func NewV4() string {
	return uuid.NewString()
}

// NewV4Upper returns a new random (version 4) UUID in upper case.
func NewV4Upper() string {
	return strings.ToUpper(uuid.NewString())
}

// NewV4URN returns a new random (version 4) UUID in URN form,
// e.g. "urn:uuid:123e4567-e89b-42d3-a456-426655440000".
func NewV4URN() string {
	return uuid.New().URN()
}

// Parse parses a UUID from its string form. It accepts the canonical
// hyphenated form, the URN form, the braced Microsoft form, and the plain
// 32-digit hex form.
func Parse(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
