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

// Package semver parses, formats, and compares Semantic Versioning 2.0.0
// versions (https://semver.org).
//
// Parsing comes in two modes. Strict mode enforces the full grammar,
// including the no-leading-zero rule for numeric identifiers. Lenient mode
// relaxes that rule, accepting versions such as "1.08.2" that real-world
// package metadata often contains. Both modes reject anything that is not
// three dot-separated numbers with optional pre-release and build sections.
//
// Precedence follows the SemVer rules: build metadata never participates in
// Compare. Structural equality is a separate operation; Equal does include
// build metadata, so two Compare-equal versions can still be unequal.
//
// Every parse failure is reported as a *ParseError carrying the grammar
// part and the reason, so callers can distinguish, say, a leading zero in
// the version core from an illegal character in a pre-release identifier.
package semver
