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

package text

import "strings"

// Naming-pattern conversions. All of these tokenize the input with
// TokenizeAlphaNum, so characters other than ASCII letters and digits are
// dropped, and an input with no ASCII alpha-numeric characters converts to
// the empty string.

// ToUpperCamel converts s to CamelCase with an upper-case first character.
// Example: "camel case" -> "CamelCase".
func ToUpperCamel(s string) string {
	return strings.Join(TokenizeAlphaNumTitle(s), "")
}

// ToLowerCamel converts s to camelCase with a lower-case first character.
// Example: "camel case" -> "camelCase".
func ToLowerCamel(s string) string {
	camel := ToUpperCamel(s)
	if camel == "" {
		return ""
	}
	runes := []rune(camel)
	return strings.ToLower(string(runes[0])) + string(runes[1:])
}

// ToKebab converts s to kebab-case. Example: "Kebab case" -> "kebab-case".
func ToKebab(s string) string {
	return strings.Join(TokenizeAlphaNumLower(s), "-")
}

// ToTitleKebab converts s to Kebab-Case with title-cased tokens.
// Example: "kebab case" -> "Kebab-Case".
func ToTitleKebab(s string) string {
	return strings.Join(TokenizeAlphaNumTitle(s), "-")
}

// ToScreamingKebab converts s to KEBAB-CASE with upper-cased tokens.
// Example: "Kebab case" -> "KEBAB-CASE".
func ToScreamingKebab(s string) string {
	return strings.Join(TokenizeAlphaNumUpper(s), "-")
}

// ToSnake converts s to snake_case. Example: "Snake case" -> "snake_case".
func ToSnake(s string) string {
	return strings.Join(TokenizeAlphaNumLower(s), "_")
}

// ToTitleSnake converts s to Snake_Case with title-cased tokens.
// Example: "snake case" -> "Snake_Case".
func ToTitleSnake(s string) string {
	return strings.Join(TokenizeAlphaNumTitle(s), "_")
}

// ToScreamingSnake converts s to SNAKE_CASE with upper-cased tokens.
// Example: "Snake case" -> "SNAKE_CASE".
func ToScreamingSnake(s string) string {
	return strings.Join(TokenizeAlphaNumUpper(s), "_")
}
