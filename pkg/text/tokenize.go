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

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// TokenizeAlphaNum splits s into ASCII alpha-numeric tokens.
// Characters other than ASCII letters and digits are treated as separators,
// and tokens additionally split on case change: each token matches
// [A-Z]*[a-z]*[0-9]* and is never empty.
//
// Example: "Powered by RustLang version1.65.0." is tokenized to
// ["Powered", "by", "Rust", "Lang", "version1", "65", "0"].
func TokenizeAlphaNum(s string) []string {
	var tokens []string
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if !isASCIIAlphanumericRune(runes[i]) {
			i++
			continue
		}
		start := i
		for i < len(runes) && runes[i] >= 'A' && runes[i] <= 'Z' {
			i++
		}
		for i < len(runes) && runes[i] >= 'a' && runes[i] <= 'z' {
			i++
		}
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}
	return tokens
}

// TokenizeAlphaNumUpper tokenizes like TokenizeAlphaNum, then upper-cases
// every token. Example: "Powered by RustLang" -> ["POWERED", "BY", "RUST", "LANG"].
func TokenizeAlphaNumUpper(s string) []string {
	tokens := TokenizeAlphaNum(s)
	for i, t := range tokens {
		tokens[i] = strings.ToUpper(t)
	}
	return tokens
}

// TokenizeAlphaNumTitle tokenizes like TokenizeAlphaNum, then title-cases
// every token (first character upper, the rest lower).
// Example: "Powered by RustLang" -> ["Powered", "By", "Rust", "Lang"].
func TokenizeAlphaNumTitle(s string) []string {
	tokens := TokenizeAlphaNum(s)
	for i, t := range tokens {
		tokens[i] = titleCaser.String(t)
	}
	return tokens
}

// TokenizeAlphaNumLower tokenizes like TokenizeAlphaNum, then lower-cases
// every token. Example: "Powered by RustLang" -> ["powered", "by", "rust", "lang"].
func TokenizeAlphaNumLower(s string) []string {
	tokens := TokenizeAlphaNum(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}
