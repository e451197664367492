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

// Package text provides string utilities that operate on codepoint offsets
// rather than byte offsets, plus ASCII classification, tokenizing, and
// naming-pattern conversions.
//
// The substring functions are safe to use on strings containing multi-byte
// UTF-8 sequences: offsets always count codepoints, so a slice never splits
// a character in half.
//
// The tokenizer splits on case change and on runs of non-alphanumeric
// characters, which makes it suitable for converting free-form labels into
// CamelCase, kebab-case, or snake_case identifiers:
//
//	text.ToKebab("Powered by RustLang")       // "powered-by-rust-lang"
//	text.ToUpperCamel("snake case")           // "SnakeCase"
//	text.ToScreamingSnake("Kebab case")       // "KEBAB_CASE"
package text
