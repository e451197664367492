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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeAlphaNum(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "sentence with version",
			in:   "  Powered by RustLang version1.65.0",
			want: []string{"Powered", "by", "Rust", "Lang", "version1", "65", "0"},
		},
		{
			name: "upper case clusters",
			in:   "  X XX XXx XXxx X1 XX1 Xx1 Xxx1",
			want: []string{"X", "XX", "XXx", "XXxx", "X1", "XX1", "Xx1", "Xxx1"},
		},
		{
			name: "lower case runs",
			in:   "  x xx xx1 xx11",
			want: []string{"x", "xx", "xx1", "xx11"},
		},
		{
			name: "numeric only",
			in:   "  1 12 123",
			want: []string{"1", "12", "123"},
		},
		{
			name: "split after digits",
			in:   "Ver1b",
			want: []string{"Ver1", "b"},
		},
		{
			name: "digits attach to preceding word",
			in:   " RAMEN123 123RAMEN",
			want: []string{"RAMEN123", "123", "RAMEN"},
		},
		{
			name: "full-width characters dropped",
			in:   "  Somen ＲＡＭＥＮ１２３　１２３ＵＤＯＮ",
			want: []string{"Somen"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeAlphaNum(tt.in))
		})
	}
}

func TestTokenizeAlphaNumCased(t *testing.T) {
	in := "  Powered by RustLang version1.65.0"

	assert.Equal(t,
		[]string{"POWERED", "BY", "RUST", "LANG", "VERSION1", "65", "0"},
		TokenizeAlphaNumUpper(in))
	assert.Equal(t,
		[]string{"Powered", "By", "Rust", "Lang", "Version1", "65", "0"},
		TokenizeAlphaNumTitle(in))
	assert.Equal(t,
		[]string{"powered", "by", "rust", "lang", "version1", "65", "0"},
		TokenizeAlphaNumLower(in))
}

func TestIsASCIINumeric(t *testing.T) {
	assert.True(t, IsASCIINumeric("1234"))
	assert.True(t, IsASCIINumeric("0"))
	assert.False(t, IsASCIINumeric("abc"))
	assert.False(t, IsASCIINumeric("abc123"))
	assert.False(t, IsASCIINumeric("１２３")) // full-width digits
}

func TestIsASCIIAlphabetic(t *testing.T) {
	assert.True(t, IsASCIIAlphabetic("abc"))
	assert.True(t, IsASCIIAlphabetic("ABC"))
	assert.True(t, IsASCIIAlphabetic("aBC"))
	assert.False(t, IsASCIIAlphabetic("a123"))
	assert.False(t, IsASCIIAlphabetic("123"))
}

func TestIsASCIIAlphanumeric(t *testing.T) {
	assert.True(t, IsASCIIAlphanumeric("abc"))
	assert.True(t, IsASCIIAlphanumeric("a123"))
	assert.True(t, IsASCIIAlphanumeric("123"))
	assert.False(t, IsASCIIAlphanumeric("１２３"))
	assert.False(t, IsASCIIAlphanumeric("エービーシー"))
	assert.False(t, IsASCIIAlphanumeric("a-b"))
}
