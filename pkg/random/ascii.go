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

package random

import (
	"crypto/rand"
	"io"
)

const (
	digits        = "0123456789"
	hexUpper      = digits + "ABCDEF"
	hexLower      = digits + "abcdef"
	alphabetUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphabetLower = "abcdefghijklmnopqrstuvwxyz"
	alphabetMixed = alphabetLower + alphabetUpper
)

// Next returns a random string of the given length drawn from the given
// alphabet (maximum 256 bytes; anything beyond the 256th byte can never be
// selected and is ignored). A zero or negative length, or an empty alphabet,
// yields the empty string. Randomness comes from crypto/rand; bytes that
// would introduce modulo bias are discarded.
func Next(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}

	b := make([]byte, length)
	r := make([]byte, length+(length/4))

	clen := len(alphabet)
	if clen > 256 {
		clen = 256
	}
	// Largest byte value that keeps c%clen uniform.
	maxrb := 255 - (256 % clen)

	i := 0
	for {
		if _, err := io.ReadFull(rand.Reader, r); err != nil {
			// crypto/rand never fails on supported platforms.
			panic(err)
		}
		for _, c := range r {
			if int(c) > maxrb {
				// Skip this byte to avoid modulo bias.
				continue
			}
			b[i] = alphabet[int(c)%clen]
			i++
			if i == length {
				return string(b)
			}
		}
	}
}

// NextNumeric returns a random string of ASCII digits.
func NextNumeric(length int) string {
	return Next(length, digits)
}

// NextHexUpper returns a random upper case hexadecimal string.
func NextHexUpper(length int) string {
	return Next(length, hexUpper)
}

// NextHexLower returns a random lower case hexadecimal string.
func NextHexLower(length int) string {
	return Next(length, hexLower)
}

// NextAlphabetUpper returns a random upper case alphabetic string.
func NextAlphabetUpper(length int) string {
	return Next(length, alphabetUpper)
}

// NextAlphabetLower returns a random lower case alphabetic string.
func NextAlphabetLower(length int) string {
	return Next(length, alphabetLower)
}

// NextAlphabetMixed returns a random mixed case alphabetic string.
func NextAlphabetMixed(length int) string {
	return Next(length, alphabetMixed)
}

// NextAlphaNumericUpper returns a random upper case alpha-numeric string.
func NextAlphaNumericUpper(length int) string {
	return Next(length, digits+alphabetUpper)
}

// NextAlphaNumericLower returns a random lower case alpha-numeric string.
func NextAlphaNumericLower(length int) string {
	return Next(length, digits+alphabetLower)
}

// NextAlphaNumericMixed returns a random mixed case alpha-numeric string.
func NextAlphaNumericMixed(length int) string {
	return Next(length, digits+alphabetMixed)
}
