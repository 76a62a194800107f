// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package utf8x contains the UTF-8 routines which the string container
// needs on top of unicode/utf8.
package utf8x

import (
	"unicode/utf8"
)

// EncodeRune writes the encoding of r to dst if it fits.  Nothing is written
// if it doesn't.  Invalid runes are encoded as utf8.RuneError.
func EncodeRune(dst []byte, r rune) (n int, ok bool) {
	size := utf8.RuneLen(r)
	if size < 0 {
		r = utf8.RuneError
		size = utf8.RuneLen(r)
	}
	if size > len(dst) {
		return 0, false
	}
	return utf8.EncodeRune(dst, r), true
}

// RuneLen is like utf8.RuneLen, but reports the length of the encoding which
// EncodeRune would produce for invalid runes.
func RuneLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// IsBoundary reports whether i is at the start of a character in b, or at
// its end.  b must be valid UTF-8.
func IsBoundary(b []byte, i int) bool {
	switch {
	case i == 0 || i == len(b):
		return true
	case i < 0 || i > len(b):
		return false
	default:
		return utf8.RuneStart(b[i])
	}
}

// ValidPrefix returns the length of the longest prefix of b which ends at a
// character boundary and is at most n bytes long.  b must be valid UTF-8.
func ValidPrefix(b []byte, n int) int {
	if n >= len(b) {
		return len(b)
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return n
}
