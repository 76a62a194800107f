// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package utf8x

import (
	"testing"
	"unicode/utf8"
)

func TestEncodeRune(t *testing.T) {
	var buf [4]byte

	if n, ok := EncodeRune(buf[:2], '€'); ok || n != 0 {
		t.Error(n, ok)
	}
	if buf != [4]byte{} {
		t.Error("partial write", buf)
	}

	if n, ok := EncodeRune(buf[:3], '€'); !ok || n != 3 || string(buf[:3]) != "€" {
		t.Error(n, ok, buf)
	}

	if n, ok := EncodeRune(buf[:], 0xd800); !ok || n != 3 {
		t.Error(n, ok)
	} else if r, _ := utf8.DecodeRune(buf[:n]); r != utf8.RuneError {
		t.Error(r)
	}

	if n := RuneLen(-1); n != 3 {
		t.Error(n)
	}
}

func TestIsBoundary(t *testing.T) {
	b := []byte("a€b")

	for i, expect := range []bool{true, true, false, false, true, true} {
		if IsBoundary(b, i) != expect {
			t.Error(i)
		}
	}
	if IsBoundary(b, 6) || IsBoundary(b, -1) {
		t.Error("out of range")
	}
}

func TestValidPrefix(t *testing.T) {
	b := []byte("a€b")

	for n, expect := range []int{0, 1, 1, 1, 4, 5, 5} {
		if x := ValidPrefix(b, n); x != expect {
			t.Errorf("%d: %d", n, x)
		}
	}
}
