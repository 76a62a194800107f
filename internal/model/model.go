// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model checks containers against reference implementations built on
// slices and strings.  Operations and their arguments are decoded from a byte
// string, so arbitrary input is a valid test case.
package model

import (
	"gate.computer/fixed"
	"gate.computer/fixed/internal/pan"
)

const (
	VectorCap = 13
	StringCap = 19
)

// Reader decodes operation arguments.  It yields zeros after the input has
// been consumed.
type Reader struct {
	data []byte
}

func NewReader(data []byte) *Reader {
	return &Reader{data}
}

func (r *Reader) More() bool {
	return len(r.data) > 0
}

func (r *Reader) Byte() (b byte) {
	if len(r.data) > 0 {
		b = r.data[0]
		r.data = r.data[1:]
	}
	return
}

func (r *Reader) Bool() bool {
	return r.Byte()&1 != 0
}

// Int returns a value in the range [0, n).  Zero is returned if n <= 0.
func (r *Reader) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Byte()) % n
}

var runes = []rune{
	'a', 'Z', 0, 0x7f, // 1 byte
	0x80, 'ä', 0x7ff, // 2 bytes
	0x800, '€', 0xffff, // 3 bytes
	0x10000, '😀', 0x10ffff, // 4 bytes
	0xd800, -1, 0x110000, // invalid
}

func (r *Reader) Rune() rune {
	return runes[r.Int(len(runes))]
}

// String returns valid UTF-8 of up to 5 characters.
func (r *Reader) String() string {
	var b []rune
	for range r.Int(6) {
		b = append(b, r.Rune())
	}
	return string(b)
}

// catch converts a capacity panic to an error.
func catch(f func()) (err error) {
	defer func() {
		err = pan.Error(recover())
	}()

	f()
	return
}

// catchIndex returns the index error which f panicked with, or nil.
func catchIndex(f func()) (err *fixed.IndexError) {
	defer func() {
		if x := recover(); x != nil {
			e, ok := x.(*fixed.IndexError)
			if !ok {
				panic(x)
			}
			err = e
		}
	}()

	f()
	return
}
