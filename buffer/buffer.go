// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package buffer provides raw access to fixed-size element storage.
//
// Storage is an array value of type A, which must be [N]T.  Every slot is
// addressable as a T regardless of whether a container considers it live;
// the containers built on top of this package decide which prefix of slots
// holds live elements.  Storing the array inline (in a struct field or in a
// local variable) means that no memory is allocated for the slots.
package buffer

import (
	"unsafe"
)

// Cap returns N for storage type A = [N]T.  It doesn't validate the layout
// when T has a non-zero size; see Check.
func Cap[T, A any]() int {
	var (
		x T
		a A
	)

	if size := unsafe.Sizeof(x); size != 0 {
		return int(unsafe.Sizeof(a) / size)
	}

	return Check[T, A]()
}

// Slots of the storage, all N of them.  The layout must have been validated
// with Check.
func Slots[T, A any](a *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), Cap[T, A]())
}

// Append copies as much of data as fits in the spare capacity of b.  It
// returns b extended by the number of bytes copied, and that number.
func Append(b, data []byte) ([]byte, int) {
	offset := len(b)
	size := offset + len(data)
	if size > cap(b) {
		size = cap(b)
	}
	b = b[:size]
	n := copy(b[offset:], data)
	return b, n
}
