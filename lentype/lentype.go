// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lentype defines the integer types which may store the length of a
// fixed-capacity container.
//
// A container's length field is as wide as its length type, so a small
// capacity can be paired with a narrow type to keep the container compact.
// The capacity must be representable by the length type; that is checked once
// when a container is constructed or first written to.
package lentype

import (
	"fmt"
	"math"
	"unsafe"
)

// Uint is the sealed set of length representations.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Zero length.
func Zero[L Uint]() L {
	return 0
}

// Max representable length.
func Max[L Uint]() uint64 {
	var x L
	return uint64(math.MaxUint64) >> (64 - 8*unsafe.Sizeof(x))
}

// From converts a native length.  The value is not range-checked; containers
// have already verified their capacity with Check.
func From[L Uint](n int) L {
	return L(n)
}

// To converts to a native length.
func To[L Uint](l L) int {
	return int(l)
}

// Bits returns the width of the narrowest length type which can represent
// the capacity: 8, 16, 32 or 64.
func Bits(capacity int) int {
	switch c := uint64(capacity); {
	case c <= math.MaxUint8:
		return 8
	case c <= math.MaxUint16:
		return 16
	case c <= math.MaxUint32:
		return 32
	default:
		return 64
	}
}

// Check panics if capacity is too large for L.
func Check[L Uint](capacity int) {
	if capacity < 0 || uint64(capacity) > Max[L]() {
		panic(CapacityLimitError{capacity, Name[L](), Max[L]()})
	}
}

// Name of L's underlying representation, e.g. "uint16".
func Name[L Uint]() string {
	var x L
	return fmt.Sprintf("uint%d", 8*unsafe.Sizeof(x))
}

// CapacityLimitError is the panic value of Check.
type CapacityLimitError struct {
	Capacity int
	Type     string
	Max      uint64
}

func (e CapacityLimitError) Error() string {
	return fmt.Sprintf("fixed: capacity %d is too large for %s (max %d)", e.Capacity, e.Type, e.Max)
}
