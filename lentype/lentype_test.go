// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lentype

import (
	"math"
	"testing"
)

type shortLen uint16

func TestMax(t *testing.T) {
	if n := Max[uint8](); n != math.MaxUint8 {
		t.Error(n)
	}
	if n := Max[uint16](); n != math.MaxUint16 {
		t.Error(n)
	}
	if n := Max[shortLen](); n != math.MaxUint16 {
		t.Error(n)
	}
	if n := Max[uint32](); n != math.MaxUint32 {
		t.Error(n)
	}
	if n := Max[uint64](); n != math.MaxUint64 {
		t.Error(n)
	}
}

func TestConvert(t *testing.T) {
	for _, n := range []int{0, 1, 200, 255} {
		if x := To(From[uint8](n)); x != n {
			t.Errorf("%d: %d", n, x)
		}
	}
	if Zero[uint32]() != 0 {
		t.Fail()
	}
}

func TestBits(t *testing.T) {
	for _, c := range []struct {
		capacity int
		bits     int
	}{
		{0, 8},
		{255, 8},
		{256, 16},
		{65535, 16},
		{65536, 32},
		{math.MaxUint32, 32},
		{math.MaxUint32 + 1, 64},
	} {
		if n := Bits(c.capacity); n != c.bits {
			t.Errorf("%d: %d", c.capacity, n)
		}
	}
}

func TestCheck(t *testing.T) {
	Check[uint8](255)
	Check[uint16](256)

	defer func() {
		x := recover()
		err, ok := x.(CapacityLimitError)
		if !ok {
			t.Fatal(x)
		}
		t.Log(err)
		if err.Capacity != 256 || err.Type != "uint8" || err.Max != 255 {
			t.Error(err)
		}
		if s := err.Error(); s != "fixed: capacity 256 is too large for uint8 (max 255)" {
			t.Error(s)
		}
	}()

	Check[uint8](256)
	t.Fatal("no panic")
}
