// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"gate.computer/fixed/internal/pan"
)

// Splice replaces the elements in the range [start, end) with xs.  The
// replaced elements are dropped.  It panics with *IndexError if the range is
// invalid, or with a capacity error if the result doesn't fit; the vector is
// not modified in the latter case.
func (v *Vector[T, A, L]) Splice(start, end int, xs ...T) {
	pan.Check(v.TrySplice(start, end, xs...))
}

// TrySplice is like Splice, but returns a *CapacityError[[]T] carrying xs if
// the result doesn't fit.
func (v *Vector[T, A, L]) TrySplice(start, end int, xs ...T) error {
	n := v.Len()
	switch {
	case start < 0 || start > end:
		indexPanic("splice", start, n, "start is greater than end")
	case end > n:
		indexPanic("splice", end, n, "end is out of bounds")
	}

	c := v.init()
	if avail := c - (n - (end - start)); len(xs) > avail {
		return capacityError("splice", xs, len(xs), avail)
	}

	d := v.Drain(start, end)
	d.Close()

	if len(xs) == 0 {
		return nil
	}

	n = v.Len()
	s := v.slots()
	copy(s[start+len(xs):n+len(xs)], s[start:n])
	copy(s[start:], xs)
	v.len = L(n + len(xs))
	return nil
}
