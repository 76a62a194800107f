// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"iter"

	"gate.computer/fixed/lentype"
)

// Drain moves a range of elements out of a vector.  The elements which are
// not yielded are dropped when the drain is closed, and the elements after
// the range are moved into its place.  The drain is closed automatically when
// it has been exhausted.
//
// The vector must not be used while the drain is open.  Until then it
// appears to end where the drained range begins.  If the drain is never
// closed, the elements after the range are lost (but not dropped).
type Drain[T, A any, L lentype.Uint] struct {
	vec       *Vector[T, A, L]
	tailStart int
	tailLen   int
	next      int
	end       int
}

// Drain elements in the range [start, end).  It panics with *IndexError if
// start > end or end > Len().
func (v *Vector[T, A, L]) Drain(start, end int) (d Drain[T, A, L]) {
	n := v.Len()
	switch {
	case start < 0 || start > end:
		indexPanic("drain", start, n, "start is greater than end")
	case end > n:
		indexPanic("drain", end, n, "end is out of bounds")
	}

	if start == end {
		return
	}

	v.len = L(start)

	d = Drain[T, A, L]{
		vec:       v,
		tailStart: end,
		tailLen:   n - end,
		next:      start,
		end:       end,
	}
	return
}

// Len returns the number of elements left to yield.
func (d *Drain[T, A, L]) Len() int {
	return d.end - d.next
}

// Next yields the first remaining element.
func (d *Drain[T, A, L]) Next() (x T, ok bool) {
	if d.next == d.end {
		d.Close()
		return
	}

	s := d.vec.slots()
	x = s[d.next]
	var zero T
	s[d.next] = zero
	d.next++

	if d.next == d.end {
		d.Close()
	}
	return x, true
}

// NextBack yields the last remaining element.
func (d *Drain[T, A, L]) NextBack() (x T, ok bool) {
	if d.next == d.end {
		d.Close()
		return
	}

	s := d.vec.slots()
	d.end--
	x = s[d.end]
	var zero T
	s[d.end] = zero

	if d.next == d.end {
		d.Close()
	}
	return x, true
}

// All yields the remaining elements, and closes the drain when done.
func (d *Drain[T, A, L]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()

		for {
			x, ok := d.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Close drops the remaining elements and restores the vector.  It can be
// called multiple times.
func (d *Drain[T, A, L]) Close() {
	v := d.vec
	if v == nil {
		return
	}
	d.vec = nil

	s := v.slots()
	rest := s[d.next:d.end]
	d.next = d.end

	defer func() {
		start := v.Len()
		if d.tailLen > 0 && d.tailStart != start {
			copy(s[start:], s[d.tailStart:d.tailStart+d.tailLen])
			clear(s[start+d.tailLen : d.tailStart+d.tailLen])
		}
		v.len = L(start + d.tailLen)
	}()

	dropSlots(rest)
}
