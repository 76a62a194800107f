// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"iter"

	"gate.computer/fixed/lentype"
)

// IntoIter owns the elements of a vector and yields them by value.  The
// elements which are not yielded are dropped by Close.
type IntoIter[T, A any, L lentype.Uint] struct {
	vec  Vector[T, A, L]
	next L
}

// IntoIter moves all elements to an iterator, leaving the vector empty.
func (v *Vector[T, A, L]) IntoIter() IntoIter[T, A, L] {
	return IntoIter[T, A, L]{vec: v.Take()}
}

// Len returns the number of elements left to yield.
func (it *IntoIter[T, A, L]) Len() int {
	return int(it.vec.len - it.next)
}

// Next yields the first remaining element.
func (it *IntoIter[T, A, L]) Next() (x T, ok bool) {
	if it.next == it.vec.len {
		return
	}

	s := it.vec.slots()
	x = s[it.next]
	var zero T
	s[it.next] = zero
	it.next++
	return x, true
}

// NextBack yields the last remaining element.
func (it *IntoIter[T, A, L]) NextBack() (x T, ok bool) {
	if it.next == it.vec.len {
		return
	}
	return it.vec.Pop()
}

// Slice of the remaining elements.
func (it *IntoIter[T, A, L]) Slice() []T {
	return it.vec.live()[it.next:]
}

// All yields the remaining elements, and closes the iterator when done.
func (it *IntoIter[T, A, L]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()

		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Close drops the remaining elements.
func (it *IntoIter[T, A, L]) Close() {
	if it.next == it.vec.len {
		return
	}

	rest := it.vec.slots()[it.next:it.vec.len]
	it.next = 0
	it.vec.len = 0
	dropSlots(rest)
}

// Drop implements Dropper.
func (it *IntoIter[T, A, L]) Drop() {
	it.Close()
}
