// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"iter"

	"gate.computer/fixed/buffer"
	"gate.computer/fixed/internal/debug"
	"gate.computer/fixed/internal/pan"
	"gate.computer/fixed/lentype"
)

// Vector is a list of at most N elements of type T stored inline in an array
// of type A, which must be [N]T.  The length is represented as L.
type Vector[T any, A any, L lentype.Uint] struct {
	xs  A
	len L
}

// Vec is a Vector with uint32 length.
type Vec[T, A any] = Vector[T, A, uint32]

// MakeVector returns an empty vector.  It panics if A is not [N]T, or if N is
// too large for L.
func MakeVector[T, A any, L lentype.Uint]() (v Vector[T, A, L]) {
	v.init()
	return
}

// MakeVectorFrom returns a full vector which takes ownership of the elements
// of a.
func MakeVectorFrom[T, A any, L lentype.Uint](a A) (v Vector[T, A, L]) {
	n := v.init()
	v.xs = a
	v.len = L(n)
	return
}

// VectorFromSlice copies the elements of xs into a new vector.  The error is
// a *CapacityError[[]T] if they don't fit.
func VectorFromSlice[T, A any, L lentype.Uint](xs []T) (v Vector[T, A, L], err error) {
	n := v.init()
	if len(xs) > n {
		err = capacityError("from slice", xs, len(xs), n)
		return
	}

	copy(buffer.Slots[T](&v.xs), xs)
	v.len = L(len(xs))
	return
}

// CollectVector pushes all elements of seq into a new vector.  It panics with
// a capacity error if seq yields too many elements.
func CollectVector[T, A any, L lentype.Uint](seq iter.Seq[T]) (v Vector[T, A, L]) {
	v.init()
	v.Extend(seq)
	return
}

// init validates the type parameters and returns the capacity.  It must be
// called before the first element is stored.
func (v *Vector[T, A, L]) init() int {
	n := buffer.Check[T, A]()
	lentype.Check[L](n)
	return n
}

func (v *Vector[T, A, L]) slots() []T {
	return buffer.Slots[T](&v.xs)
}

// live elements, or nil.
func (v *Vector[T, A, L]) live() []T {
	n := int(v.len)
	if n == 0 {
		return nil
	}
	return v.slots()[:n:n]
}

func (v *Vector[T, A, L]) Len() int       { return int(v.len) }
func (v *Vector[T, A, L]) Cap() int       { return buffer.Cap[T, A]() }
func (v *Vector[T, A, L]) IsEmpty() bool  { return v.len == 0 }
func (v *Vector[T, A, L]) IsFull() bool   { return v.Len() == v.Cap() }
func (v *Vector[T, A, L]) Remaining() int { return v.Cap() - v.Len() }

// Push x to the end.  It panics with a capacity error if the vector is full.
func (v *Vector[T, A, L]) Push(x T) {
	if err := v.push("push", x); err != nil {
		pan.Panic(err)
	}
}

// TryPush x to the end.  If the vector is full, the error is a
// *CapacityError[T] which carries x.
func (v *Vector[T, A, L]) TryPush(x T) error {
	return v.push("push", x)
}

func (v *Vector[T, A, L]) push(op string, x T) error {
	n := int(v.len)
	if n == 0 {
		v.init()
	}

	s := v.slots()
	if n == len(s) {
		return capacityError(op, x, 1, 0)
	}

	s[n] = x
	v.len = L(n + 1)
	return nil
}

// PushUnchecked appends x without checking the capacity.  The vector must
// not be full.
func (v *Vector[T, A, L]) PushUnchecked(x T) {
	n := int(v.len)
	debug.Assert(n < v.Cap(), "PushUnchecked: vector is full")
	if n == 0 {
		v.init()
	}

	v.slots()[n] = x
	v.len = L(n + 1)
}

// Pop the last element.
func (v *Vector[T, A, L]) Pop() (x T, ok bool) {
	if v.len == 0 {
		return
	}

	v.len--
	s := v.slots()
	x = s[v.len]
	var zero T
	s[v.len] = zero
	return x, true
}

// Insert x at index i, shifting the following elements.  It panics with
// *IndexError if i > Len(), or with a capacity error if the vector is full.
func (v *Vector[T, A, L]) Insert(i int, x T) {
	if err := v.TryInsert(i, x); err != nil {
		pan.Panic(err)
	}
}

// TryInsert is like Insert, but returns a *CapacityError[T] carrying x if the
// vector is full.  The vector is not modified in that case.  It panics if
// i > Len().
func (v *Vector[T, A, L]) TryInsert(i int, x T) error {
	n := int(v.len)
	if i < 0 || i > n {
		indexPanic("insert", i, n, "insertion index should be <= len")
	}
	if n == 0 {
		v.init()
	}

	s := v.slots()
	if n == len(s) {
		return capacityError("insert", x, 1, 0)
	}

	copy(s[i+1:n+1], s[i:n])
	s[i] = x
	v.len = L(n + 1)
	return nil
}

// Remove the element at index i and return it, shifting the following
// elements.  It panics with *IndexError if i is out of range.
func (v *Vector[T, A, L]) Remove(i int) T {
	x, ok := v.PopAt(i)
	if !ok {
		indexPanic("remove", i, v.Len(), "removal index should be < len")
	}
	return x
}

// PopAt is like Remove, but reports false if i is out of range.
func (v *Vector[T, A, L]) PopAt(i int) (x T, ok bool) {
	if i < 0 || i >= v.Len() {
		return
	}

	d := v.Drain(i, i+1)
	x, ok = d.Next()
	d.Close()
	return
}

// SwapRemove removes the element at index i and returns it.  The last
// element takes its place.  It panics with *IndexError if i is out of range.
func (v *Vector[T, A, L]) SwapRemove(i int) T {
	x, ok := v.SwapPop(i)
	if !ok {
		indexPanic("swap remove", i, v.Len(), "removal index should be < len")
	}
	return x
}

// SwapPop is like SwapRemove, but reports false if i is out of range.
func (v *Vector[T, A, L]) SwapPop(i int) (x T, ok bool) {
	n := v.Len()
	if i < 0 || i >= n {
		return
	}

	s := v.slots()
	s[i], s[n-1] = s[n-1], s[i]
	return v.Pop()
}

// Truncate to length n, dropping the excess elements in order.  Nothing
// happens if n >= Len().
func (v *Vector[T, A, L]) Truncate(n int) {
	if n < 0 {
		indexPanic("truncate", n, v.Len(), "negative length")
	}

	old := v.Len()
	if n >= old {
		return
	}

	s := v.slots()
	v.len = L(n)
	dropSlots(s[n:old])
}

// Clear drops all elements.
func (v *Vector[T, A, L]) Clear() {
	v.Truncate(0)
}

// Drop implements Dropper by dropping all elements.
func (v *Vector[T, A, L]) Drop() {
	v.Clear()
}

// Extend pushes the elements yielded by seq.  It panics with a capacity error
// when seq yields an element which doesn't fit; the preceding elements have
// been pushed at that point.
func (v *Vector[T, A, L]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		if err := v.push("extend", x); err != nil {
			pan.Panic(err)
		}
	}
}

// ExtendFromSlice copies xs to the end.  It panics with a capacity error if
// they don't all fit, without modifying the vector.
func (v *Vector[T, A, L]) ExtendFromSlice(xs []T) {
	pan.Check(v.TryExtendFromSlice(xs))
}

// TryExtendFromSlice copies xs to the end.  If they don't all fit, the error
// is a *CapacityError[[]T] carrying xs, and the vector is not modified.
func (v *Vector[T, A, L]) TryExtendFromSlice(xs []T) error {
	if len(xs) == 0 {
		return nil
	}

	n := int(v.len)
	if n == 0 {
		v.init()
	}

	s := v.slots()
	if avail := len(s) - n; len(xs) > avail {
		return capacityError("extend", xs, len(xs), avail)
	}

	copy(s[n:], xs)
	v.len = L(n + len(xs))
	return nil
}

// SetLen changes the length without initializing or dropping elements.  The
// caller is responsible for the state of the slots: slots beyond the new
// length must hold zero values, and slots within it must be initialized.
func (v *Vector[T, A, L]) SetLen(n int) {
	debug.Assert(n >= 0 && n <= v.Cap(), "SetLen: length out of range")
	if n > 0 {
		v.init()
	}
	v.len = L(n)
}

// Storage returns all slots, including the dead ones.  It can be used
// together with SetLen.
func (v *Vector[T, A, L]) Storage() []T {
	v.init()
	return v.slots()
}

// IntoInner returns the storage array if the vector is full, leaving the
// vector empty.  Otherwise the vector is not modified and false is returned.
func (v *Vector[T, A, L]) IntoInner() (a A, ok bool) {
	if !v.IsFull() {
		return
	}
	return v.IntoInnerUnchecked(), true
}

// IntoInnerUnchecked returns the storage array regardless of length, leaving
// the vector empty.  Slots beyond the length hold zero values.
func (v *Vector[T, A, L]) IntoInnerUnchecked() A {
	var zero A
	a := v.xs
	v.xs = zero
	v.len = 0
	return a
}

// Take moves the contents to a new vector, leaving the receiver empty.
func (v *Vector[T, A, L]) Take() Vector[T, A, L] {
	t := *v
	*v = Vector[T, A, L]{}
	return t
}

// Slice of the live elements.  It is invalidated by operations which change
// the length.
func (v *Vector[T, A, L]) Slice() []T {
	return v.live()
}

// At returns the element at index i.  It panics if i is out of range.
func (v *Vector[T, A, L]) At(i int) T {
	return v.live()[i]
}

// Set replaces the element at index i, dropping the old one.  It panics if i
// is out of range.
func (v *Vector[T, A, L]) Set(i int, x T) {
	s := v.live()
	old := s[i]
	s[i] = x
	if dropper[T]() {
		dropValue(old)
	}
}

// Last element.
func (v *Vector[T, A, L]) Last() (x T, ok bool) {
	if v.len == 0 {
		return
	}
	return v.slots()[v.len-1], true
}

// All yields the live elements with their indexes.
func (v *Vector[T, A, L]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the live elements.
func (v *Vector[T, A, L]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields the live elements with their indexes in reverse order.
func (v *Vector[T, A, L]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.live()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
