// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"cmp"
	"hash/maphash"
	"slices"

	"gate.computer/fixed/lentype"
)

// Equal reports whether two vectors have the same live elements.  Their
// capacities may differ.
func Equal[T comparable, A1, A2 any, L1, L2 lentype.Uint](a *Vector[T, A1, L1], b *Vector[T, A2, L2]) bool {
	return slices.Equal(a.live(), b.live())
}

// EqualFunc is like Equal, using eq to compare elements.
func EqualFunc[T1, T2, A1, A2 any, L1, L2 lentype.Uint](a *Vector[T1, A1, L1], b *Vector[T2, A2, L2], eq func(T1, T2) bool) bool {
	return slices.EqualFunc(a.live(), b.live(), eq)
}

// Compare the live elements lexicographically.
func Compare[T cmp.Ordered, A1, A2 any, L1, L2 lentype.Uint](a *Vector[T, A1, L1], b *Vector[T, A2, L2]) int {
	return slices.Compare(a.live(), b.live())
}

// CompareFunc is like Compare, using f to compare elements.
func CompareFunc[T1, T2, A1, A2 any, L1, L2 lentype.Uint](a *Vector[T1, A1, L1], b *Vector[T2, A2, L2], f func(T1, T2) int) int {
	return slices.CompareFunc(a.live(), b.live(), f)
}

// Hash writes the length and the live elements to h.  Vectors which are
// Equal produce the same hash regardless of capacity.
func Hash[T comparable, A any, L lentype.Uint](h *maphash.Hash, v *Vector[T, A, L]) {
	s := v.live()
	maphash.WriteComparable(h, len(s))
	for _, x := range s {
		maphash.WriteComparable(h, x)
	}
}
