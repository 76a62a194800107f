// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// Retain only the elements for which f returns true, in a single pass in
// order.  Rejected elements are dropped immediately.  f may modify the
// element.
//
// If f or a Drop method panics, the elements which were not yet visited are
// kept, and the vector remains consistent.  The vector appears empty while f
// is running.
func (v *Vector[T, A, L]) Retain(f func(*T) bool) {
	n := v.Len()
	if n == 0 {
		return
	}

	var (
		s         = v.slots()[:n]
		drop      = dropper[T]()
		processed = 0
		deleted   = 0
		zero      T
	)

	v.len = 0

	defer func() {
		if deleted > 0 {
			copy(s[processed-deleted:], s[processed:])
			clear(s[n-deleted:])
		}
		v.len = L(n - deleted)
	}()

	for processed < n {
		p := &s[processed]

		if f(p) {
			if deleted > 0 {
				s[processed-deleted] = *p
				*p = zero
			}
			processed++
			continue
		}

		x := *p
		*p = zero
		processed++
		deleted++
		if drop {
			dropValue(x)
		}
	}
}
