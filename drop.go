// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

// Dropper is implemented by element types which must be released when a
// container discards them.  Drop is called exactly once for every element
// which is truncated, cleared, rejected by Retain, replaced by Splice, or left
// unconsumed in a Drain or an IntoIter.  Elements which are handed to the
// caller (Pop, Remove, iterator results, etc.) are not dropped.
type Dropper interface {
	Drop()
}

// dropper reports whether values of type T may need to be dropped: T or *T
// implements Dropper, or T is an interface type.
func dropper[T any]() bool {
	var p *T
	if _, ok := any(p).(Dropper); ok {
		return true
	}

	var x T
	if any(x) == nil { // Interface type; dynamic check.
		return true
	}
	_, ok := any(x).(Dropper)
	return ok
}

// dropValue calls x's Drop method if it has one.  It should only be called if
// dropper[T]() is true: x escapes.
func dropValue[T any](x T) {
	if d, ok := any(x).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(&x).(Dropper); ok {
		d.Drop()
	}
}

// dropSlots zeroes the slots and drops their former contents in order.  If a
// Drop call panics, the remaining elements are still dropped before the panic
// continues.  Panics raised by the subsequent Drop calls are discarded.
func dropSlots[T any](s []T) {
	if !dropper[T]() {
		clear(s)
		return
	}

	defer func() {
		if len(s) > 0 {
			defer func() {
				recover() // The first panic continues.
			}()
			dropSlots(s)
		}
	}()

	var zero T

	for len(s) > 0 {
		x := s[0]
		s[0] = zero
		s = s[1:]
		dropValue(x)
	}
}
