// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixed implements containers whose storage is an inline array.
//
// A Vector holds up to N elements of type T in storage of type A, which must
// be the array type [N]T.  A String holds up to N bytes of UTF-8 text.  The
// length field has type L (see the lentype package); the aliases Vec and Str
// use uint32.  Containers never allocate memory for their elements and never
// grow beyond their capacity.  The zero value of a container is empty and
// ready to use.
//
//	var v fixed.Vec[int, [16]int]
//	v.Push(1)
//
// The first Len() slots of the storage are live, and the rest hold the zero
// value of T.  Every operation restores that state on all exit paths,
// including panics raised by callbacks and Drop methods.
//
// Copying a container by value copies its elements.  If the element type
// implements Dropper, ownership of the elements is duplicated; use Take to
// move the contents instead.
//
// Containers are not safe for concurrent mutation.
//
// Errors
//
// Operations which may run out of capacity come in pairs: Try methods return
// a *CapacityError which carries the rejected element(s) back to the caller,
// and the other methods panic with the same error.  The panic can be
// converted back to an error:
//
//	defer func() {
//	    err = pan.Error(recover()) // import.name/pan
//	}()
//
// Invalid indexes and UTF-8 boundary violations panic with *IndexError;
// they indicate a programming error and are not converted.
//
// Capacity errors, and length errors returned by decoders, wrap ErrCapacity.
// It implements the following interface:
//
//	interface {
//	    BufferSizeLimit() string
//	}
//
package fixed
