// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary dependencies.
//
// Capacity errors are returned by the Try methods of the containers, and the
// other methods panic with them.  Index errors are only used as panic values:
// they indicate a programming error.  Length errors are returned when
// decoding external input which doesn't fit.
package errors

import (
	"errors"
	"fmt"

	"gate.computer/fixed/buffer"
	"golang.org/x/xerrors"
)

// ErrCapacity is wrapped by every CapacityError, so that they can be detected
// without knowing the element type.
var ErrCapacity = buffer.ErrCapacity

// ErrInvalidUTF8 is returned when external input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("fixed: invalid UTF-8")

// CapacityError indicates that there was no room for Element, which is
// handed back to the caller.  Element may also be a slice or a string.
type CapacityError[E any] struct {
	Op        string
	Element   E
	Need      int
	Available int
}

func (e *CapacityError[E]) Error() string {
	return fmt.Sprintf("fixed: %s: insufficient capacity (need %d, available %d)", e.Op, e.Need, e.Available)
}

func (e *CapacityError[E]) BufferSizeLimit() string { return e.Error() }
func (e *CapacityError[E]) Unwrap() error           { return ErrCapacity }

// Rejected extracts the element carried by a capacity error in err's chain.
func Rejected[E any](err error) (element E, ok bool) {
	var e *CapacityError[E]
	if xerrors.As(err, &e) {
		element = e.Element
		ok = true
	}
	return
}

// IndexError describes an invalid index or length argument.
type IndexError struct {
	Op     string
	Index  int
	Len    int
	Reason string // Empty means out of range.
}

func (e *IndexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("fixed: %s: %s (index %d, length %d)", e.Op, e.Reason, e.Index, e.Len)
	}
	return fmt.Sprintf("fixed: %s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

// LengthError indicates that decoded input has more items than a container
// can hold.
type LengthError struct {
	Kind string // "array" or "string"
	Len  int
	Cap  int
}

func (e *LengthError) Error() string {
	if e.Kind == "string" {
		return fmt.Sprintf("invalid length %d, expected a string with no more than %d bytes", e.Len, e.Cap)
	}
	return fmt.Sprintf("invalid length %d, expected an array with no more than %d items", e.Len, e.Cap)
}

func (e *LengthError) Unwrap() error { return ErrCapacity }
