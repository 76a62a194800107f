// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"gate.computer/fixed/errors"
)

type (
	CapacityError[E any] = errors.CapacityError[E]
	IndexError           = errors.IndexError
	LengthError          = errors.LengthError
)

var (
	ErrCapacity    = errors.ErrCapacity
	ErrInvalidUTF8 = errors.ErrInvalidUTF8
)

// Rejected extracts the element carried by a capacity error in err's chain.
func Rejected[E any](err error) (E, bool) {
	return errors.Rejected[E](err)
}

func capacityError[E any](op string, x E, need, available int) error {
	return &CapacityError[E]{Op: op, Element: x, Need: need, Available: available}
}

func indexPanic(op string, i, n int, reason string) {
	panic(&IndexError{Op: op, Index: i, Len: n, Reason: reason})
}
