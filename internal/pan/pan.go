// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pan routes capacity failures of the panicking container API
// through import.name/pan, so that they can be turned back into errors.
package pan

import (
	"import.name/pan"
)

// Panic with an error which Error can recover.
func Panic(err error) {
	pan.Panic(err)
}

// Check panics via Panic if err is non-nil.
func Check(err error) {
	pan.Check(err)
}

// Error converts a recovered value to an error if it was raised by Panic or
// Check.  Other values (including runtime errors and index errors) are
// re-panicked.  Nil yields nil.
func Error(x any) error {
	return pan.Error(x)
}
