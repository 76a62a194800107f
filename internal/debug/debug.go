// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debug controls internal consistency checks.  Build with
//
//	go build -tags fixeddebug
//
// to enable them.
package debug

// Assert panics if Assertions is enabled and ok is false.
func Assert(ok bool, msg string) {
	if Assertions && !ok {
		panic("fixed: assertion failed: " + msg)
	}
}
