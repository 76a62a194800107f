// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package main

import (
	"errors"
)

func makeMem(size int) ([]byte, error) {
	return nil, errors.New("off-heap memory is not supported on this platform")
}

func freeMem([]byte) {}

func maxRSS() int64 {
	return -1
}
