// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package fixed

import (
	"gate.computer/fixed/internal/model"

	_ "github.com/dvyukov/go-fuzz/go-fuzz-dep"
)

// Fuzz is the go-fuzz entry point.  The first byte selects the container.
func Fuzz(data []byte) int {
	if len(data) == 0 {
		return -1
	}

	var err error
	if data[0]&1 == 0 {
		_, err = model.RunVector(data[1:])
	} else {
		_, err = model.RunString(data[1:])
	}
	if err != nil {
		panic(err)
	}
	return 1
}
