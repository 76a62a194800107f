// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

type sizeError string

func (s sizeError) Error() string           { return string(s) }
func (s sizeError) BufferSizeLimit() string { return string(s) }

// ErrCapacity implements interface{ BufferSizeLimit() string }.  Typed
// capacity errors unwrap to it.
var ErrCapacity error = sizeError("insufficient capacity")
