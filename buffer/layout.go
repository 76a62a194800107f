// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"
	"reflect"
	"sync"
)

type layout struct {
	elem reflect.Type
	len  int
}

var layouts sync.Map // reflect.Type -> *layout

// Check that A is [N]T, and return N.  It panics with LayoutError otherwise.
// Valid layouts are cached.
func Check[T, A any]() int {
	array := reflect.TypeFor[A]()
	elem := reflect.TypeFor[T]()

	if x, found := layouts.Load(array); found {
		if l := x.(*layout); l.elem == elem {
			return l.len
		}
		panic(LayoutError{array.String(), elem.String()})
	}

	if array.Kind() != reflect.Array || array.Elem() != elem {
		panic(LayoutError{array.String(), elem.String()})
	}

	l := &layout{elem, array.Len()}
	layouts.Store(array, l)
	return l.len
}

// LayoutError is the panic value of Check.
type LayoutError struct {
	Storage string
	Elem    string
}

func (e LayoutError) Error() string {
	return fmt.Sprintf("fixed: storage type %s is not an array of %s", e.Storage, e.Elem)
}
