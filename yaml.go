// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"unicode/utf8"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the live elements as a sequence.
func (v Vector[T, A, L]) MarshalYAML() (any, error) {
	s := v.live()
	if s == nil {
		s = []T{}
	}
	return s, nil
}

// UnmarshalYAML replaces the elements with the items of a sequence.  The
// error is a *LengthError if there are too many items.  The vector is not
// modified on error.  Null clears the vector.
func (v *Vector[T, A, L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		v.Clear()
		return nil
	}
	if node.Kind != yaml.SequenceNode {
		return xerrors.Errorf("fixed: line %d: cannot unmarshal %s into a sequence", node.Line, node.Tag)
	}

	var tmp Vector[T, A, L]
	capacity := tmp.init()

	if len(node.Content) > capacity {
		return &LengthError{Kind: "array", Len: len(node.Content), Cap: capacity}
	}

	for i, item := range node.Content {
		var x T
		if err := item.Decode(&x); err != nil {
			tmp.Clear()
			return xerrors.Errorf("fixed: sequence item %d: %w", i, err)
		}
		tmp.PushUnchecked(x)
	}

	v.Clear()
	*v = tmp
	return nil
}

// MarshalYAML encodes the text as a string.
func (s String[A, L]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML replaces the text with a scalar.  The error is a
// *LengthError if it doesn't fit.  The string is not modified on error.
func (s *String[A, L]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return xerrors.Errorf("fixed: line %d: cannot unmarshal %s into a string", node.Line, node.Tag)
	}

	var str string
	if err := node.Decode(&str); err != nil {
		return xerrors.Errorf("fixed: %w", err)
	}
	if !utf8.ValidString(str) {
		return xerrors.Errorf("fixed: line %d: %w", node.Line, ErrInvalidUTF8)
	}
	return s.replace(str)
}
