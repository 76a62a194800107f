// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// MarshalJSON encodes the live elements as an array.
func (v Vector[T, A, L]) MarshalJSON() ([]byte, error) {
	s := v.live()
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// UnmarshalJSON replaces the elements with the items of a JSON array.  The
// error is a *LengthError if there are too many items.  The vector is not
// modified on error.  Null clears the vector.
func (v *Vector[T, A, L]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return xerrors.Errorf("fixed: %w", err)
	}
	if tok == nil {
		v.Clear()
		return nil
	}
	if tok != json.Delim('[') {
		return xerrors.Errorf("fixed: cannot unmarshal %v into an array", tok)
	}

	var tmp Vector[T, A, L]
	capacity := tmp.init()

	for dec.More() {
		if tmp.Len() == capacity {
			n, err := skipJSON(dec)
			tmp.Clear()
			if err != nil {
				return err
			}
			return &LengthError{Kind: "array", Len: capacity + n, Cap: capacity}
		}

		var x T
		if err := dec.Decode(&x); err != nil {
			err = xerrors.Errorf("fixed: array item %d: %w", tmp.Len(), err)
			tmp.Clear()
			return err
		}
		tmp.PushUnchecked(x)
	}

	if _, err := dec.Token(); err != nil {
		tmp.Clear()
		return xerrors.Errorf("fixed: %w", err)
	}

	v.Clear()
	*v = tmp
	return nil
}

// skipJSON counts the remaining array items.
func skipJSON(dec *json.Decoder) (n int, err error) {
	for ; dec.More(); n++ {
		var x json.RawMessage
		if err = dec.Decode(&x); err != nil {
			err = xerrors.Errorf("fixed: %w", err)
			return
		}
	}
	return
}

// MarshalJSON encodes the text as a JSON string.
func (s String[A, L]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.UnsafeString())
}

// UnmarshalJSON replaces the text with a JSON string.  The error is a
// *LengthError if it doesn't fit.  The string is not modified on error.
func (s *String[A, L]) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return xerrors.Errorf("fixed: %w", err)
	}
	return s.replace(str)
}

// replace the text with valid UTF-8.
func (s *String[A, L]) replace(str string) error {
	capacity := s.vec.init()
	if len(str) > capacity {
		return &LengthError{Kind: "string", Len: len(str), Cap: capacity}
	}

	s.Clear()
	s.vec.len = L(copy(s.vec.slots(), str))
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s String[A, L]) MarshalText() ([]byte, error) {
	return []byte(s.UnsafeString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.  The text must be valid
// UTF-8.  The error is a *LengthError if it doesn't fit.  The string is not
// modified on error.
func (s *String[A, L]) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return xerrors.Errorf("fixed: %w", ErrInvalidUTF8)
	}
	return s.replace(string(text))
}
