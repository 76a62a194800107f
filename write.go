// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"unicode/utf8"

	"gate.computer/fixed/buffer"
	"gate.computer/fixed/internal/utf8x"
	"gate.computer/fixed/lentype"
)

// ByteWriter appends to a byte vector.  It implements io.Writer,
// io.StringWriter and io.ByteWriter.
//
// Write and WriteString copy as much as fits and return the number of bytes
// copied with a nil error.  (io.Copy reports a short write as
// io.ErrShortWrite.)
type ByteWriter[A any, L lentype.Uint] Vector[byte, A, L]

// Writer returns v as a ByteWriter.
func Writer[A any, L lentype.Uint](v *Vector[byte, A, L]) *ByteWriter[A, L] {
	return (*ByteWriter[A, L])(v)
}

// Vector returns w as a vector.
func (w *ByteWriter[A, L]) Vector() *Vector[byte, A, L] {
	return (*Vector[byte, A, L])(w)
}

func (w *ByteWriter[A, L]) Write(data []byte) (int, error) {
	v := w.Vector()
	if v.len == 0 {
		v.init()
	}

	b, n := buffer.Append(v.slots()[:v.len], data)
	v.len = L(len(b))
	return n, nil
}

func (w *ByteWriter[A, L]) WriteString(s string) (int, error) {
	v := w.Vector()
	if v.len == 0 {
		v.init()
	}

	n := copy(v.slots()[v.len:], s)
	v.len += L(n)
	return n, nil
}

// WriteByte returns a capacity error if the vector is full.
func (w *ByteWriter[A, L]) WriteByte(c byte) error {
	return w.Vector().push("write", c)
}

// Write copies the longest prefix of data which fits and ends at a character
// boundary.  data must be valid UTF-8; otherwise nothing is written and the
// error is ErrInvalidUTF8.  A short write is not an error.
func (s *String[A, L]) Write(data []byte) (int, error) {
	if !utf8.Valid(data) {
		return 0, ErrInvalidUTF8
	}

	b := s.spare()
	n := copy(b, data[:utf8x.ValidPrefix(data, len(b))])
	s.vec.len += L(n)
	return n, nil
}

// WriteString is like Write.
func (s *String[A, L]) WriteString(str string) (int, error) {
	if !utf8.ValidString(str) {
		return 0, ErrInvalidUTF8
	}

	b := s.spare()
	n := len(b)
	if n < len(str) {
		for n > 0 && !utf8.RuneStart(str[n]) {
			n--
		}
	} else {
		n = len(str)
	}

	s.vec.len += L(copy(b, str[:n]))
	return n, nil
}

// WriteByte appends an ASCII character.  Other bytes are rejected with
// ErrInvalidUTF8, and a capacity error is returned if the string is full.
func (s *String[A, L]) WriteByte(c byte) error {
	if c >= utf8.RuneSelf {
		return ErrInvalidUTF8
	}
	return s.vec.push("write", c)
}

// WriteRune is like TryPush, but also returns the encoded size.
func (s *String[A, L]) WriteRune(r rune) (int, error) {
	if err := s.TryPush(r); err != nil {
		return 0, err
	}
	return utf8x.RuneLen(r), nil
}
