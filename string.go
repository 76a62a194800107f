// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"hash/maphash"
	"strings"
	"unicode/utf8"
	"unsafe"

	"gate.computer/fixed/internal/debug"
	"gate.computer/fixed/internal/pan"
	"gate.computer/fixed/internal/utf8x"
	"gate.computer/fixed/lentype"
)

// String is UTF-8 text of at most N bytes stored inline in an array of type
// A, which must be [N]byte.  The length is represented as L.
type String[A any, L lentype.Uint] struct {
	vec Vector[byte, A, L]
}

// Str is a String with uint32 length.
type Str[A any] = String[A, uint32]

// MakeString returns an empty string.  It panics if A is not [N]byte, or if
// N is too large for L.
func MakeString[A any, L lentype.Uint]() (s String[A, L]) {
	s.vec.init()
	return
}

// StringFrom copies s.  The error is a *CapacityError[string] if it doesn't
// fit.
func StringFrom[A any, L lentype.Uint](str string) (s String[A, L], err error) {
	err = s.tryPushStr("from string", str)
	return
}

// StringFromBytes copies b, which must be valid UTF-8.
func StringFromBytes[A any, L lentype.Uint](b []byte) (s String[A, L], err error) {
	if !utf8.Valid(b) {
		err = ErrInvalidUTF8
		return
	}

	n := s.vec.init()
	if len(b) > n {
		err = capacityError("from bytes", b, len(b), n)
		return
	}

	copy(s.vec.slots(), b)
	s.vec.len = L(len(b))
	return
}

// ZeroFilledString returns a full string of NUL characters.
func ZeroFilledString[A any, L lentype.Uint]() (s String[A, L]) {
	s.vec.len = L(s.vec.init())
	return
}

func (s *String[A, L]) Len() int       { return s.vec.Len() }
func (s *String[A, L]) Cap() int       { return s.vec.Cap() }
func (s *String[A, L]) IsEmpty() bool  { return s.vec.IsEmpty() }
func (s *String[A, L]) IsFull() bool   { return s.vec.IsFull() }
func (s *String[A, L]) Remaining() int { return s.vec.Remaining() }

// spare capacity.
func (s *String[A, L]) spare() []byte {
	n := s.vec.Len()
	if n == 0 {
		s.vec.init()
	}
	return s.vec.slots()[n:]
}

// Push the encoding of r to the end.  Invalid runes are encoded as
// utf8.RuneError.  It panics with a capacity error if it doesn't fit.
func (s *String[A, L]) Push(r rune) {
	if err := s.TryPush(r); err != nil {
		pan.Panic(err)
	}
}

// TryPush is like Push, but returns a *CapacityError[rune] carrying r if it
// doesn't fit.  The string is not modified in that case.
func (s *String[A, L]) TryPush(r rune) error {
	b := s.spare()

	n, ok := utf8x.EncodeRune(b, r)
	if !ok {
		return capacityError("push", r, utf8x.RuneLen(r), len(b))
	}

	s.vec.len += L(n)
	return nil
}

// PushStr copies str to the end.  It panics with a capacity error if it
// doesn't fit; the string is not modified in that case.
func (s *String[A, L]) PushStr(str string) {
	pan.Check(s.tryPushStr("push", str))
}

// TryPushStr is like PushStr, but returns a *CapacityError[string] carrying
// str.
func (s *String[A, L]) TryPushStr(str string) error {
	return s.tryPushStr("push", str)
}

func (s *String[A, L]) tryPushStr(op, str string) error {
	b := s.spare()
	if len(str) > len(b) {
		return capacityError(op, str, len(str), len(b))
	}
	if !utf8.ValidString(str) {
		str = strings.ToValidUTF8(str, string(utf8.RuneError))
		if len(str) > len(b) {
			return capacityError(op, str, len(str), len(b))
		}
	}

	s.vec.len += L(copy(b, str))
	return nil
}

// Pop the last character.
func (s *String[A, L]) Pop() (r rune, ok bool) {
	b := s.vec.live()
	if len(b) == 0 {
		return
	}

	r, size := utf8.DecodeLastRune(b)
	n := len(b) - size
	s.vec.len = L(n)
	clear(b[n:])
	return r, true
}

// Truncate to n bytes.  Nothing happens if n >= Len().  It panics with
// *IndexError if n is not at a character boundary.
func (s *String[A, L]) Truncate(n int) {
	b := s.vec.live()
	if n >= len(b) {
		return
	}
	if !utf8x.IsBoundary(b, n) {
		indexPanic("truncate", n, len(b), "not a char boundary")
	}

	s.vec.len = L(n)
	clear(b[n:])
}

// Clear the text.
func (s *String[A, L]) Clear() {
	s.Truncate(0)
}

// Remove the character at byte index i and return it.  It panics with
// *IndexError if i is not at a character boundary before the end.
func (s *String[A, L]) Remove(i int) rune {
	b := s.vec.live()
	switch {
	case i == len(b):
		indexPanic("remove", i, len(b), "cannot remove a char from the end of a string")
	case i < 0 || i > len(b):
		indexPanic("remove", i, len(b), "")
	case !utf8x.IsBoundary(b, i):
		indexPanic("remove", i, len(b), "not a char boundary")
	}

	r, size := utf8.DecodeRune(b[i:])
	n := len(b) - size
	copy(b[i:], b[i+size:])
	clear(b[n:])
	s.vec.len = L(n)
	return r
}

// Insert the encoding of r at byte index i.  It panics with *IndexError if i
// is not at a character boundary, or with a capacity error if it doesn't fit.
func (s *String[A, L]) Insert(i int, r rune) {
	if err := s.TryInsert(i, r); err != nil {
		pan.Panic(err)
	}
}

// TryInsert is like Insert, but returns a *CapacityError[rune] carrying r if
// it doesn't fit.  The string is not modified in that case.
func (s *String[A, L]) TryInsert(i int, r rune) error {
	var buf [utf8.UTFMax]byte
	n, _ := utf8x.EncodeRune(buf[:], r)

	if !s.insert(i, buf[:n]) {
		return capacityError("insert", r, n, s.Remaining())
	}
	return nil
}

// InsertStr copies str to byte index i.  It panics with *IndexError if i is
// not at a character boundary, or with a capacity error if it doesn't fit.
func (s *String[A, L]) InsertStr(i int, str string) {
	pan.Check(s.TryInsertStr(i, str))
}

// TryInsertStr is like InsertStr, but returns a *CapacityError[string]
// carrying str if it doesn't fit.  The string is not modified in that case.
func (s *String[A, L]) TryInsertStr(i int, str string) error {
	if !utf8.ValidString(str) {
		str = strings.ToValidUTF8(str, string(utf8.RuneError))
	}

	if !s.insert(i, unsafe.Slice(unsafe.StringData(str), len(str))) {
		return capacityError("insert", str, len(str), s.Remaining())
	}
	return nil
}

func (s *String[A, L]) insert(i int, data []byte) bool {
	b := s.vec.live()
	if i < 0 || i > len(b) {
		indexPanic("insert", i, len(b), "")
	}
	if !utf8x.IsBoundary(b, i) {
		indexPanic("insert", i, len(b), "not a char boundary")
	}

	n := len(b)
	if len(data) > len(s.spare()) {
		return false
	}

	all := s.vec.slots()
	copy(all[i+len(data):], all[i:n])
	copy(all[i:], data)
	s.vec.len = L(n + len(data))
	return true
}

// SetLen changes the length without touching the bytes.  The caller is
// responsible for keeping the text valid UTF-8, and the bytes beyond the new
// length zero.
func (s *String[A, L]) SetLen(n int) {
	s.vec.SetLen(n)
	if debug.Assertions {
		debug.Assert(utf8.Valid(s.vec.live()), "SetLen: invalid UTF-8")
	}
}

// Storage returns all bytes, including the dead ones.  It can be used
// together with SetLen.
func (s *String[A, L]) Storage() []byte {
	return s.vec.Storage()
}

// String returns a copy of the text.
func (s String[A, L]) String() string {
	return string(s.vec.live())
}

// Bytes returns a view of the text.  It must not be modified, and it is
// invalidated by operations which change the length.
func (s *String[A, L]) Bytes() []byte {
	return s.vec.live()
}

// UnsafeString returns the text without copying it.  The result aliases the
// storage, so it changes if the string is modified.
func (s *String[A, L]) UnsafeString() string {
	b := s.vec.live()
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Equal reports whether the text is str.
func (s *String[A, L]) Equal(str string) bool {
	return s.UnsafeString() == str
}

// Compare the text with str lexicographically by bytes.
func (s *String[A, L]) Compare(str string) int {
	return strings.Compare(s.UnsafeString(), str)
}

// Hash writes the text to h like maphash.Hash.WriteString.
func (s *String[A, L]) Hash(h *maphash.Hash) {
	h.Write(s.vec.live())
}

// Take moves the text to a new string, leaving the receiver empty.
func (s *String[A, L]) Take() String[A, L] {
	return String[A, L]{s.vec.Take()}
}
