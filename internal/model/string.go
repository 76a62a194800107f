// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"strings"
	"unicode/utf8"

	"gate.computer/fixed"
	errors "golang.org/x/xerrors"
)

type String = fixed.String[[StringCap]byte, uint8]

const (
	opStrPush = iota
	opStrPushStr
	opStrPop
	opStrTruncate
	opStrRemove
	opStrInsert
	opStrInsertStr
	opStrClear
	opStrWrite
	opStrWriteInvalid
	numStringOps
)

var stringOpNames = [numStringOps]string{
	"push",
	"push str",
	"pop",
	"truncate",
	"remove",
	"insert",
	"insert str",
	"clear",
	"write",
	"write invalid",
}

// StringModel compares a String with a string.  The String may be located
// outside of the Go heap.
type StringModel struct {
	Str *String
	ref string
}

func NewStringModel(s *String) *StringModel {
	return &StringModel{Str: s, ref: s.String()}
}

// Len of the reference.
func (m *StringModel) Len() int {
	return len(m.ref)
}

// Step decodes and applies one operation.
func (m *StringModel) Step(r *Reader) error {
	op := r.Int(numStringOps)
	if err := m.step(op, r); err != nil {
		return errors.Errorf("%s: %w", stringOpNames[op], err)
	}
	if err := m.Check(); err != nil {
		return errors.Errorf("%s: %w", stringOpNames[op], err)
	}
	return nil
}

func (m *StringModel) step(op int, r *Reader) error {
	s := m.Str
	n := len(m.ref)

	switch op {
	case opStrPush:
		c := r.Rune()
		enc := string(c)
		err := catch(func() { s.Push(c) })
		if n+len(enc) <= StringCap {
			if err != nil {
				return err
			}
			m.ref += enc
		} else if x, ok := fixed.Rejected[rune](err); !ok || x != c {
			return errors.Errorf("rejected rune mismatch: %v", err)
		}

	case opStrPushStr:
		str := r.String()
		err := s.TryPushStr(str)
		if n+len(str) <= StringCap {
			if err != nil {
				return err
			}
			m.ref += str
		} else if x, ok := fixed.Rejected[string](err); !ok || x != str {
			return errors.Errorf("rejected string mismatch: %v", err)
		}

	case opStrPop:
		c, ok := s.Pop()
		if ok != (n > 0) {
			return errors.Errorf("ok = %v at length %d", ok, n)
		}
		if ok {
			want, size := utf8.DecodeLastRuneInString(m.ref)
			if c != want {
				return errors.Errorf("popped %U, expected %U", c, want)
			}
			m.ref = m.ref[:n-size]
		}

	case opStrTruncate:
		l := r.Int(StringCap + 1)
		e := catchIndex(func() { s.Truncate(l) })
		switch {
		case l >= n:
			if e != nil {
				return e
			}
		case utf8.RuneStart(m.ref[l]):
			if e != nil {
				return e
			}
			m.ref = m.ref[:l]
		default:
			if e == nil {
				return errors.Errorf("truncation at %d did not panic", l)
			}
		}

	case opStrRemove:
		i := r.Int(n + 1)
		var c rune
		e := catchIndex(func() { c = s.Remove(i) })
		switch {
		case i == n:
			if e == nil || e.Reason != "cannot remove a char from the end of a string" {
				return errors.Errorf("removal at end: %v", e)
			}
		case utf8.RuneStart(m.ref[i]):
			if e != nil {
				return e
			}
			want, size := utf8.DecodeRuneInString(m.ref[i:])
			if c != want {
				return errors.Errorf("removed %U, expected %U", c, want)
			}
			m.ref = m.ref[:i] + m.ref[i+size:]
		default:
			if e == nil {
				return errors.Errorf("removal at %d did not panic", i)
			}
		}

	case opStrInsert, opStrInsertStr:
		i := r.Int(n + 1)

		var (
			str string
			err error
		)
		if op == opStrInsert {
			c := r.Rune()
			str = string(c)
			e := catchIndex(func() { err = s.TryInsert(i, c) })
			if e != nil {
				if m.boundary(i) {
					return e
				}
				break
			}
		} else {
			str = r.String()
			e := catchIndex(func() { err = s.TryInsertStr(i, str) })
			if e != nil {
				if m.boundary(i) {
					return e
				}
				break
			}
		}

		if !m.boundary(i) {
			return errors.Errorf("insertion at %d did not panic", i)
		}
		if n+len(str) <= StringCap {
			if err != nil {
				return err
			}
			m.ref = m.ref[:i] + str + m.ref[i:]
		} else if !errors.Is(err, fixed.ErrCapacity) {
			return errors.Errorf("capacity error expected: %v", err)
		}

	case opStrClear:
		s.Clear()
		m.ref = ""

	case opStrWrite:
		str := r.String()
		written, err := s.Write([]byte(str))
		if err != nil {
			return err
		}
		want := fitPrefix(str, StringCap-n)
		if written != len(want) {
			return errors.Errorf("wrote %d bytes, expected %d", written, len(want))
		}
		m.ref += want

	case opStrWriteInvalid:
		written, err := s.WriteString("\xff" + r.String())
		if written != 0 || !errors.Is(err, fixed.ErrInvalidUTF8) {
			return errors.Errorf("invalid write: %d, %v", written, err)
		}
	}

	return nil
}

func (m *StringModel) boundary(i int) bool {
	return i == len(m.ref) || utf8.RuneStart(m.ref[i])
}

// fitPrefix returns the characters of s which fit in n bytes.
func fitPrefix(s string, n int) string {
	var b strings.Builder
	for _, c := range s {
		if b.Len()+utf8.RuneLen(c) > n {
			break
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Check that the string matches the reference and dead bytes are zero.
func (m *StringModel) Check() error {
	s := m.Str

	if s.Len() != len(m.ref) {
		return errors.Errorf("length %d, expected %d", s.Len(), len(m.ref))
	}
	if !s.Equal(m.ref) {
		return errors.Errorf("text %q, expected %q", s.UnsafeString(), m.ref)
	}
	if !utf8.Valid(s.Bytes()) {
		return errors.New("invalid UTF-8")
	}
	for i, b := range s.Storage()[s.Len():] {
		if b != 0 {
			return errors.Errorf("dead byte %d is %#x", s.Len()+i, b)
		}
	}
	return nil
}

// RunString applies the operations encoded in data to a StringModel.  It
// returns the number of operations applied.
func RunString(data []byte) (int, error) {
	var s String
	return RunStringAt(&s, data)
}

// RunStringAt is like RunString, but uses the given string.
func RunStringAt(s *String, data []byte) (int, error) {
	m := NewStringModel(s)
	r := NewReader(data)

	n := 0
	for r.More() {
		if err := m.Step(r); err != nil {
			return n, errors.Errorf("operation %d: %w", n, err)
		}
		n++
	}
	return n, nil
}
