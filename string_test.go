// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"fmt"
	"hash/maphash"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type str16 = Str[[16]byte]

func TestStringZeroValue(t *testing.T) {
	var s str16
	assert.Equal(t, "", s.String())
	assert.Equal(t, 16, s.Cap())
	assert.True(t, s.IsEmpty())
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestStringPushStr(t *testing.T) {
	s, err := StringFrom[[16]byte, uint8]("foo")
	require.NoError(t, err)
	s.PushStr("-bar")
	assert.Equal(t, "foo-bar", s.String())
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, 9, s.Remaining())
}

func TestStringPushNoFit(t *testing.T) {
	var s Str[[5]byte]
	s.PushStr("abc")

	err := s.TryPush('€')
	var capErr *CapacityError[rune]
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, '€', capErr.Element)
	assert.Equal(t, 3, capErr.Need)
	assert.Equal(t, 2, capErr.Available)
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0}, s.Storage())

	s.Push('ä')
	assert.Equal(t, "abcä", s.String())
	assert.True(t, s.IsFull())

	err = catch(func() { s.Push('x') })
	assert.ErrorIs(t, err, ErrCapacity)

	err = s.TryPushStr("x")
	x, ok := Rejected[string](err)
	assert.True(t, ok)
	assert.Equal(t, "x", x)

	err = catch(func() { s.PushStr("x") })
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestStringInvalidRune(t *testing.T) {
	var s str16
	s.Push(0xd800)
	s.Push(-1)
	assert.Equal(t, "��", s.String())
	assert.True(t, utf8.Valid(s.Bytes()))

	s.Clear()
	s.PushStr("a\xffb")
	assert.Equal(t, "a�b", s.String())
}

func TestStringFrom(t *testing.T) {
	_, err := StringFrom[[4]byte, uint8]("hello")
	x, ok := Rejected[string](err)
	assert.True(t, ok)
	assert.Equal(t, "hello", x)

	s, err := StringFromBytes[[8]byte, uint8]([]byte("hyvä"))
	require.NoError(t, err)
	assert.Equal(t, "hyvä", s.String())

	_, err = StringFromBytes[[8]byte, uint8]([]byte{'a', 0xc3})
	assert.ErrorIs(t, err, ErrInvalidUTF8)

	_, err = StringFromBytes[[2]byte, uint8]([]byte("abc"))
	assert.ErrorIs(t, err, ErrCapacity)

	z := ZeroFilledString[[3]byte, uint8]()
	assert.Equal(t, "\x00\x00\x00", z.String())
	assert.True(t, z.IsFull())
}

func TestStringPop(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint32]("a€😀")

	r, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, '😀', r)
	r, _ = s.Pop()
	assert.Equal(t, '€', r)
	assert.Equal(t, "a", s.String())
	assert.Equal(t, make([]byte, 15), s.Storage()[1:])
}

func TestStringTruncate(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint32]("aäb")

	s.Truncate(10)
	assert.Equal(t, "aäb", s.String())

	e := requireIndexPanic(t, func() { s.Truncate(2) })
	assert.Equal(t, "not a char boundary", e.Reason)
	assert.Equal(t, "aäb", s.String())

	s.Truncate(1)
	assert.Equal(t, "a", s.String())
	assert.Equal(t, byte(0), s.Storage()[1])
}

func TestStringRemove(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint32]("aäb€")

	assert.Equal(t, 'ä', s.Remove(1))
	assert.Equal(t, "ab€", s.String())
	assert.Equal(t, '€', s.Remove(2))
	assert.Equal(t, "ab", s.String())
	assert.Equal(t, make([]byte, 14), s.Storage()[2:])

	e := requireIndexPanic(t, func() { s.Remove(2) })
	assert.Equal(t, "cannot remove a char from the end of a string", e.Reason)

	e = requireIndexPanic(t, func() { s.Remove(3) })
	assert.Empty(t, e.Reason)

	s.PushStr("ä")
	e = requireIndexPanic(t, func() { s.Remove(3) })
	assert.Equal(t, "not a char boundary", e.Reason)
}

func TestStringInsert(t *testing.T) {
	var s Str[[8]byte]
	s.Insert(0, 'b')
	s.Insert(0, 'ä')
	s.Insert(3, '€')
	assert.Equal(t, "äb€", s.String())

	s.InsertStr(2, "-")
	assert.Equal(t, "ä-b€", s.String())

	err := s.TryInsert(0, '€')
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, "ä-b€", s.String())

	err = s.TryInsertStr(0, "xy")
	x, ok := Rejected[string](err)
	assert.True(t, ok)
	assert.Equal(t, "xy", x)

	requireIndexPanic(t, func() { s.Insert(1, 'x') })
	requireIndexPanic(t, func() { s.InsertStr(9, "") })

	s.Insert(7, 'x')
	assert.Equal(t, "ä-b€x", s.String())
	assert.True(t, s.IsFull())
}

func TestStringViews(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint8]("abc")

	copied := s.String()
	alias := s.UnsafeString()
	s.Clear()
	s.PushStr("xyz")

	assert.Equal(t, "abc", copied)
	assert.Equal(t, "xyz", alias)
	assert.Equal(t, []byte("xyz"), s.Bytes())
	assert.Equal(t, 3, cap(s.Bytes()))
}

func TestStringCompare(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint8]("abc")

	assert.True(t, s.Equal("abc"))
	assert.False(t, s.Equal("abd"))
	assert.Equal(t, -1, s.Compare("abd"))
	assert.Equal(t, 1, s.Compare("ab"))

	seed := maphash.MakeSeed()
	var h maphash.Hash
	h.SetSeed(seed)
	s.Hash(&h)
	assert.Equal(t, maphash.String(seed, "abc"), h.Sum64())
}

func TestStringFormat(t *testing.T) {
	s, _ := StringFrom[[16]byte, uint8]("a\"b")
	assert.Equal(t, "a\"b", fmt.Sprint(s))
	assert.Equal(t, `"a\"b"`, fmt.Sprintf("%q", s))
	assert.Equal(t, "a\"b", fmt.Sprint(&s))
}

func TestStringSetLen(t *testing.T) {
	var s str16
	n := copy(s.Storage(), "hello")
	s.SetLen(n)
	assert.Equal(t, "hello", s.String())
}

func TestStringWrite(t *testing.T) {
	var s Str[[6]byte]

	n, err := s.Write([]byte("ab"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Only a whole character is copied.
	n, err = s.Write([]byte("c€d"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "abc€", s.String())

	n, err = s.Write([]byte("\xff"))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	assert.Equal(t, 0, n)

	s.Clear()
	n, err = s.WriteString("xyzä€")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "xyzä", s.String())

	require.NoError(t, s.WriteByte('!'))
	assert.ErrorIs(t, s.WriteByte('?'), ErrCapacity)

	s.Clear()
	assert.ErrorIs(t, s.WriteByte(0xc3), ErrInvalidUTF8)
	n, err = s.WriteRune('€')
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = s.WriteRune('😀')
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 0, n)
}

func TestStringCopy(t *testing.T) {
	var s Str[[8]byte]

	n, err := io.Copy(&s, strings.NewReader("hello, world"))
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, "hello, w", s.String())

	_, err = fmt.Fprintf(&s, "x")
	require.NoError(t, err)
}

func TestByteWriter(t *testing.T) {
	var v Vector[byte, [8]byte, uint8]
	w := Writer(&v)

	n, err := w.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = w.WriteString("abcdefgh")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte{1, 2, 3, 'a', 'b', 'c', 'd', 'e'}, v.Slice())

	n, err = w.Write([]byte{4})
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	x, ok := Rejected[byte](w.WriteByte(5))
	assert.True(t, ok)
	assert.Equal(t, byte(5), x)

	v.Clear()
	fmt.Fprintf(w, "%d-%s", 42, "xyz")
	assert.Equal(t, "42-xyz", string(w.Vector().Slice()))
}
