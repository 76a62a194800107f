// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixed

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

type record struct {
	Name Str[[8]byte]                       `json:"name" yaml:"name"`
	Tags Vec[Str[[4]byte], [2]Str[[4]byte]] `json:"tags" yaml:"tags"`
	Nums Vector[int, [3]int, uint8]         `json:"nums" yaml:"nums"`
}

func TestJSONRoundTrip(t *testing.T) {
	var r record
	r.Name.PushStr("näme")
	r.Tags.Push(Str[[4]byte]{})
	r.Tags.Push(Str[[4]byte]{})
	r.Tags.Storage()[0].PushStr("a")
	r.Tags.Storage()[1].PushStr("bc")
	r.Nums.ExtendFromSlice([]int{1, 2})

	data, err := json.Marshal(&r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"näme","tags":["a","bc"],"nums":[1,2]}`, string(data))

	var r2 record
	require.NoError(t, json.Unmarshal(data, &r2))
	assert.Equal(t, "näme", r2.Name.String())
	assert.Equal(t, 2, r2.Tags.Len())
	assert.Equal(t, "bc", r2.Tags.At(1).String())
	assert.Equal(t, []int{1, 2}, r2.Nums.Slice())
}

func TestJSONEmpty(t *testing.T) {
	var v Vec[int, [3]int]
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	v.Push(7)
	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	assert.True(t, v.IsEmpty())
}

func TestJSONTooLong(t *testing.T) {
	var v Vec[int, [2]int]
	v.Push(42)

	err := json.Unmarshal([]byte("[1, 2, 3]"), &v)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	assert.EqualError(t, err, "invalid length 3, expected an array with no more than 2 items")
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, []int{42}, v.Slice())

	var s Str[[2]byte]
	err = json.Unmarshal([]byte(`"abc"`), &s)
	assert.EqualError(t, err, "invalid length 3, expected a string with no more than 2 bytes")
}

func TestJSONMalformed(t *testing.T) {
	var v Vec[int, [4]int]
	v.Push(42)

	for _, input := range []string{
		`{"a": 1}`,
		`[1, "x"]`,
		`[1, 2`,
		`"str"`,
	} {
		assert.Error(t, v.UnmarshalJSON([]byte(input)), input)
		assert.Equal(t, []int{42}, v.Slice(), input)
	}

	var s Str[[4]byte]
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &s))
}

func TestJSONDropsOnFailure(t *testing.T) {
	var v Vec[Vec[int, [1]int], [2]Vec[int, [1]int]]
	err := json.Unmarshal([]byte(`[[1], [2, 3]]`), &v)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.True(t, v.IsEmpty())
}

func TestYAML(t *testing.T) {
	var r record
	r.Name.PushStr("x")
	r.Nums.ExtendFromSlice([]int{3, 4, 5})

	data, err := yaml.Marshal(&r)
	require.NoError(t, err)
	assert.Equal(t, "name: x\ntags: []\nnums:\n    - 3\n    - 4\n    - 5\n", string(data))

	var r2 record
	require.NoError(t, yaml.Unmarshal(data, &r2))
	assert.Equal(t, "x", r2.Name.String())
	assert.Equal(t, []int{3, 4, 5}, r2.Nums.Slice())
	assert.True(t, r2.Tags.IsEmpty())

	err = yaml.Unmarshal([]byte("nums: [1, 2, 3, 4]"), &r2)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 4, lenErr.Len)
	assert.Equal(t, 3, lenErr.Cap)
	assert.Equal(t, []int{3, 4, 5}, r2.Nums.Slice())

	err = yaml.Unmarshal([]byte("name: way too long"), &r2)
	assert.True(t, xerrors.As(err, &lenErr))
	assert.Equal(t, "x", r2.Name.String())

	assert.Error(t, yaml.Unmarshal([]byte("nums: {a: 1}"), &r2))
	assert.Error(t, yaml.Unmarshal([]byte("name: [a]"), &r2))
	assert.Error(t, yaml.Unmarshal([]byte("nums: [a]"), &r2))
}

func TestText(t *testing.T) {
	var s Str[[4]byte]
	require.NoError(t, s.UnmarshalText([]byte("äö")))
	assert.Equal(t, "äö", s.String())

	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "äö", string(text))

	assert.ErrorIs(t, s.UnmarshalText([]byte{0xff}), ErrInvalidUTF8)
	assert.ErrorIs(t, s.UnmarshalText([]byte("abcde")), ErrCapacity)
	assert.Equal(t, "äö", s.String())
}

func TestTOML(t *testing.T) {
	var config struct {
		Name Str[[8]byte]
	}

	_, err := toml.Decode(`Name = "fixed"`, &config)
	require.NoError(t, err)
	assert.Equal(t, "fixed", config.Name.String())

	_, err = toml.Decode(`Name = "much too long"`, &config)
	assert.Error(t, err)
	assert.Equal(t, "fixed", config.Name.String())
}
