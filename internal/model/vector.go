// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"maps"
	"slices"

	"gate.computer/fixed"
	errors "golang.org/x/xerrors"
)

// Item is an element which records its drops.
type Item struct {
	ID      uint32
	tracker *Tracker
}

func (x Item) Drop() {
	x.tracker.drops[x.ID]++
}

// Tracker allocates item ids and counts drops.
type Tracker struct {
	drops map[uint32]int
	next  uint32
}

type Vector = fixed.Vector[Item, [VectorCap]Item, uint8]

const (
	opPush = iota
	opTryPush
	opPop
	opInsert
	opRemove
	opSwapRemove
	opTruncate
	opClear
	opRetain
	opRetainPanic
	opDrain
	opExtend
	opSplice
	opIntoIter
	opSet
	numVectorOps
)

var vectorOpNames = [numVectorOps]string{
	"push",
	"try push",
	"pop",
	"insert",
	"remove",
	"swap remove",
	"truncate",
	"clear",
	"retain",
	"retain panic",
	"drain",
	"extend",
	"splice",
	"into iter",
	"set",
}

// VectorModel compares a Vector with a slice.
type VectorModel struct {
	Vec      Vector
	ref      []Item
	tracker  Tracker
	expected map[uint32]int
}

func NewVectorModel() *VectorModel {
	return &VectorModel{
		tracker:  Tracker{drops: make(map[uint32]int)},
		expected: make(map[uint32]int),
	}
}

// Len of the reference.
func (m *VectorModel) Len() int {
	return len(m.ref)
}

func (m *VectorModel) newItem() Item {
	m.tracker.next++
	return Item{m.tracker.next, &m.tracker}
}

func (m *VectorModel) newItems(n int) []Item {
	xs := make([]Item, n)
	for i := range xs {
		xs[i] = m.newItem()
	}
	return xs
}

func (m *VectorModel) expectDrop(xs ...Item) {
	for _, x := range xs {
		m.expected[x.ID]++
	}
}

// Step decodes and applies one operation.
func (m *VectorModel) Step(r *Reader) error {
	op := r.Int(numVectorOps)
	if err := m.step(op, r); err != nil {
		return errors.Errorf("%s: %w", vectorOpNames[op], err)
	}
	if err := m.Check(); err != nil {
		return errors.Errorf("%s: %w", vectorOpNames[op], err)
	}
	return nil
}

func (m *VectorModel) step(op int, r *Reader) error {
	v := &m.Vec
	n := len(m.ref)

	switch op {
	case opPush:
		x := m.newItem()
		err := catch(func() { v.Push(x) })
		if n < VectorCap {
			if err != nil {
				return err
			}
			m.ref = append(m.ref, x)
		} else if err := checkRejected(err, x); err != nil {
			return err
		}

	case opTryPush:
		x := m.newItem()
		err := v.TryPush(x)
		if n < VectorCap {
			if err != nil {
				return err
			}
			m.ref = append(m.ref, x)
		} else if err := checkRejected(err, x); err != nil {
			return err
		}

	case opPop:
		x, ok := v.Pop()
		if ok != (n > 0) {
			return errors.Errorf("ok = %v at length %d", ok, n)
		}
		if ok {
			if x != m.ref[n-1] {
				return errors.Errorf("popped %d, expected %d", x.ID, m.ref[n-1].ID)
			}
			m.ref = m.ref[:n-1]
		}

	case opInsert:
		i := r.Int(n + 1)
		x := m.newItem()
		err := v.TryInsert(i, x)
		if n < VectorCap {
			if err != nil {
				return err
			}
			m.ref = slices.Insert(m.ref, i, x)
		} else if err := checkRejected(err, x); err != nil {
			return err
		}

	case opRemove:
		if n == 0 {
			if e := catchIndex(func() { v.Remove(0) }); e == nil {
				return errors.New("removal from empty vector did not panic")
			}
			break
		}
		i := r.Int(n)
		if x := v.Remove(i); x != m.ref[i] {
			return errors.Errorf("removed %d, expected %d", x.ID, m.ref[i].ID)
		}
		m.ref = slices.Delete(m.ref, i, i+1)

	case opSwapRemove:
		i := r.Int(n)
		x, ok := v.SwapPop(i)
		if ok != (n > 0) {
			return errors.Errorf("ok = %v at length %d", ok, n)
		}
		if ok {
			if x != m.ref[i] {
				return errors.Errorf("removed %d, expected %d", x.ID, m.ref[i].ID)
			}
			m.ref[i] = m.ref[n-1]
			m.ref = m.ref[:n-1]
		}

	case opTruncate:
		l := r.Int(VectorCap + 1)
		v.Truncate(l)
		if l < n {
			m.expectDrop(m.ref[l:]...)
			m.ref = m.ref[:l]
		}

	case opClear:
		v.Clear()
		m.expectDrop(m.ref...)
		m.ref = nil

	case opRetain:
		k := uint32(r.Byte())
		keep := func(x Item) bool { return (x.ID+k)%3 != 0 }
		v.Retain(func(p *Item) bool { return keep(*p) })
		m.ref = m.retain(m.ref, keep)

	case opRetainPanic:
		k := uint32(r.Byte())
		at := r.Int(n + 1)
		keep := func(x Item) bool { return (x.ID+k)%3 != 0 }
		if err := retainPanic(v, keep, at); err != nil {
			return err
		}
		m.ref = append(m.retain(m.ref[:at:at], keep), m.ref[at:]...)

	case opDrain:
		start := r.Int(n + 1)
		end := start + r.Int(n-start+1)
		consume := r.Int(end - start + 1)

		d := v.Drain(start, end)
		front, back := start, end
		for range consume {
			var (
				x    Item
				want Item
			)
			if r.Bool() {
				back--
				x, _ = d.NextBack()
				want = m.ref[back]
			} else {
				x, _ = d.Next()
				want = m.ref[front]
				front++
			}
			if x != want {
				return errors.Errorf("drained %d, expected %d", x.ID, want.ID)
			}
		}
		if d.Len() != back-front {
			return errors.Errorf("drain length %d, expected %d", d.Len(), back-front)
		}
		d.Close()

		m.expectDrop(m.ref[front:back]...)
		m.ref = slices.Delete(m.ref, start, end)

	case opExtend:
		xs := m.newItems(r.Int(VectorCap + 2))
		if r.Bool() {
			err := v.TryExtendFromSlice(xs)
			if n+len(xs) <= VectorCap {
				if err != nil {
					return err
				}
				m.ref = append(m.ref, xs...)
			} else if err := checkRejectedSlice(err, xs); err != nil {
				return err
			}
		} else {
			err := catch(func() { v.Extend(slices.Values(xs)) })
			if fit := VectorCap - n; len(xs) > fit {
				if err := checkRejected(err, xs[fit]); err != nil {
					return err
				}
				xs = xs[:fit]
			} else if err != nil {
				return err
			}
			m.ref = append(m.ref, xs...)
		}

	case opSplice:
		start := r.Int(n + 1)
		end := start + r.Int(n-start+1)
		xs := m.newItems(r.Int(5))
		err := v.TrySplice(start, end, xs...)
		if n-(end-start)+len(xs) <= VectorCap {
			if err != nil {
				return err
			}
			m.expectDrop(m.ref[start:end]...)
			m.ref = slices.Replace(m.ref, start, end, xs...)
		} else if err := checkRejectedSlice(err, xs); err != nil {
			return err
		}

	case opIntoIter:
		it := v.IntoIter()
		if !v.IsEmpty() {
			return errors.New("vector not empty after IntoIter")
		}
		front, back := 0, n
		for range r.Int(n + 1) {
			var (
				x    Item
				want Item
			)
			if r.Bool() {
				back--
				x, _ = it.NextBack()
				want = m.ref[back]
			} else {
				x, _ = it.Next()
				want = m.ref[front]
				front++
			}
			if x != want {
				return errors.Errorf("iterated %d, expected %d", x.ID, want.ID)
			}
		}
		it.Close()
		m.expectDrop(m.ref[front:back]...)
		m.ref = nil

	case opSet:
		if n == 0 {
			break
		}
		i := r.Int(n)
		x := m.newItem()
		v.Set(i, x)
		m.expectDrop(m.ref[i])
		m.ref[i] = x
	}

	return nil
}

func (m *VectorModel) retain(xs []Item, keep func(Item) bool) []Item {
	return slices.DeleteFunc(xs, func(x Item) bool {
		if keep(x) {
			return false
		}
		m.expectDrop(x)
		return true
	})
}

type retainPanicValue struct{}

// retainPanic calls Retain with a predicate which panics at the given
// position.
func retainPanic(v *Vector, keep func(Item) bool, at int) (err error) {
	defer func() {
		if x := recover(); x != nil && x != (retainPanicValue{}) {
			panic(x)
		}
	}()

	i := 0
	v.Retain(func(p *Item) bool {
		if v.Len() != 0 {
			err = errors.Errorf("vector length %d during retain", v.Len())
		}
		if i == at {
			panic(retainPanicValue{})
		}
		i++
		return keep(*p)
	})
	return
}

// Check that the vector matches the reference, dead slots are zero, and
// expected drops have happened exactly once.
func (m *VectorModel) Check() error {
	v := &m.Vec

	if v.Len() != len(m.ref) {
		return errors.Errorf("length %d, expected %d", v.Len(), len(m.ref))
	}
	if !slices.Equal(v.Slice(), m.ref) {
		return errors.Errorf("elements %v, expected %v", ids(v.Slice()), ids(m.ref))
	}
	for i, x := range v.Storage()[v.Len():] {
		if x != (Item{}) {
			return errors.Errorf("dead slot %d holds item %d", v.Len()+i, x.ID)
		}
	}
	if !maps.Equal(m.tracker.drops, m.expected) {
		return errors.Errorf("drops %v, expected %v", m.tracker.drops, m.expected)
	}
	return nil
}

// Finish drops the remaining elements and checks the result.
func (m *VectorModel) Finish() error {
	m.Vec.Drop()
	m.expectDrop(m.ref...)
	m.ref = nil
	return m.Check()
}

func checkRejected(err error, x Item) error {
	if err == nil {
		return errors.New("capacity error expected")
	}
	if y, ok := fixed.Rejected[Item](err); !ok || y != x {
		return errors.Errorf("rejected element mismatch: %w", err)
	}
	if !errors.Is(err, fixed.ErrCapacity) {
		return errors.Errorf("not a capacity error: %w", err)
	}
	return nil
}

func checkRejectedSlice(err error, xs []Item) error {
	if err == nil {
		return errors.New("capacity error expected")
	}
	if ys, ok := fixed.Rejected[[]Item](err); !ok || !slices.Equal(ys, xs) {
		return errors.Errorf("rejected elements mismatch: %w", err)
	}
	return nil
}

func ids(xs []Item) []uint32 {
	s := make([]uint32, len(xs))
	for i, x := range xs {
		s[i] = x.ID
	}
	return s
}

// RunVector applies the operations encoded in data to a VectorModel.  It
// returns the number of operations applied.
func RunVector(data []byte) (int, error) {
	m := NewVectorModel()
	r := NewReader(data)

	n := 0
	for r.More() {
		if err := m.Step(r); err != nil {
			return n, errors.Errorf("operation %d: %w", n, err)
		}
		n++
	}

	if err := m.Finish(); err != nil {
		return n, errors.Errorf("finish: %w", err)
	}
	return n, nil
}
