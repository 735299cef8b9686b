// Package vec provides a generic growable buffer with an explicit,
// deterministic capacity policy (power-of-two growth, hysteresis-based shrink,
// manual release).
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package vec

import (
	"fmt"

	"github.com/kitbag/kitbag/cmn/debug"
)

// Vec is a length/capacity-tracking buffer of T. The zero value is an empty
// buffer ready for use; no allocation happens until the first element goes in.
// A Vec must not be used concurrently without external locking.
type Vec[T any] struct {
	buf []T
}

// startCap is the initial capacity of a buffer that grows from empty.
const startCap = 32

func (v *Vec[T]) Len() int { return len(v.buf) }
func (v *Vec[T]) Cap() int { return cap(v.buf) }

// At returns the i-th element; the index must be in [0, Len()).
func (v *Vec[T]) At(i int) T {
	if i < 0 || i >= len(v.buf) {
		panic(oob("at", i, len(v.buf)))
	}
	return v.buf[i]
}

// Slice returns a live view of the contents, valid until the next growth.
func (v *Vec[T]) Slice() []T { return v.buf }

// Push appends one element, growing as needed.
func (v *Vec[T]) Push(val T) {
	l := len(v.buf)
	v.grow(l + 1)
	v.buf = v.buf[:l+1]
	v.buf[l] = val
}

// Pop removes and returns the last element; on an empty buffer it is a no-op
// returning (zero, false).
func (v *Vec[T]) Pop() (val T, ok bool) {
	l := len(v.buf)
	if l == 0 {
		return
	}
	val, ok = v.buf[l-1], true
	var zero T
	v.buf[l-1] = zero
	v.buf = v.buf[:l-1]
	return
}

// Insert places val at position i, shifting the tail right; i must be
// in [0, Len()] (i == Len() appends).
func (v *Vec[T]) Insert(i int, val T) {
	l := len(v.buf)
	if i < 0 || i > l {
		panic(oob("insert", i, l))
	}
	v.grow(l + 1)
	v.buf = v.buf[:l+1]
	copy(v.buf[i+1:], v.buf[i:l])
	v.buf[i] = val
}

// Erase removes the element at position i, shifting the tail left.
// No-op on an empty buffer; otherwise i must be in [0, Len()).
func (v *Vec[T]) Erase(i int) {
	l := len(v.buf)
	if l == 0 {
		return
	}
	if i < 0 || i >= l {
		panic(oob("erase", i, l))
	}
	copy(v.buf[i:], v.buf[i+1:])
	var zero T
	v.buf[l-1] = zero
	v.buf = v.buf[:l-1]
}

// Append adds all vs at the end, growing at most once.
func (v *Vec[T]) Append(vs ...T) {
	l := len(v.buf)
	v.grow(l + len(vs))
	v.buf = v.buf[:l+len(vs)]
	copy(v.buf[l:], vs)
}

// Concat appends o's elements to the receiver; o is not modified.
// Self-concat is permitted.
func (v *Vec[T]) Concat(o *Vec[T]) { v.Append(o.buf...) }

// Clear drops all elements but keeps the storage.
func (v *Vec[T]) Clear() {
	clear(v.buf)
	v.buf = v.buf[:0]
}

// Shrink gives back roughly a third of the capacity, and only when the
// contents leave that much headroom; an empty buffer releases entirely.
// Growth is automatic, shrinking is always this explicit call.
func (v *Vec[T]) Shrink() {
	l, c := len(v.buf), cap(v.buf)
	if l == 0 {
		v.Free()
		return
	}
	ncap := c - c/3
	if l > ncap {
		return
	}
	debug.Assert(ncap >= l)
	nbuf := make([]T, l, ncap)
	copy(nbuf, v.buf)
	v.buf = nbuf
}

// Free releases the storage and resets to the zero value; idempotent.
func (v *Vec[T]) Free() { v.buf = nil }

// private

// grow reallocates to the smallest power-of-two capacity that fits toLen,
// never below startCap; no-op when the current capacity suffices.
func (v *Vec[T]) grow(toLen int) {
	if toLen <= cap(v.buf) {
		return
	}
	c := startCap
	for c < toLen {
		c <<= 1
	}
	nbuf := make([]T, len(v.buf), c)
	copy(nbuf, v.buf)
	v.buf = nbuf
}

func oob(op string, i, l int) string {
	return fmt.Sprintf("vec: %s index %d out of range (length %d)", op, i, l)
}
