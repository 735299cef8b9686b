// Package sbuf provides a string builder whose storage doubles as a C-style
// NUL-terminated byte string.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package sbuf

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kitbag/kitbag/cmn/debug"
	"github.com/kitbag/kitbag/vec"
)

// implementation:
// - content bytes followed by exactly one NUL, stored in a vec.Vec[byte]
// - single-threaded; grows by vec's power-of-two policy
// motivation:
// - built text that is directly usable across terminated-string boundaries
// usage:
// - transient formatting; erase-to-empty releases the storage entirely

type Builder struct {
	b vec.Vec[byte]
}

// interface guard
var _ io.Writer = (*Builder)(nil)

// New formats per fmt.Sprintf and returns a Builder holding the result.
// Any content width is accommodated; New("") is the empty builder.
func New(format string, a ...any) *Builder {
	sb := &Builder{}
	sb.InsertString(fmt.Sprintf(format, a...), 0)
	return sb
}

// Len returns the content length, terminator excluded.
func (sb *Builder) Len() int {
	if l := sb.b.Len(); l > 0 {
		return l - 1
	}
	return 0
}

// Size returns the stored length: content plus terminator, 0 when empty.
func (sb *Builder) Size() int { return sb.b.Len() }
func (sb *Builder) Cap() int  { return sb.b.Cap() }

// String returns a copy of the content.
func (sb *Builder) String() string { return string(sb.Bytes()) }

// Bytes returns a live view of the content without the terminator,
// valid until the next mutation.
func (sb *Builder) Bytes() []byte {
	if l := sb.b.Len(); l > 0 {
		return sb.b.Slice()[:l-1]
	}
	return nil
}

// Terminated returns the content including the trailing NUL (the C-string
// form); nil when the builder is empty.
func (sb *Builder) Terminated() []byte { return sb.b.Slice() }

func (sb *Builder) AppendString(s string) { sb.InsertString(s, sb.Len()) }
func (sb *Builder) AppendChar(c byte)     { sb.InsertChar(c, sb.Len()) }
func (sb *Builder) AppendInt(i int)       { sb.InsertInt(i, sb.Len()) }
func (sb *Builder) AppendFloat(f float64) { sb.InsertFloat(f, sb.Len()) }

// InsertString places s at content position pos in [0, Len()].
func (sb *Builder) InsertString(s string, pos int) {
	sb.check(pos)
	if s == "" {
		return
	}
	if sb.b.Len() == 0 {
		sb.b.Append([]byte(s)...)
		sb.b.Push(0)
		return
	}
	// extend at the end, then move the tail (terminator included) out of the way
	old := sb.b.Len()
	sb.b.Append([]byte(s)...)
	buf := sb.b.Slice()
	copy(buf[pos+len(s):], buf[pos:old])
	copy(buf[pos:], s)
}

func (sb *Builder) InsertChar(c byte, pos int) {
	sb.check(pos)
	if sb.b.Len() == 0 {
		sb.b.Push(c)
		sb.b.Push(0)
		return
	}
	sb.b.Insert(pos, c)
}

// InsertInt inserts the base-10 form; width follows the value.
func (sb *Builder) InsertInt(i, pos int) { sb.InsertString(strconv.Itoa(i), pos) }

// InsertFloat inserts the fixed-point form with 6 decimals.
func (sb *Builder) InsertFloat(f float64, pos int) {
	sb.InsertString(strconv.FormatFloat(f, 'f', 6, 64), pos)
}

// Write appends p; always succeeds.
func (sb *Builder) Write(p []byte) (int, error) {
	sb.InsertString(string(p), sb.Len())
	return len(p), nil
}

// Erase removes one content byte at pos in [0, Len()); no-op when empty.
// Erasing the last remaining byte releases the storage entirely.
func (sb *Builder) Erase(pos int) {
	l := sb.Len()
	if l == 0 {
		return
	}
	if pos < 0 || pos >= l {
		panic(fmt.Sprintf("sbuf: erase index %d out of range (length %d)", pos, l))
	}
	if l == 1 {
		sb.b.Free()
		return
	}
	sb.b.Erase(pos)
	debug.Assert(sb.b.At(sb.b.Len()-1) == 0)
}

// Free releases the storage; idempotent.
func (sb *Builder) Free() { sb.b.Free() }

func (sb *Builder) check(pos int) {
	if l := sb.Len(); pos < 0 || pos > l {
		panic(fmt.Sprintf("sbuf: insert index %d out of range (length %d)", pos, l))
	}
}
