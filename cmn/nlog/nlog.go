// Package nlog - kitbag logger, provides buffering, timestamping, and writing
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package nlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/kitbag/kitbag/cmn/debug"
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

const nlogLineSize = 4 * 1024

const poolMaxLines = 1024

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr

	pool      sync.Pool
	poolCount int
)

// assemble the line in a pooled buffer, write it out whole
func log(sev severity, depth int, format string, args ...any) {
	fb := alloc()
	sprintf(sev, depth, format, fb, args...)

	mu.Lock()
	out.Write(fb.buf[:fb.woff])
	mu.Unlock()

	free(fb)
}

func sprintf(sev severity, depth int, format string, fb *fixed, args ...any) {
	formatHdr(sev, depth+1, fb)
	if format == "" {
		fmt.Fprintln(fb, args...)
	} else {
		fmt.Fprintf(fb, format, args...)
		fb.eol()
	}
}

// header: severity char, stamp, caller's file:line
func formatHdr(sev severity, depth int, fb *fixed) {
	const char = "IWE"
	fb.writeByte(char[sev])
	fb.writeByte(' ')
	fb.writeStamp()
	fb.writeByte(' ')

	_, fn, ln, ok := runtime.Caller(3 + depth)
	if !ok {
		return
	}
	idx := len(fn) - 1
	for ; idx > 0; idx-- {
		if fn[idx] == '/' {
			idx++
			break
		}
	}
	fb.writeString(fn[idx:])
	fb.writeByte(':')
	fb.writeString(strconv.Itoa(ln))
	fb.writeByte(' ')
}

// SetOutput redirects the log stream; nil reverts to the default (stderr).
func SetOutput(w io.Writer) {
	mu.Lock()
	if w == nil {
		out = os.Stderr
	} else {
		out = w
	}
	mu.Unlock()
}

//////////////////////////
// pool of line buffers //
//////////////////////////

func alloc() (fb *fixed) {
	if v := pool.Get(); v != nil {
		fb = v.(*fixed)
		fb.reset()

		mu.Lock()
		poolCount--
		debug.Assert(poolCount >= 0)
		mu.Unlock()
		return
	}
	return &fixed{buf: make([]byte, nlogLineSize)}
}

func free(fb *fixed) {
	debug.Assert(cap(fb.buf) == nlogLineSize)

	mu.Lock()
	ok := poolCount < poolMaxLines
	if ok {
		poolCount++
	}
	mu.Unlock()

	if ok {
		pool.Put(fb)
	}
}
