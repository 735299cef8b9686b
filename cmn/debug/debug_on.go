//go:build debug

// Package debug provides assertions and helpers that compile away in
// production builds (build with -tags=debug to enable).
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package debug

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

func Enabled() bool { return true }

func Infof(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+strings.TrimSuffix(f, "\n")+"\n", a...)
}

func Func(f func()) { f() }

func Assert(cond bool, a ...any) {
	if !cond {
		if len(a) > 0 {
			panic("DEBUG PANIC: " + fmt.Sprint(a...))
		}
		panic("DEBUG PANIC")
	}
}

func AssertFunc(f func() bool, a ...any) { Assert(f(), a...) }

func AssertMsg(cond bool, msg string) {
	if !cond {
		panic("DEBUG PANIC: " + msg)
	}
}

func AssertNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		AssertMsg(cond, fmt.Sprintf(f, a...))
	}
}

// Checks that the mutex is held by someone, not that the caller holds it;
// TryLock from the owning goroutine always fails (mutexes are not reentrant).
func AssertMutexLocked(m *sync.Mutex) {
	if m.TryLock() {
		m.Unlock()
		AssertMsg(false, "Mutex not Locked")
	}
}
