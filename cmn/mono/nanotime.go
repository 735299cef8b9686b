//go:build !mono

// Package mono provides low-level monotonic time
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package mono

import (
	"time"
)

var started = time.Now()

// NanoTime returns the elapsed monotonic nanoseconds since an arbitrary
// process-local epoch. Build with -tags=mono for the runtime.nanotime
// fast path.
func NanoTime() int64 { return int64(time.Since(started)) }
