//go:build !debug

// Package debug provides assertions and helpers that compile away in
// production builds (build with -tags=debug to enable).
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package debug

import "sync"

func Enabled() bool { return false }

func Infof(string, ...any) {}

func Func(func()) {}

func Assert(bool, ...any)            {}
func AssertFunc(func() bool, ...any) {}
func AssertMsg(bool, string)         {}
func AssertNoErr(error)              {}
func Assertf(bool, string, ...any)   {}

func AssertMutexLocked(*sync.Mutex) {}
