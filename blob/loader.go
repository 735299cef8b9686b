// Package blob provides asynchronous loading of file contents into a fixed
// table of slots, driven by a non-blocking host-side pump.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package blob

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kitbag/kitbag/cmn/atomic"
	"github.com/kitbag/kitbag/cmn/debug"
)

// Slot lifecycle: Idle -> Pending (requested) -> Loaded (payload in memory)
// -> Idle again once taken; a load that cannot open or read its file parks
// the slot at Failed, where a new Request re-arms it.
type SlotState int

const (
	Idle SlotState = iota
	Pending
	Loaded
	Failed
)

func (s SlotState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("invalid-state(%d)", int(s))
}

type (
	slot struct {
		err   error
		name  string
		data  []byte
		cksum uint64
		state SlotState
	}

	// Loader owns one slot per filename, established at construction.
	// There are exactly two roles: any number of host calls (all short,
	// lock-bounded, non-blocking) and at most one worker goroutine doing
	// the file I/O outside the lock. The host drives progress by calling
	// Pump; nothing loads without it.
	Loader struct {
		slots []slot
		wg    sync.WaitGroup
		stats stats
		mu    sync.Mutex

		// guarded by mu
		work     bool // at least one slot awaits the worker
		running  bool // worker is live
		finished bool // worker done, awaiting join by Pump
		closed   bool
	}

	stats struct {
		requests atomic.Int64
		loads    atomic.Int64
		fails    atomic.Int64
		takes    atomic.Int64
		bytes    atomic.Int64
		scans    atomic.Int64
		lastScan atomic.Int64 // ns
	}

	// Snap is a point-in-time copy of the loader counters.
	Snap struct {
		Requests int64
		Loads    int64
		Fails    int64
		Takes    int64
		Bytes    int64
		Scans    int64
		LastScan time.Duration
	}
)

// interface guard
var _ io.Closer = (*Loader)(nil)

// New returns a loader with one Idle slot per filename, in order.
func New(names []string) *Loader {
	ld := &Loader{slots: make([]slot, len(names))}
	for i := range names {
		ld.slots[i].name = names[i]
	}
	return ld
}

func (ld *Loader) Len() int {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	return len(ld.slots)
}

func (ld *Loader) Name(i int) string {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	return ld.slots[i].name
}

// Request marks slot i for loading; non-blocking, valid at any time
// including mid-run (the request is serviced by the current worker pass or
// the next one). No-op when the slot is already Pending or Loaded.
func (ld *Loader) Request(i int) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	s := &ld.slots[i]
	if s.state == Pending || s.state == Loaded {
		return
	}
	s.state = Pending
	s.err = nil
	ld.work = true
	ld.stats.requests.Inc()
}

// RequestAll marks every slot for loading.
func (ld *Loader) RequestAll() {
	for i := range ld.Len() {
		ld.Request(i)
	}
}

// Pump advances the loader by at most one step and never blocks: a
// contended tick simply returns. One tick joins a finished worker (and
// re-arms the work flag if requests remain); another spawns the worker
// when work awaits and none is running.
func (ld *Loader) Pump() {
	if !ld.mu.TryLock() {
		return
	}
	defer ld.mu.Unlock()
	if ld.closed {
		return
	}
	if ld.finished {
		ld.running, ld.finished = false, false
		ld.work = false
		for i := range ld.slots {
			if ld.slots[i].state == Pending {
				ld.work = true
				break
			}
		}
		return
	}
	if ld.work && !ld.running {
		ld.work = false
		ld.running = true
		ld.wg.Add(1)
		go ld.run()
	}
}

// Ready reports whether slot i holds a payload.
func (ld *Loader) Ready(i int) bool {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	return ld.slots[i].state == Loaded
}

func (ld *Loader) State(i int) SlotState {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	return ld.slots[i].state
}

// Err returns the cause of the most recent failed load of slot i, nil
// otherwise.
func (ld *Loader) Err(i int) error {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	return ld.slots[i].err
}

// Checksum returns the xxhash64 of slot i's payload; ok is false unless the
// slot is Loaded.
func (ld *Loader) Checksum(i int) (cksum uint64, ok bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	s := &ld.slots[i]
	return s.cksum, s.state == Loaded
}

// Take transfers ownership of slot i's payload to the caller; the slot
// reverts to Idle. Returns (nil, false) when there is nothing to take.
func (ld *Loader) Take(i int) ([]byte, bool) {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	ld.check(i)
	s := &ld.slots[i]
	if s.state != Loaded {
		return nil, false
	}
	data := s.data
	s.data, s.cksum, s.err = nil, 0, nil
	s.state = Idle
	ld.stats.takes.Inc()
	return data, true
}

// Close joins the worker if one is live (the only blocking call in the
// package), releases un-taken payloads and the table; idempotent. The
// loader must not be used after Close.
func (ld *Loader) Close() error {
	ld.mu.Lock()
	if ld.closed {
		ld.mu.Unlock()
		return nil
	}
	ld.closed = true
	ld.mu.Unlock()

	ld.wg.Wait()

	ld.mu.Lock()
	ld.slots = nil
	ld.work, ld.running, ld.finished = false, false, false
	ld.mu.Unlock()
	return nil
}

// Stats is safe to call at any time; it does not contend with the worker.
func (ld *Loader) Stats() Snap {
	return Snap{
		Requests: ld.stats.requests.Load(),
		Loads:    ld.stats.loads.Load(),
		Fails:    ld.stats.fails.Load(),
		Takes:    ld.stats.takes.Load(),
		Bytes:    ld.stats.bytes.Load(),
		Scans:    ld.stats.scans.Load(),
		LastScan: time.Duration(ld.stats.lastScan.Load()),
	}
}

func (ld *Loader) check(i int) {
	debug.AssertMutexLocked(&ld.mu)
	if i < 0 || i >= len(ld.slots) {
		panic(fmt.Sprintf("blob: slot %d out of range (slots %d)", i, len(ld.slots)))
	}
}
