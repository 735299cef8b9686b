// Package blob provides asynchronous loading of file contents into a fixed
// table of slots, driven by a non-blocking host-side pump.
/*
 * Copyright (c) 2026, Kitbag Authors. All rights reserved.
 */
package blob

import (
	"io"
	"os"

	"github.com/kitbag/kitbag/cmn/debug"
	"github.com/kitbag/kitbag/cmn/mono"
	"github.com/kitbag/kitbag/cmn/nlog"

	"github.com/OneOfOne/xxhash"
	"github.com/pkg/errors"
)

// run scans the table once, loading every slot that awaits its payload.
// All file I/O happens outside the lock; each slot transition is a short
// locked section. The scan is not cancelable; Close waits for it.
func (ld *Loader) run() {
	defer ld.wg.Done()
	started := mono.NanoTime()
	nlog.Infof("worker: scanning %d slot(s)", len(ld.slots))

	for i := range ld.slots {
		ld.mu.Lock()
		s := &ld.slots[i]
		if s.state != Pending {
			ld.mu.Unlock()
			continue
		}
		debug.Assert(s.data == nil)
		name := s.name
		ld.mu.Unlock()

		data, cksum, err := load(name)

		ld.mu.Lock()
		if err != nil {
			s.err = err
			s.state = Failed
			ld.stats.fails.Inc()
		} else {
			s.data, s.cksum = data, cksum
			s.err = nil
			s.state = Loaded
			ld.stats.loads.Inc()
			ld.stats.bytes.Add(int64(len(data)))
		}
		ld.mu.Unlock()

		if err != nil {
			nlog.Warningln("worker:", err)
		}
	}

	ld.mu.Lock()
	ld.finished = true
	ld.mu.Unlock()
	ld.stats.scans.Inc()
	ld.stats.lastScan.Store(mono.NanoTime() - started)
}

// load reads the file whole (binary, no partial loads) while streaming its
// xxhash64.
func load(name string) (data []byte, cksum uint64, _ error) {
	fh, err := os.Open(name)
	if err != nil {
		return nil, 0, errors.WithMessage(err, "open blob failed")
	}
	defer fh.Close()

	fi, err := fh.Stat()
	if err != nil {
		return nil, 0, errors.WithMessagef(err, "stat blob %q failed", name)
	}

	h := xxhash.New64()
	data = make([]byte, fi.Size())
	if _, err := io.ReadFull(io.TeeReader(fh, h), data); err != nil {
		return nil, 0, errors.WithMessagef(err, "read blob %q failed", name)
	}
	return data, h.Sum64(), nil
}
