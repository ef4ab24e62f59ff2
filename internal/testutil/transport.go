// Package testutil provides shared helpers for tests: a scriptable fake
// transport and a harness that runs the app end to end against temporary
// sequence files.
package testutil

import (
	"context"
	"sync"

	"github.com/vk/i2cseq/internal/compiler"
)

// FakeTransport implements bus.Transport. It records a snapshot of every
// plan it is handed and fills read segments from a scripted byte stream, so
// tests can assert on both directions of a transfer without hardware.
type FakeTransport struct {
	mu    sync.Mutex
	err   error
	reads []byte
	calls [][]compiler.Segment
}

// FailWith makes every subsequent Transfer return err.
func (f *FakeTransport) FailWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// ScriptReads appends bytes to the stream that fills read segments, in bus
// order across all subsequent transfers. Unscripted read bytes stay zero.
func (f *FakeTransport) ScriptReads(b ...byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, b...)
}

// Transfer implements bus.Transport.
func (f *FakeTransport) Transfer(ctx context.Context, segments []compiler.Segment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, seg := range segments {
		if !seg.Read {
			continue
		}
		n := copy(seg.Buf, f.reads)
		f.reads = f.reads[n:]
	}
	// Snapshot the plan: the caller's buffers are per-call scratch, so copy
	// them before they go stale.
	snapshot := make([]compiler.Segment, len(segments))
	for i, seg := range segments {
		snapshot[i] = compiler.Segment{
			Addr: seg.Addr,
			Read: seg.Read,
			Buf:  append([]byte(nil), seg.Buf...),
		}
	}
	f.calls = append(f.calls, snapshot)
	return nil
}

// Calls returns the recorded plans in submission order.
func (f *FakeTransport) Calls() [][]compiler.Segment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
