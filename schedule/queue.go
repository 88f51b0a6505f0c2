// Package schedule implements the windowed assembly pipeline's
// producer/consumer pipeline: an input queue of windows, a fixed
// worker pool that runs an Assembler over each one, a result queue of
// completion records, and a driver loop that flushes the variant
// store in strict reference-coordinate order despite workers
// completing windows out of order (SPEC_FULL.md §4.5).
package schedule

import (
	"time"

	"github.com/hmmm42/lancetgo/window"
)

// InWindowQueue is the multi-producer/multi-consumer FIFO of windows
// to process. It is preloaded once at startup by a single producer,
// then drained concurrently by the worker pool; buffered channels
// give the blocking-dequeue, no-busy-wait behavior the spec requires
// without reaching for a third-party queue library — nothing in the
// retrieval pack wires one for this, every worker-pool example here
// (mudesheng-ga's constructdbg/deconstructdbg) uses plain channels.
type InWindowQueue chan window.Window

// NewInWindowQueue returns a queue preloaded with every window. The
// channel is closed once windows is fully sent, so consumers can range
// over it to detect "no more work" instead of polling.
func NewInWindowQueue(windows []window.Window) InWindowQueue {
	q := make(InWindowQueue, len(windows))
	for _, w := range windows {
		q <- w
	}
	close(q)
	return q
}

// CompletionRecord is one worker's report that a window finished
// processing, carrying how long it took for the driver's progress log.
type CompletionRecord struct {
	WindowIdx int
	Runtime   time.Duration
}

// OutResultQueue is the multi-producer/multi-consumer FIFO of
// completion records. Consumers (the driver) block on receive with no
// busy-wait, same as InWindowQueue.
type OutResultQueue chan CompletionRecord

// NewOutResultQueue returns a result queue sized to hold every
// window's completion without blocking a worker on send.
func NewOutResultQueue(numWindows int) OutResultQueue {
	return make(OutResultQueue, numWindows)
}
