package schedule

import (
	"fmt"
	"io"
	"time"

	"github.com/hmmm42/lancetgo/internal/logging"
)

// Flusher is the slice of VariantStore the driver needs: ordered,
// idempotent flush of one window's buffered variants, or everything
// still buffered at shutdown, both against the driver-owned output
// writer. Defined here, at the point of use, so variantstore.Store
// satisfies it structurally without variantstore importing schedule.
type Flusher interface {
	FlushWindow(windowIdx int, writer io.Writer, contigIDs map[string]int) (bool, error)
	FlushAll(writer io.Writer, contigIDs map[string]int) error
}

// LookAheadBuffer computes B, the number of windows ahead of the next
// flush index that must already be complete before that index can be
// flushed. Sized so that no variant discovered in a not-yet-flushed
// window can still extend back into a window already flushed: an
// indel spanning up to maxIndelLen, or a window's own length, can
// shift a called variant by at most that many bases in either
// direction, and successive windows advance by stepSize.
func LookAheadBuffer(maxIndelLen, windowLen, stepSize int64) int {
	if stepSize <= 0 {
		panic("schedule: stepSize must be positive")
	}
	longest := maxIndelLen
	if windowLen > longest {
		longest = windowLen
	}
	raw := 3 * longest
	return int((raw + stepSize - 1) / stepSize) // ceil(raw/stepSize)
}

// Driver runs the ordered-flush loop: it consumes completions as
// workers report them and flushes the variant store strictly in
// ascending window index once the look-ahead range [idx, idx+buffer]
// starting at that index is entirely done, per spec scenario 6 (N=5, B=1, completions
// 2,0,1,4,3 flush in order 0,1,2,3,4).
type Driver struct {
	numWindows int
	buffer     int
	store      Flusher
	writer     io.Writer
	contigIDs  map[string]int

	done       []bool
	idxToFlush int
}

// NewDriver returns a Driver over numWindows windows with the given
// look-ahead buffer, flushing through store onto writer. contigIDs
// gives FlushWindow/FlushAll the contig-order validation they need;
// it's the same map passed to window.Builder.BuildWindows.
func NewDriver(numWindows, buffer int, store Flusher, writer io.Writer, contigIDs map[string]int) *Driver {
	return &Driver{
		numWindows: numWindows,
		buffer:     buffer,
		store:      store,
		writer:     writer,
		contigIDs:  contigIDs,
		done:       make([]bool, numWindows),
	}
}

// Run blocks until every window has completed (or a worker error
// arrives on errc), flushing windows in order as they become eligible,
// then flushes everything remaining via store.FlushAll. It returns the
// first worker error observed, if any.
func (d *Driver) Run(out OutResultQueue, errc <-chan error) error {
	completed := 0
	for completed < d.numWindows {
		select {
		case err := <-errc:
			return err
		case record, ok := <-out:
			if !ok {
				// Workers exited (pool closed out) before every window
				// reported in; a worker error must be waiting on errc.
				select {
				case err := <-errc:
					return err
				default:
					return fmt.Errorf("schedule: result queue closed after %d/%d completions", completed, d.numWindows)
				}
			}
			completed++
			d.recordCompletion(record)
		}
	}
	return d.store.FlushAll(d.writer, d.contigIDs)
}

// recordCompletion marks a window done and flushes every window whose
// look-ahead prefix [idxToFlush, idxToFlush+buffer] is now entirely
// complete. Looping (rather than a single if) is required to reproduce
// the scenario where one completion makes several windows eligible at
// once.
func (d *Driver) recordCompletion(record CompletionRecord) {
	d.done[record.WindowIdx] = true
	logging.InfoLog("window %d/%d completed in %s", record.WindowIdx+1, d.numWindows, record.Runtime.Round(time.Millisecond))

	for d.idxToFlush < d.numWindows && d.prefixDone(d.idxToFlush) {
		if _, err := d.store.FlushWindow(d.idxToFlush, d.writer, d.contigIDs); err != nil {
			logging.WarnLog("flush of window %d failed: %v", d.idxToFlush, err)
		}
		d.idxToFlush++
	}
}

// prefixDone reports whether every window in [idx, idx+buffer], clamped
// to the valid range, has completed.
func (d *Driver) prefixDone(idx int) bool {
	end := idx + d.buffer
	if end >= d.numWindows {
		end = d.numWindows - 1
	}
	for i := idx; i <= end; i++ {
		if !d.done[i] {
			return false
		}
	}
	return true
}
