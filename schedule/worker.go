package schedule

import (
	"context"
	"io"

	"github.com/hmmm42/lancetgo/variantstore"
	"github.com/hmmm42/lancetgo/window"
)

// VariantAdder is the slice of VariantStore a worker needs: thread-safe
// append into one window's bucket. Defined here, at the point of use,
// the same way window.Reference is defined in the window package
// rather than in a hypothetical shared-interfaces file; variantstore.Store
// satisfies this without variantstore importing schedule.
type VariantAdder interface {
	AddVariantsForWindow(windowIdx int, variants ...variantstore.Variant) error
}

// Assembler is the per-window unit of work a pool worker runs: given a
// window and a handle to the shared store, it builds that window's
// graph, does whatever variant discovery it implements, records the
// result into store, and reports completion. Context carries
// cancellation down into a single worker's current window; there is
// no cooperative cancellation inside a window per the scheduling model.
type Assembler interface {
	Process(ctx context.Context, w window.Window, store VariantAdder) (CompletionRecord, error)
}

// NewAssembler builds one worker's private Assembler instance. Per
// §4.5 ("a fixed pool of N workers, each owning an assembler instance")
// and §5 ("each worker may hold its own handle..."), Pool calls this
// once per goroutine rather than sharing a single Assembler (and
// whatever file handles it owns) across workers — an Assembler backed
// by a seek-and-reread file reader, like assemble.MicroAssembler, is
// not safe to call concurrently from two goroutines sharing one
// *os.File offset.
type NewAssembler func() (Assembler, error)

// Pool runs a fixed number of workers, each pulling windows off in and
// pushing completions (or the first fatal error) onto out/errc.
type Pool struct {
	numWorkers   int
	newAssembler NewAssembler
	store        VariantAdder
}

// NewPool returns a pool of numWorkers goroutines, each constructing
// its own Assembler via newAssembler and running it against the
// shared store. numWorkers is clamped to at least 1 so a
// misconfigured --num-threads=0 doesn't silently process nothing.
func NewPool(numWorkers int, newAssembler NewAssembler, store VariantAdder) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Pool{numWorkers: numWorkers, newAssembler: newAssembler, store: store}
}

// Run starts the workers and returns without waiting for them. The
// workers drain in, processing every window and sending its completion
// to out, until in is closed and every in-flight window has completed;
// a background goroutine closes out once the last worker returns, so a
// caller can range over out until it closes. The first worker error
// observed is sent to errc (buffered size 1) and cancels the workers'
// shared context, so the remaining workers stop before their next
// window; callers should treat any send on errc as fatal and stop the
// driver.
func (p *Pool) Run(ctx context.Context, in InWindowQueue, out OutResultQueue, errc chan<- error) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{}, p.numWorkers)

	for i := 0; i < p.numWorkers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			assembler, err := p.newAssembler()
			if err != nil {
				select {
				case errc <- err:
					cancel()
				default:
				}
				return
			}
			if closer, ok := assembler.(io.Closer); ok {
				defer closer.Close()
			}

			for w := range in {
				select {
				case <-ctx.Done():
					return
				default:
				}

				record, err := assembler.Process(ctx, w, p.store)
				if err != nil {
					select {
					case errc <- err:
						cancel()
					default:
					}
					return
				}
				out <- record
			}
		}()
	}

	go func() {
		for i := 0; i < p.numWorkers; i++ {
			<-done
		}
		cancel()
		close(out)
	}()
}
