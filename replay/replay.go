// Package replay drives repeated prefix reads from one sequence handle under
// allocation and collector pressure and reports any read that disagrees with
// the first.
package replay

import (
	"context"
	"log"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/tutils/lxmseq"
	"github.com/tutils/lxmseq/counter/period"
	"github.com/tutils/lxmseq/lxm"
)

// Report summarizes one run.
type Report struct {
	RunID         string
	Mode          Mode
	State         lxm.State
	TakeLen       int
	Golden        []bool
	Iterations    int64 // completed re-reads
	Mismatches    int64
	FirstMismatch int64 // first mismatching iteration observed, -1 if none
	MismatchBits  []bool
	Steps         int64 // generator steps, golden read included
	Elapsed       time.Duration
}

// OK reports whether every re-read matched the golden prefix.
func (r *Report) OK() bool {
	return r.Mismatches == 0
}

// Run reads a golden prefix from a fresh handle at st, then re-reads the same
// handle. On cancellation it returns the partial report and ctx.Err().
func Run(ctx context.Context, st lxm.State, opts ...Option) (*Report, error) {
	opt := newOptions(opts...)
	if opt.steps == nil {
		opt.steps = period.NewPeriodCounter(time.Second)
	}

	rep := &Report{
		RunID:         uuid.NewString(),
		Mode:          opt.mode,
		State:         st,
		TakeLen:       opt.takeLen,
		FirstMismatch: -1,
	}
	log.Printf("replay %s: mode=%s iterations=%d take=%d workers=%d gc-every=%d alloc=%d",
		rep.RunID, opt.mode, opt.iterations, opt.takeLen, opt.workers, opt.gcEvery, opt.allocBytes)

	start := time.Now()
	h := newHandle(opt.mode, st, opt.steps)
	rep.Golden = h.take(opt.takeLen)

	var (
		done       atomic.Int64
		mismatches atomic.Int64
		first      atomic.Int64
		firstBits  atomic.Pointer[[]bool]
	)
	first.Store(-1)

	var progress *lxmseq.SyncWriter
	if opt.progress != nil {
		progress = lxmseq.NewSyncWriter(opt.progress)
	}
	progressEvery := max(opt.iterations/10, 1)

	g, gctx := errgroup.WithContext(ctx)
	per, rem := opt.iterations/opt.workers, opt.iterations%opt.workers
	base := 0
	for w := 0; w < opt.workers; w++ {
		n := per
		if w < rem {
			n++
		}
		offset := base
		base += n
		g.Go(func() error {
			ring := make([][]byte, 16)
			for i := 0; i < n; i++ {
				if i&0xff == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if opt.allocBytes > 0 {
					ring[i%len(ring)] = make([]byte, opt.allocBytes)
				}
				if opt.gcEvery > 0 && (i+1)%opt.gcEvery == 0 {
					runtime.GC()
				}

				got := h.take(opt.takeLen)
				if !slices.Equal(got, rep.Golden) {
					mismatches.Add(1)
					if first.CompareAndSwap(-1, int64(offset+i)) {
						firstBits.Store(&got)
					}
				}

				if d := done.Add(1); progress != nil && d%int64(progressEvery) == 0 {
					progress.Printf("replay %s: %d/%d mismatches=%d steps=%d rate=%d/s\n",
						rep.RunID, d, opt.iterations, mismatches.Load(), opt.steps.Value(), opt.steps.RatePerSec())
				}
			}
			return nil
		})
	}
	err := g.Wait()

	rep.Iterations = done.Load()
	rep.Mismatches = mismatches.Load()
	rep.FirstMismatch = first.Load()
	if p := firstBits.Load(); p != nil {
		rep.MismatchBits = *p
	}
	rep.Steps = opt.steps.Value()
	rep.Elapsed = time.Since(start)

	log.Printf("replay %s: done iterations=%d mismatches=%d steps=%d elapsed=%s",
		rep.RunID, rep.Iterations, rep.Mismatches, rep.Steps, rep.Elapsed)
	return rep, err
}
