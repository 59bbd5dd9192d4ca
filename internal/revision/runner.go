package revision

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-reviser/internal/types"
)

// Runner executes revision jobs as detached background tasks. Start returns
// as soon as the job is handed off; callers must not assume the job is
// finished when it returns. The detached task always performs full
// FAILED-state bookkeeping on error: RunJob records the terminal state
// before the error ever reaches the goroutine, so no failure is silently
// swallowed.
//
// Jobs for different documents run concurrently with no shared mutable
// state; each reads its own immutable section snapshot and writes its own
// proposal.
type Runner struct {
	orch *Orchestrator
	g    *errgroup.Group
}

// NewRunner creates a runner executing at most maxConcurrent jobs at once.
func NewRunner(orch *Orchestrator, maxConcurrent int) *Runner {
	g := &errgroup.Group{}
	if maxConcurrent > 0 {
		g.SetLimit(maxConcurrent)
	}
	return &Runner{orch: orch, g: g}
}

// Start launches a job in the background. The job's terminal state and any
// error are recorded through the store by RunJob; the goroutine only logs.
func (r *Runner) Start(ctx context.Context, job *types.RevisionJob, req JobRequest) {
	r.g.Go(func() error {
		if _, err := r.orch.RunJob(ctx, job, req); err != nil {
			log.Printf("revision: background job %s failed: %v", job.ID, err)
		}
		// Errors are job-scoped and already recorded; never fail the group.
		return nil
	})
}

// Wait blocks until all started jobs have reached a terminal state.
func (r *Runner) Wait() error {
	return r.g.Wait()
}
