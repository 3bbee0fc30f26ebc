package report

import "sync/atomic"

// Runner wraps report generation in an asynchronous task so a caller's loop
// stays responsive during a build. At most one build is in flight: a new
// Start supersedes any running build, whose result is discarded when it
// completes. The build itself is synchronous and pure; there is no
// cancellation primitive.
type Runner struct {
	gen        atomic.Uint64
	onComplete func(Report)
}

// NewRunner returns a runner delivering completed reports to onComplete.
// Superseded builds never reach the callback.
func NewRunner(onComplete func(Report)) *Runner {
	return &Runner{onComplete: onComplete}
}

// Start launches a build over the given snapshot and config. The snapshot is
// treated as a read-only view for the duration of the build.
func (r *Runner) Start(snap Snapshot, cfg Config) {
	id := r.gen.Add(1)
	go func() {
		rep := Generate(snap, cfg)
		if r.gen.Load() != id {
			return // superseded, discard
		}
		if r.onComplete != nil {
			r.onComplete(rep)
		}
	}()
}
