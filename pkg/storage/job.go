package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; args
// carries the job payload and opts customizes insertion (queue name, delay,
// priority). Inserts must be atomic with any surrounding transaction when the
// backend supports it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean reports
	// whether a job was actually inserted; false means an equivalent unique job
	// already existed.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
