package service

import (
	"context"
	"time"
)

// EnqueueOptions controls delayed and deduplicated jobs.
type EnqueueOptions struct {
	// Delay postpones the first delivery
	Delay time.Duration
	// DedupeKey makes enqueueing idempotent. A second job with the same key is dropped.
	DedupeKey string
}

// JobQueue enqueues named jobs for at-least-once processing.
type JobQueue interface {
	// Enqueue serializes payload as JSON. A dedupe conflict is reported as success.
	Enqueue(ctx context.Context, queue, jobName string, payload any, opts EnqueueOptions) error
}
