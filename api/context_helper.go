package api

import (
	"context"
	"time"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// SweepTimeout bounds a single scheduled job run
const SweepTimeout = 5 * time.Minute

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return withTimeout(parent, QueryTimeout)
}

// WithSweepTimeout creates a context for a background job detached from any request
func WithSweepTimeout() (context.Context, context.CancelFunc) {
	return withTimeout(context.Background(), SweepTimeout)
}

func withTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}
