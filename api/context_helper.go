package api

import (
	"context"
	"time"
)

// QueryTimeout bounds every database read issued on behalf of a request
const QueryTimeout = 10 * time.Second

// WithQueryTimeout derives a context that expires after QueryTimeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}
