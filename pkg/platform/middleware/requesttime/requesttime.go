// Package requesttime pins one "now" per request. Every lead synthesized
// while serving a request carries the same creation instant.
package requesttime

import (
	"context"
	"net/http"
	"time"
)

type contextKeyRequestTime struct{}

// Middleware captures the request start time (UTC, millisecond precision)
// and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Now retrieves the request-scoped time from context.
// Outside HTTP (CLI, tests without WithTime) it falls back to the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(contextKeyRequestTime{}).(time.Time); ok {
		return t
	}
	return normalize(time.Now())
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, contextKeyRequestTime{}, normalize(t))
}

// normalize drops sub-millisecond precision so timestamps round-trip
// through their ISO-8601 text form unchanged.
func normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
