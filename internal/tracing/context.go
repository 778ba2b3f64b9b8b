// Package tracing carries the request trace id through context.Context so
// that services can log it without depending on the HTTP layer.
package tracing

import "context"

type contextKey struct{}

// WithTraceID returns a copy of ctx carrying the trace id
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, traceID)
}

// TraceID returns the trace id stored in ctx, or "" when there is none
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(contextKey{}).(string); ok {
		return traceID
	}
	return ""
}
