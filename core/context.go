package core

import "context"

// Context keys for query options
type contextKey string

const (
	suppressHeaderKey contextKey = "suppressHeader"
)

// WithSuppressHeader marks the context so query headers are not printed.
// The MCP server uses stdio for the protocol and must keep it clean.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
