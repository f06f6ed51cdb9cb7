// Package utils provides general-purpose helpers shared by the kittygram
// client packages: context keys, the HTTP client wrapper and request ID
// generation.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a caller-chosen request ID is kept.
// The adapter sends it as X-Request-ID; CLI commands set one per invocation.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request ID stored by WithRequestID.
//
// Returns ok == false when the value is missing, empty or of another type.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}
