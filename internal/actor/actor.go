// Package actor carries the caller's opaque identity through a request context.
// The value comes from the user-id header and is never authenticated here.
package actor

import "context"

type contextKey struct{}

// WithID returns a copy of ctx carrying the actor id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the actor id, or "" when none was attached.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
