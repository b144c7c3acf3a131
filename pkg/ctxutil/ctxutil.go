// Package ctxutil carries per-request values set by the HTTP middleware:
// the authenticated note owner and the request correlation id.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	ownerIDKey   struct{}
	requestIDKey struct{}
)

// WithOwnerID scopes ctx to the owner every store query filters on.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey{}, id)
}

// OwnerIDFromCtx reports the owner set by WithOwnerID. The zero UUID counts
// as absent.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// WithRequestID attaches the X-Request-Id value so log lines of one request
// can be joined.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
