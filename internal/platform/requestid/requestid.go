package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header that carries the request ID, inbound and to the lint API.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh random request ID.
func New() string {
	return uuid.NewString()
}

// NewContext returns a context that carries the given request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
