// Package utils provides helpers shared by the handler and service layers:
// typed context keys, JSON response writing, the outbound HTTP client and
// bearer token / JWK parsing.
package utils

import (
	"context"

	"github.com/MKhiriev/renglo-api/models"
)

// contextKey is a private type for context keys so that they cannot collide
// with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key the auth middleware stores the verified
// [models.Identity] under.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// GetIdentityFromContext returns the identity stored by [WithIdentity].
// ok is false when the request was not authenticated.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}
