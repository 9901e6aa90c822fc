package auth

import (
	"context"
	"errors"
	"time"
)

// Identity is the verified caller of a request. It is passed explicitly into
// every core operation that needs to know who is acting.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	TokenID   string
	ExpiresAt time.Time
}

type contextKey string

const identityKey contextKey = "gymdesk-identity"

func NewContext(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// FromContext retrieves the identity stored by the auth middleware.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok && identity != nil
}

// ErrForbidden is wrapped by access checks that reject an authenticated caller.
var ErrForbidden = errors.New("forbidden")
