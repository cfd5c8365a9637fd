package repositories

import (
	"context"
	"time"
)

// RevocationStore is the persisted set of refresh tokens that must no
// longer mint access tokens. Entries carry the token's remaining life
// so they can expire on their own; revoking twice is not an error.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
