package revocation

import (
	"context"
	"time"
)

// Store is the token deny-list. Entries are written with a TTL equal to the
// token's remaining life, so the list stays bounded and a revoked token is
// forgotten only once it would have expired anyway.
type Store interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
