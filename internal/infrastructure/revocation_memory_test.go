package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRevocationStore(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-a", time.Minute))

	revoked, err = store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revoking twice is fine.
	require.NoError(t, store.Revoke(ctx, "token-a", time.Minute))
}

func TestMemoryRevocationStoreExpiry(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "token-a", 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryRevocationStoreIgnoresExpiredTokens(t *testing.T) {
	store := NewMemoryRevocationStore()
	ctx := context.Background()

	// A token past its own expiry needs no revocation entry.
	require.NoError(t, store.Revoke(ctx, "token-a", -time.Minute))

	revoked, err := store.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRateLimiterPerKey(t *testing.T) {
	limiter := NewRateLimiter(1, 2)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// A different key gets its own bucket.
	assert.True(t, limiter.Allow("5.6.7.8"))
}
