package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func sampleSession() domainauth.Session {
	return domainauth.NewSession(domainauth.Identity{
		UserID:      "u-1",
		DisplayName: "Dana Fields",
		Email:       "dana@example.com",
		Role:        domainauth.RoleMember,
		Verified:    true,
	}, "tok-1")
}

func TestCredentialStore_SaveLoadClear(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	t.Run("empty slot loads as absent", func(t *testing.T) {
		_, ok, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("round trip", func(t *testing.T) {
		sess := sampleSession()
		require.NoError(t, store.Save(ctx, sess))

		got, ok, err := store.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, sess, got)
	})

	t.Run("save overwrites the previous session", func(t *testing.T) {
		first := sampleSession()
		require.NoError(t, store.Save(ctx, first))

		second := domainauth.NewSession(domainauth.Identity{
			UserID:   "u-2",
			Email:    "avery@example.com",
			Role:     domainauth.RoleAdmin,
			Verified: true,
		}, "tok-2")
		require.NoError(t, store.Save(ctx, second))

		got, ok, err := store.Load(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "tok-2", got.Token)
		assert.Equal(t, domainauth.RoleAdmin, got.Role)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sampleSession()))
		require.NoError(t, store.Clear(ctx))
		require.NoError(t, store.Clear(ctx))

		_, ok, err := store.Load(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCredentialStore_CorruptValue(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewCredentialStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, credentialKey, `{"role": ["not a string"`, 0).Err())

	_, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// The corrupted value is dropped so the slot is clean afterwards.
	exists, err := client.Exists(ctx, credentialKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestCredentialStore_Prefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	ctx := context.Background()
	a := NewCredentialStoreWithPrefix(client, "siteA:")
	b := NewCredentialStoreWithPrefix(client, "siteB:")

	require.NoError(t, a.Save(ctx, sampleSession()))

	_, ok, err := b.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "stores with different prefixes must not share a slot")
}
