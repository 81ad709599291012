package redis

// Package redis provides Redis-based adapters for the gymdesk system.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/gymdesk/gym-ui-api/internal/domain/auth"
	"github.com/gymdesk/gym-ui-api/internal/ports"
)

var _ ports.CredentialStore = (*CredentialStore)(nil)

const credentialKey = "auth:credentials"

// CredentialStore persists the single active session under one fixed key.
// Save overwrites whatever is there; an unparseable value reads as absent so
// a corrupted slot can never block startup.
type CredentialStore struct {
	client redis.UniversalClient
	key    string
}

// NewCredentialStore creates a new Redis-based credential store.
func NewCredentialStore(client redis.UniversalClient) *CredentialStore {
	return &CredentialStore{client: client, key: credentialKey}
}

// NewCredentialStoreWithPrefix creates a credential store with a key prefix,
// letting several deployments share one Redis.
func NewCredentialStoreWithPrefix(client redis.UniversalClient, prefix string) *CredentialStore {
	return &CredentialStore{client: client, key: prefix + credentialKey}
}

// Save overwrites the stored session.
func (s *CredentialStore) Save(ctx context.Context, sess domainauth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Load reads the stored session. Both a missing key and an unparseable value
// report absence; only transport failures surface as errors.
func (s *CredentialStore) Load(ctx context.Context) (domainauth.Session, bool, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, false, nil
		}
		return domainauth.Session{}, false, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		// Drop the corrupted value so the next load is clean.
		_ = s.client.Del(ctx, s.key).Err()
		return domainauth.Session{}, false, nil
	}
	return sess, true, nil
}

// Clear removes the stored session. Clearing an empty slot is a no-op.
func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
