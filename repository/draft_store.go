package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fadhlanhapp/trekshare-backend/config"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/redis/go-redis/v9"
)

// DraftStore keeps short-lived editor and wizard state in Redis.
// Drafts expire after the TTL unless saved again.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to Redis and checks the connection
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// NewDraftStore creates a draft store on top of a Redis client
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	return &DraftStore{client: client, ttl: ttl}
}

func draftKey(kind, id string) string {
	return "draft:" + kind + ":" + id
}

func claimKey(kind, id string) string {
	return draftKey(kind, id) + ":claim"
}

// Save writes a draft and resets its expiry
func (s *DraftStore) Save(ctx context.Context, kind, id string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(kind, id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load reads a draft into dest
func (s *DraftStore) Load(ctx context.Context, kind, id string, dest interface{}) error {
	payload, err := s.client.Get(ctx, draftKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return utils.NewDraftExpiredError()
		}
		return fmt.Errorf("failed to load draft: %w", err)
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to decode draft: %w", err)
	}
	return nil
}

// Delete removes a draft; missing drafts are not an error
func (s *DraftStore) Delete(ctx context.Context, kind, id string) error {
	if err := s.client.Del(ctx, draftKey(kind, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// Claim sets the claim key with SETNX; the claim expires with the draft TTL
func (s *DraftStore) Claim(ctx context.Context, kind, id, owner string) (string, bool, error) {
	ok, err := s.client.SetNX(ctx, claimKey(kind, id), owner, s.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to claim draft: %w", err)
	}
	if ok {
		return owner, true, nil
	}

	holder, err := s.client.Get(ctx, claimKey(kind, id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Claim expired between the two calls
			return s.Claim(ctx, kind, id, owner)
		}
		return "", false, fmt.Errorf("failed to read draft claim: %w", err)
	}
	return holder, false, nil
}

// Release drops a claim so the draft can be claimed again
func (s *DraftStore) Release(ctx context.Context, kind, id string) error {
	if err := s.client.Del(ctx, claimKey(kind, id)).Err(); err != nil {
		return fmt.Errorf("failed to release draft claim: %w", err)
	}
	return nil
}
