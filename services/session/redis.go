package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"stayfinder/models"
)

const keyPrefix = "conversation:"

// RedisStore caches sessions in redis with a TTL, one key per conversation.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by the given redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, chatID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+chatID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewSession(chatID), nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+sess.ChatID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, chatID string) error {
	if err := s.client.Del(ctx, keyPrefix+chatID).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
