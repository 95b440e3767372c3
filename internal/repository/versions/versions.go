package versions

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/team-chat-service/internal/config"
)

const versionPrefix = "chat:feed:version:"

// VersionStore keeps one monotonically increasing counter per feed scope.
type VersionStore struct {
	client *redis.Client
}

func New(cfg *config.Config) (*VersionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &VersionStore{client: client}, nil
}

func NewWithClient(client *redis.Client) *VersionStore {
	return &VersionStore{client: client}
}

func (s *VersionStore) Incr(ctx context.Context, scope string) (int64, error) {
	version, err := s.client.Incr(ctx, versionPrefix+scope).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment version: %v", err)
	}

	return version, nil
}

// Get returns 0 for a scope that was never changed.
func (s *VersionStore) Get(ctx context.Context, scope string) (int64, error) {
	version, err := s.client.Get(ctx, versionPrefix+scope).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %v", err)
	}

	return version, nil
}

func (s *VersionStore) Close() error {
	return s.client.Close()
}
