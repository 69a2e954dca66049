package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dwikikusuma/shoply/internal/cart/app"
	"github.com/dwikikusuma/shoply/internal/cart/domain"
	"github.com/go-redis/redis/v8"
)

// Storage keeps each cart as a JSON blob under its session key. Values have
// no TTL: carts are only destroyed by an explicit clear or storage reset.
type Storage struct {
	client *redis.Client
}

// New connects to addr ("host:port" or a redis:// URL) and pings once so a
// misconfigured address fails at startup, not on the first cart write.
func New(ctx context.Context, addr string) (*Storage, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Storage{client: client}, nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]domain.LineItem, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, app.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Storage) Save(ctx context.Context, key string, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Storage) Close() error {
	return s.client.Close()
}
