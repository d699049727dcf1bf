package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Provider кеш-провайдер поверх Redis
type Provider struct {
	client *redis.Client
}

// NewClient создает и проверяет подключение к Redis
func NewClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	return client, nil
}

// NewProvider создает новый кеш-провайдер
func NewProvider(client *redis.Client) *Provider {
	return &Provider{client: client}
}

// Get читает значение по ключу
// Возвращает ErrCacheMiss, если ключ отсутствует
func (p *Provider) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := p.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get %q: %v", ErrOperation, key, err)
	}
	return value, nil
}

// Save сохраняет значение по ключу с TTL
func (p *Provider) Save(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := p.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save %q: %v", ErrOperation, key, err)
	}
	return nil
}

// Invalidate удаляет значение по ключу
// Отсутствие ключа ошибкой не считается
func (p *Provider) Invalidate(ctx context.Context, key string) error {
	if err := p.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate %q: %v", ErrOperation, key, err)
	}
	return nil
}
