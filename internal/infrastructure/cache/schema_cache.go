package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"churchdata/internal/domain/schema"

	"github.com/redis/go-redis/v9"
)

const ActiveSchemaKey = "schema:active"

// SchemaCache хранит активную версию схемы формы в Redis
type SchemaCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewSchemaCache(client redis.Cmdable, ttl time.Duration) *SchemaCache {
	return &SchemaCache{client: client, ttl: ttl}
}

func (c *SchemaCache) Get(ctx context.Context) (*schema.Version, error) {
	b, err := c.client.Get(ctx, ActiveSchemaKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, schema.ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var v schema.Version
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode cached schema: %w", err)
	}
	return &v, nil
}

func (c *SchemaCache) Set(ctx context.Context, v *schema.Version) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode schema: %w", err)
	}
	if err := c.client.Set(ctx, ActiveSchemaKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *SchemaCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, ActiveSchemaKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
