package cache

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyCache implements Service on a Valkey server.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache connects to Valkey and pings it.
func NewValkeyCache(ctx context.Context, opts ...RedisOption) (*ValkeyCache, error) {
	cfg := defaultRedisConfig(opts)

	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:      []string{cfg.Addr},
		Password:         cfg.Password,
		SelectDB:         cfg.DB,
		ConnWriteTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("valkey ping: %w", err)
	}

	return &ValkeyCache{client: client, prefix: cfg.Prefix}, nil
}

// Close closes the Valkey connection.
func (c *ValkeyCache) Close() error {
	c.client.Close()
	return nil
}

func (c *ValkeyCache) Set(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	key = wrapKey(c.prefix, key)
	if expiration <= 0 {
		return c.client.Do(ctx, c.client.B().Set().Key(key).Value(valkey.BinaryString(value)).Build()).Error()
	}
	seconds := int64(math.Ceil(expiration.Seconds()))
	return c.client.Do(ctx, c.client.B().Setex().Key(key).Seconds(seconds).Value(valkey.BinaryString(value)).Build()).Error()
}

func (c *ValkeyCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Do(ctx, c.client.B().Get().Key(wrapKey(c.prefix, key)).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return data, nil
}

func (c *ValkeyCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Do(ctx, c.client.B().Unlink().Key(wrapKeys(c.prefix, keys...)...).Build()).Error()
}

func (c *ValkeyCache) Exists(ctx context.Context, keys ...string) (bool, error) {
	n, err := c.client.Do(ctx, c.client.B().Exists().Key(wrapKeys(c.prefix, keys...)...).Build()).AsInt64()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
