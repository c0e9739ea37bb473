// Package rediskv persists values in Redis with plain GET and SET.
package rediskv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/boolean-maybe/tada/store"
)

// Options configures a Redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// KV stores values under Prefix+key without expiry
type KV struct {
	client *redis.Client
	prefix string
	owned  bool // client was created by NewFromOptions and is closed by Close
}

// New wraps an existing client. The caller keeps ownership of client.
func New(client *redis.Client, prefix string) *KV {
	if client == nil {
		panic("rediskv.New: client is nil")
	}
	return &KV{client: client, prefix: prefix}
}

// NewFromOptions creates a client owned by the returned KV. The connection is
// checked with PING; a failure is only logged since go-redis dials lazily and
// later reads and writes report their own errors.
func NewFromOptions(ctx context.Context, opts Options) *KV {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis not reachable, continuing", "addr", opts.Addr, "error", err)
	} else {
		slog.Debug("redis kv connected", "addr", opts.Addr, "db", opts.DB, "prefix", opts.Prefix)
	}

	kv := New(client, opts.Prefix)
	kv.owned = true
	return kv
}

func (k *KV) redisKey(key string) string {
	return k.prefix + key
}

// Get returns the value stored under key; redis.Nil means absent
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := k.client.Get(ctx, k.redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		if errors.Is(err, redis.ErrClosed) {
			return "", false, store.ErrKVClosed
		}
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with no expiry
func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := k.client.Set(ctx, k.redisKey(key), value, 0).Err(); err != nil {
		if errors.Is(err, redis.ErrClosed) {
			return store.ErrKVClosed
		}
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the client if this KV created it
func (k *KV) Close() error {
	if !k.owned {
		return nil
	}
	return k.client.Close()
}

// ensure KV implements store.KV
var _ store.KV = (*KV)(nil)
