package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/boolean-maybe/tada/config"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/store/filekv"
	"github.com/boolean-maybe/tada/store/rediskv"
	"github.com/boolean-maybe/tada/store/tasklist"
)

// OpenKV opens the storage backend named in cfg.
// The returned closer releases backend resources after the task store is closed.
func OpenKV(ctx context.Context, cfg *config.Config) (store.KV, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		kv := store.NewMemoryKV()
		return kv, kv, nil

	case config.BackendFile:
		kv, err := filekv.New(cfg.StorageDir())
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		return kv, kv, nil

	case config.BackendRedis:
		r := cfg.Storage.Redis
		kv := rediskv.NewFromOptions(ctx, rediskv.Options{
			Addr:     r.Addr,
			Password: r.Password,
			DB:       r.DB,
			Prefix:   r.Prefix,
		})
		return kv, kv, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// InitStores opens the backend, creates the task store and loads the saved tasks.
func InitStores(ctx context.Context, cfg *config.Config) (*tasklist.TaskStore, io.Closer, error) {
	kv, closer, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	newID, err := config.NewIDGenerator(cfg.Store.IDScheme)
	if err != nil {
		_ = closer.Close()
		return nil, nil, fmt.Errorf("initialize id generator: %w", err)
	}

	taskStore := tasklist.NewTaskStore(kv,
		tasklist.WithKey(cfg.Storage.Key),
		tasklist.WithIDGenerator(newID),
		tasklist.WithWriteTimeout(cfg.Storage.WriteTimeout),
	)
	taskStore.Initialize(ctx)

	slog.Info("task store ready", "backend", cfg.Storage.Backend, "key", cfg.Storage.Key)
	return taskStore, closer, nil
}
