// Package filekv persists values as one JSON file per key in a directory.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/boolean-maybe/tada/store"
)

const fileExt = ".json"

// KV stores each key in <dir>/<escaped key>.json.
// Writes go to a temp file in the same directory and are renamed into place,
// so a crash never leaves a half-written value behind.
type KV struct {
	dir    string
	mu     sync.Mutex
	closed bool
}

// New creates a file KV rooted at dir, creating the directory if needed
func New(dir string) (*KV, error) {
	if dir == "" {
		return nil, errors.New("filekv: empty directory")
	}
	//nolint:gosec // G301: 0755 is appropriate for data directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	slog.Debug("file kv opened", "dir", dir)
	return &KV{dir: dir}, nil
}

// Dir returns the directory values are stored in
func (k *KV) Dir() string {
	return k.dir
}

// Path returns the file a key is stored in
func (k *KV) Path(key string) string {
	return filepath.Join(k.dir, url.PathEscape(key)+fileExt)
}

// Get reads the value stored under key. A missing file means the key is absent.
func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return "", false, store.ErrKVClosed
	}

	//nolint:gosec // G304: path is built from the data dir and an escaped key
	data, err := os.ReadFile(k.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set atomically replaces the value stored under key
func (k *KV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return store.ErrKVClosed
	}

	path := k.Path(key)
	tmp, err := os.CreateTemp(k.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	//nolint:gosec // G302: 0644 is appropriate for user data files
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

// Close marks the KV closed; later calls return store.ErrKVClosed
func (k *KV) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.closed = true
	return nil
}

// ensure KV implements store.KV
var _ store.KV = (*KV)(nil)
