package tasklist

// TaskStore is the task list state manager backed by a store.KV.

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/boolean-maybe/tada/config"
	"github.com/boolean-maybe/tada/store"
	taskpkg "github.com/boolean-maybe/tada/task"
)

// ErrClosed is recorded for writes issued after Close
var ErrClosed = errors.New("task store is closed")

// DefaultWriteTimeout bounds a single persistence write
const DefaultWriteTimeout = 5 * time.Second

// TaskStore owns the authoritative, insertion-ordered task collection.
// The collection doubles as the search reference: the visible view is always
// derived from it, so the two cannot diverge.
// Mutations update memory synchronously and hand the encoded collection to a
// background writer; they never wait for storage.
type TaskStore struct {
	mu             sync.RWMutex
	tasks          []taskpkg.Task
	query          string
	newID          config.IDGenerator
	listeners      map[int]store.ChangeListener
	nextListenerID int
	writer         *writer
}

// Option configures a TaskStore
type Option func(*options)

type options struct {
	key          string
	newID        config.IDGenerator
	writeTimeout time.Duration
}

// WithKey sets the storage key the collection is persisted under
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}

// WithIDGenerator sets the task id generator
func WithIDGenerator(gen config.IDGenerator) Option {
	return func(o *options) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// WithWriteTimeout bounds each persistence write
func WithWriteTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.writeTimeout = d
		}
	}
}

// NewTaskStore creates an empty TaskStore persisting to kv and starts its
// background writer. Call Initialize to load existing data and Close to
// flush and stop the writer.
func NewTaskStore(kv store.KV, opts ...Option) *TaskStore {
	o := options{
		key:          config.DefaultStorageKey,
		newID:        config.GenerateNanoID,
		writeTimeout: DefaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &TaskStore{
		tasks:          []taskpkg.Task{},
		newID:          o.newID,
		listeners:      make(map[int]store.ChangeListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
		writer:         newWriter(kv, o.key, o.writeTimeout),
	}
	go s.writer.run()

	slog.Debug("task store created", "key", o.key)
	return s
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *TaskStore) AddListener(listener store.ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *TaskStore) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners.
// Must be called without s.mu held.
func (s *TaskStore) notifyListeners() {
	s.mu.RLock()
	listeners := make([]store.ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// Flush blocks until every write issued so far has been attempted.
func (s *TaskStore) Flush(ctx context.Context) error {
	return s.writer.flush(ctx)
}

// SyncStatus reports whether memory and storage are known to agree
func (s *TaskStore) SyncStatus() SyncStatus {
	return s.writer.status()
}

// Close flushes pending writes and stops the background writer.
// Mutations after Close still apply in memory but are not persisted.
func (s *TaskStore) Close(ctx context.Context) error {
	return s.writer.close(ctx)
}

// ensure TaskStore implements Store
var _ store.Store = (*TaskStore)(nil)
