package tasklist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/boolean-maybe/tada/store"
	taskpkg "github.com/boolean-maybe/tada/task"
)

// Initialize loads the collection from storage. Absent data, read errors and
// decode errors all leave the store with an empty collection; they are
// logged, never returned. The active filter is cleared.
func (s *TaskStore) Initialize(ctx context.Context) {
	tasks := s.load(ctx)

	s.mu.Lock()
	s.tasks = tasks
	s.query = ""
	s.mu.Unlock()

	slog.Info("task store initialized", "key", s.writer.key, "num_tasks", len(tasks))
	s.notifyListeners()
}

// load reads and decodes the stored collection
func (s *TaskStore) load(ctx context.Context) []taskpkg.Task {
	key := s.writer.key
	data, ok, err := s.writer.kv.Get(ctx, key)
	if err != nil {
		slog.Warn("failed to read tasks, starting empty", "key", key, "error", err)
		return []taskpkg.Task{}
	}
	if !ok {
		slog.Debug("no stored tasks, starting empty", "key", key)
		return []taskpkg.Task{}
	}

	tasks, err := taskpkg.DecodeCollection(data)
	if err != nil {
		slog.Warn("failed to decode stored tasks, starting empty", "key", key, "error", err)
		return []taskpkg.Task{}
	}
	return dedupe(tasks)
}

// dedupe drops later tasks whose id was already seen
func dedupe(tasks []taskpkg.Task) []taskpkg.Task {
	seen := make(map[taskpkg.ID]struct{}, len(tasks))
	result := make([]taskpkg.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			slog.Warn("dropping task with duplicate id", "task_id", t.ID, "title", t.Title)
			continue
		}
		seen[t.ID] = struct{}{}
		result = append(result, t)
	}
	return result
}

// persistLocked hands the current collection to the writer.
// Caller must hold s.mu lock so snapshots reach the writer in mutation order.
func (s *TaskStore) persistLocked() {
	data, err := taskpkg.EncodeCollection(s.tasks)
	if err != nil {
		slog.Error("failed to encode tasks, not persisted", "num_tasks", len(s.tasks), "error", err)
		return
	}
	s.writer.issue(data)
}

// SyncStatus describes the persistence state of the collection
type SyncStatus struct {
	// Pending is true while an issued snapshot has not been written yet
	Pending bool
	// LastError is the error of the most recent write, nil once a write succeeds
	LastError error
	// LastSync is the time of the most recent successful write
	LastSync time.Time
}

// writer performs persistence writes on a single goroutine.
// It keeps only the newest snapshot, so writes never land out of order.
type writer struct {
	kv      store.KV
	key     string
	timeout time.Duration

	mu       sync.Mutex
	pending  *snapshot
	issued   uint64 // generation of the newest issued snapshot
	written  uint64 // generation of the newest attempted snapshot
	lastErr  error
	lastSync time.Time
	changed  chan struct{} // closed whenever written advances
	closed   bool

	wake   chan struct{}
	stop   chan struct{}
	exited chan struct{}
}

type snapshot struct {
	gen  uint64
	data string
}

func newWriter(kv store.KV, key string, timeout time.Duration) *writer {
	return &writer{
		kv:      kv,
		key:     key,
		timeout: timeout,
		changed: make(chan struct{}),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// issue queues data as the newest snapshot. Never blocks on I/O.
func (w *writer) issue(data string) {
	w.mu.Lock()
	if w.closed {
		w.lastErr = ErrClosed
		w.mu.Unlock()
		slog.Warn("task store closed, write dropped", "key", w.key)
		return
	}
	w.issued++
	w.pending = &snapshot{gen: w.issued, data: data}
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.exited)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

// drain writes the pending snapshot until none is left
func (w *writer) drain() {
	for {
		w.mu.Lock()
		snap := w.pending
		w.pending = nil
		w.mu.Unlock()
		if snap == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		err := w.kv.Set(ctx, w.key, snap.data)
		cancel()

		w.mu.Lock()
		w.written = snap.gen
		if err != nil {
			w.lastErr = err
			slog.Error("failed to persist tasks", "key", w.key, "error", err)
		} else {
			w.lastErr = nil
			w.lastSync = time.Now()
			slog.Debug("tasks persisted", "key", w.key, "bytes", len(snap.data))
		}
		close(w.changed)
		w.changed = make(chan struct{})
		w.mu.Unlock()
	}
}

func (w *writer) flush(ctx context.Context) error {
	for {
		w.mu.Lock()
		if w.written >= w.issued {
			w.mu.Unlock()
			return nil
		}
		changed := w.changed
		w.mu.Unlock()

		select {
		case <-changed:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *writer) status() SyncStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return SyncStatus{
		Pending:   w.written < w.issued,
		LastError: w.lastErr,
		LastSync:  w.lastSync,
	}
}

func (w *writer) close(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.stop)
	select {
	case <-w.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
