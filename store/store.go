package store

import (
	"context"
	"errors"

	"github.com/boolean-maybe/tada/task"
)

// Store is the interface for the task list state manager.
// Implementations must be thread-safe and notify listeners on changes.
type Store interface {
	// AddListener registers a callback for change notifications.
	// returns a listener ID that can be used to remove the listener.
	AddListener(listener ChangeListener) int

	// RemoveListener removes a previously registered listener by ID
	RemoveListener(id int)

	// Initialize loads the collection from persistent storage.
	// Missing, unreadable or undecodable data yields an empty list.
	Initialize(ctx context.Context)

	// Create appends a new task and persists the collection.
	Create(title string) task.Task

	// Delete removes a task by ID. Returns false if no task matched.
	Delete(id task.ID) bool

	// ToggleDone flips a task's done flag. Returns false if no task matched.
	ToggleDone(id task.ID) bool

	// Search sets the active filter (case-insensitive title substring).
	// An empty query clears the filter. Never touches storage.
	Search(query string)

	// Query returns the active filter text
	Query() string

	// VisibleView returns the filtered tasks, newest first
	VisibleView() []task.Task

	// Tasks returns the full collection in insertion order
	Tasks() []task.Task

	// GetTask retrieves a task by ID
	GetTask(id task.ID) (task.Task, bool)

	// GetStats returns counters for the header
	GetStats() []Stat
}

// ChangeListener is called when the store's data changes
type ChangeListener func()

// Stat represents a statistic to be displayed in the header
type Stat struct {
	Name  string
	Value string
	Order int
}

// ErrKVClosed is returned by KV operations after Close
var ErrKVClosed = errors.New("kv store is closed")

// KV is the persistence collaborator: an opaque string-keyed store.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
