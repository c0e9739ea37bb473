package tasklist

import (
	"fmt"
	"log/slog"
	"time"

	taskpkg "github.com/boolean-maybe/tada/task"
)

const maxIDAttempts = 5

// Create appends a new, not-done task with a fresh id and persists the
// collection. Titles are stored as given, empty ones included.
func (s *TaskStore) Create(title string) taskpkg.Task {
	s.mu.Lock()

	t := taskpkg.Task{
		ID:     s.generateIDLocked(),
		Title:  title,
		IsDone: false,
	}
	s.tasks = append(s.tasks, t)
	s.persistLocked()
	numTasks := len(s.tasks)
	s.mu.Unlock()

	slog.Info("task created", "task_id", t.ID, "num_tasks", numTasks)
	s.notifyListeners()
	return t
}

// Delete removes the task with the given id.
// Unknown ids are a no-op; deleting twice equals deleting once.
func (s *TaskStore) Delete(id taskpkg.ID) bool {
	s.mu.Lock()

	idx := taskpkg.IndexOf(s.tasks, id)
	if idx < 0 {
		s.mu.Unlock()
		slog.Debug("delete of unknown task ignored", "task_id", id)
		return false
	}

	updated := make([]taskpkg.Task, 0, len(s.tasks)-1)
	updated = append(updated, s.tasks[:idx]...)
	updated = append(updated, s.tasks[idx+1:]...)
	s.tasks = updated
	s.persistLocked()
	s.mu.Unlock()

	slog.Info("task deleted", "task_id", id)
	s.notifyListeners()
	return true
}

// ToggleDone flips the done flag of the task with the given id.
// All other tasks, and the task's position, are left untouched.
func (s *TaskStore) ToggleDone(id taskpkg.ID) bool {
	s.mu.Lock()

	idx := taskpkg.IndexOf(s.tasks, id)
	if idx < 0 {
		s.mu.Unlock()
		slog.Debug("toggle of unknown task ignored", "task_id", id)
		return false
	}

	updated := make([]taskpkg.Task, len(s.tasks))
	copy(updated, s.tasks)
	updated[idx] = updated[idx].Toggled()
	s.tasks = updated
	isDone := updated[idx].IsDone
	s.persistLocked()
	s.mu.Unlock()

	slog.Info("task toggled", "task_id", id, "is_done", isDone)
	s.notifyListeners()
	return true
}

// generateIDLocked returns an id not used by any task in the collection.
// Caller must hold s.mu lock.
func (s *TaskStore) generateIDLocked() taskpkg.ID {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		raw, err := s.newID()
		if err != nil {
			slog.Warn("id generation failed, retrying", "attempt", attempt+1, "error", err)
			continue
		}
		id := taskpkg.ID(raw)
		if id != "" && taskpkg.IndexOf(s.tasks, id) < 0 {
			return id
		}
		slog.Debug("ID collision detected, regenerating", "task_id", id)
	}

	// generator is broken; fall back to a clock-based id that is still unique here
	for n := time.Now().UnixNano(); ; n++ {
		id := taskpkg.ID(fmt.Sprintf("t%d", n))
		if taskpkg.IndexOf(s.tasks, id) < 0 {
			slog.Error("id generator unusable, using clock-based id", "task_id", id)
			return id
		}
	}
}
