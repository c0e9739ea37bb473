package tasklist

import (
	"log/slog"
	"strconv"

	"github.com/boolean-maybe/tada/store"
	taskpkg "github.com/boolean-maybe/tada/task"
)

// Search sets the active filter. The visible view becomes the tasks whose
// title contains query (case-insensitive), or every task when query is
// empty. The text is used as given, without trimming. Storage and the
// collection are left untouched.
func (s *TaskStore) Search(query string) {
	s.mu.Lock()
	changed := s.query != query
	s.query = query
	s.mu.Unlock()

	if !changed {
		return
	}
	slog.Debug("search query changed", "query", query)
	s.notifyListeners()
}

// Query returns the active filter text ("" when no filter is applied)
func (s *TaskStore) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// VisibleView returns the currently displayed tasks, newest first.
// The filter is re-evaluated against the full collection on every call.
func (s *TaskStore) VisibleView() []taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return taskpkg.Reversed(taskpkg.Filter(s.tasks, s.query))
}

// Tasks returns a copy of the full collection in insertion order
func (s *TaskStore) Tasks() []taskpkg.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]taskpkg.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// GetTask retrieves a task by ID
func (s *TaskStore) GetTask(id taskpkg.ID) (taskpkg.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := taskpkg.IndexOf(s.tasks, id)
	if idx < 0 {
		return taskpkg.Task{}, false
	}
	return s.tasks[idx], true
}

// GetStats returns task counters for the header
func (s *TaskStore) GetStats() []store.Stat {
	s.mu.RLock()
	total := len(s.tasks)
	done := 0
	for _, t := range s.tasks {
		if t.IsDone {
			done++
		}
	}
	s.mu.RUnlock()

	return []store.Stat{
		{Name: "Tasks", Value: strconv.Itoa(total), Order: 1},
		{Name: taskpkg.StatusLabel(taskpkg.StatusActive), Value: strconv.Itoa(total - done), Order: 2},
		{Name: taskpkg.StatusLabel(taskpkg.StatusDone), Value: strconv.Itoa(done), Order: 3},
	}
}
