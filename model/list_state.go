package model

import (
	"log/slog"
	"sync"
)

// ListStateListener is called when selection or header visibility changes
type ListStateListener func()

// ListState holds UI state for the task list view: the selected row of the
// visible view and whether the header is shown.
type ListState struct {
	mu             sync.RWMutex
	selectedIndex  int
	headerVisible  bool
	listeners      map[int]ListStateListener
	nextListenerID int
}

// NewListState creates list state with the first row selected
func NewListState(headerVisible bool) *ListState {
	return &ListState{
		headerVisible:  headerVisible,
		listeners:      make(map[int]ListStateListener),
		nextListenerID: 1, // Start at 1 to avoid conflict with zero-value sentinel
	}
}

// GetSelectedIndex returns the selected row
func (ls *ListState) GetSelectedIndex() int {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return ls.selectedIndex
}

// SetSelectedIndex sets the selected row. Negative values select the first row.
func (ls *ListState) SetSelectedIndex(idx int) {
	if idx < 0 {
		idx = 0
	}
	ls.mu.Lock()
	changed := ls.selectedIndex != idx
	ls.selectedIndex = idx
	ls.mu.Unlock()
	if changed {
		ls.notifyListeners()
	}
}

// MoveSelection moves the selection by delta within [0, count).
// Returns true if the selection moved.
func (ls *ListState) MoveSelection(delta, count int) bool {
	if count <= 0 {
		return false
	}
	ls.mu.Lock()
	next := clamp(ls.selectedIndex+delta, count)
	changed := next != ls.selectedIndex
	ls.selectedIndex = next
	ls.mu.Unlock()
	if changed {
		ls.notifyListeners()
	}
	return changed
}

// ClampSelection keeps the selection inside a list of count rows.
// Does not notify listeners; called while rendering.
func (ls *ListState) ClampSelection(count int) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.selectedIndex = clamp(ls.selectedIndex, count)
	return ls.selectedIndex
}

func clamp(idx, count int) int {
	if count <= 0 || idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}

// IsHeaderVisible reports whether the header is shown
func (ls *ListState) IsHeaderVisible() bool {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return ls.headerVisible
}

// ToggleHeader flips header visibility and returns the new value
func (ls *ListState) ToggleHeader() bool {
	ls.mu.Lock()
	ls.headerVisible = !ls.headerVisible
	visible := ls.headerVisible
	ls.mu.Unlock()

	slog.Debug("header visibility toggled", "visible", visible)
	ls.notifyListeners()
	return visible
}

// AddListener registers a callback for state changes
func (ls *ListState) AddListener(listener ListStateListener) int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	id := ls.nextListenerID
	ls.nextListenerID++
	ls.listeners[id] = listener
	return id
}

// RemoveListener removes a listener by ID
func (ls *ListState) RemoveListener(id int) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	delete(ls.listeners, id)
}

func (ls *ListState) notifyListeners() {
	ls.mu.RLock()
	listeners := make([]ListStateListener, 0, len(ls.listeners))
	for _, l := range ls.listeners {
		listeners = append(listeners, l)
	}
	ls.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}
