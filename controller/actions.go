package controller

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ActionRegistry maps keyboard shortcuts to actions and matches key events.

// ActionID identifies a specific action
type ActionID string

// ActionID values for global actions (available regardless of focus).
const (
	ActionQuit         ActionID = "quit"
	ActionToggleHeader ActionID = "toggle_header"
	ActionNextField    ActionID = "next_field"
	ActionPrevField    ActionID = "prev_field"
)

// ActionID values for the task list.
const (
	ActionToggleDone ActionID = "toggle_done"
	ActionDeleteTask ActionID = "delete_task"
	ActionNewTask    ActionID = "new_task"
	ActionNavUp      ActionID = "nav_up"
	ActionNavDown    ActionID = "nav_down"
)

// ActionID values for search.
const (
	ActionSearch      ActionID = "search"
	ActionClearSearch ActionID = "clear_search"
)

// Action represents a keyboard shortcut binding
type Action struct {
	ID           ActionID
	Key          tcell.Key
	Rune         rune // for letter keys (when Key == tcell.KeyRune)
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool // whether to display in header bar
}

// KeyLabel returns the short key name shown in the header
func (a Action) KeyLabel() string {
	if a.Key == tcell.KeyRune {
		if a.Rune == ' ' {
			return "Space"
		}
		return string(a.Rune)
	}
	name := tcell.KeyNames[a.Key]
	if name == "" {
		name = fmt.Sprintf("Key(%d)", a.Key)
	}
	if a.Modifier&tcell.ModShift != 0 {
		name = "Shift-" + name
	}
	return name
}

// ActionRegistry holds the available actions for a view.
// Stores actions in 3 places for different purposes:
// - actions slice preserves registration order (needed for header display)
// - byKey/byRune maps provide O(1) lookups by key
type ActionRegistry struct {
	actions []Action             // All registered actions in order
	byKey   map[tcell.Key]Action // special keys (arrows, function keys, etc.)
	byRune  map[rune]Action      // character keys
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]Action, 0),
		byKey:   make(map[tcell.Key]Action),
		byRune:  make(map[rune]Action),
	}
}

// Register adds an action to the registry
func (r *ActionRegistry) Register(action Action) {
	r.actions = append(r.actions, action)
	if action.Key == tcell.KeyRune {
		r.byRune[action.Rune] = action
	} else {
		r.byKey[action.Key] = action
	}
}

// Merge adds all actions from another registry into this one.
// Actions from the other registry are appended to preserve order.
// If there are key conflicts, the other registry's actions take precedence.
func (r *ActionRegistry) Merge(other *ActionRegistry) {
	for _, action := range other.actions {
		r.Register(action)
	}
}

// GetActions returns all registered actions
func (r *ActionRegistry) GetActions() []Action {
	return r.actions
}

// Match finds an action matching the given key event
func (r *ActionRegistry) Match(event *tcell.EventKey) *Action {
	// ignore caps lock, num lock, etc.
	mod := event.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)

	for i := range r.actions {
		action := &r.actions[i]

		if event.Key() == tcell.KeyRune {
			if action.Key == tcell.KeyRune && action.Rune == event.Rune() {
				// explicit modifiers require an exact match
				if action.Modifier != 0 && action.Modifier != mod {
					continue
				}
				return action
			}
			continue
		}

		if action.Key == event.Key() && action.Modifier == mod {
			return action
		}
	}
	return nil
}

// GetHeaderActions returns only actions marked for header display.
// Actions sharing an ID are shown once.
func (r *ActionRegistry) GetHeaderActions() []Action {
	var result []Action
	seen := make(map[ActionID]bool)
	for _, a := range r.actions {
		if a.ShowInHeader && !seen[a.ID] {
			seen[a.ID] = true
			result = append(result, a)
		}
	}
	return result
}

// HeaderHint renders header actions as "key label" pairs
func (r *ActionRegistry) HeaderHint() string {
	actions := r.GetHeaderActions()
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, a.KeyLabel()+" "+a.Label)
	}
	return strings.Join(parts, "  ")
}

// DefaultGlobalActions returns actions handled regardless of which widget has focus
func DefaultGlobalActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionToggleHeader, Key: tcell.KeyF10, Label: "Header", ShowInHeader: true})
	r.Register(Action{ID: ActionNextField, Key: tcell.KeyTab, Label: "Next"})
	r.Register(Action{ID: ActionPrevField, Key: tcell.KeyBacktab, Label: "Prev"})
	return r
}

// TaskListActions returns the canonical action registry for the task list.
// Single source of truth for both input handling and header display.
func TaskListActions() *ActionRegistry {
	r := NewActionRegistry()

	// navigation (not shown in header)
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyUp, Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyDown, Label: "↓"})
	r.Register(Action{ID: ActionNavUp, Key: tcell.KeyRune, Rune: 'k', Label: "↑"})
	r.Register(Action{ID: ActionNavDown, Key: tcell.KeyRune, Rune: 'j', Label: "↓"})

	r.Register(Action{ID: ActionToggleDone, Key: tcell.KeyRune, Rune: ' ', Label: "Done", ShowInHeader: true})
	r.Register(Action{ID: ActionDeleteTask, Key: tcell.KeyRune, Rune: 'd', Label: "Delete", ShowInHeader: true})
	r.Register(Action{ID: ActionDeleteTask, Key: tcell.KeyDelete, Label: "Delete"})
	r.Register(Action{ID: ActionSearch, Key: tcell.KeyRune, Rune: '/', Label: "Search", ShowInHeader: true})
	r.Register(Action{ID: ActionNewTask, Key: tcell.KeyRune, Rune: 'a', Label: "Add", ShowInHeader: true})
	r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit", ShowInHeader: true})

	return r
}

// SearchActions returns actions available while the search box has focus
func SearchActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionClearSearch, Key: tcell.KeyEscape, Label: "Clear", ShowInHeader: true})
	return r
}
