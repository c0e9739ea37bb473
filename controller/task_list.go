package controller

import (
	"log/slog"

	"github.com/boolean-maybe/tada/model"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/task"
)

// TaskListController translates task list input into store operations.
// It acts on the task selected in the visible view.
type TaskListController struct {
	taskStore store.Store
	state     *model.ListState
	registry  *ActionRegistry
}

// NewTaskListController creates a controller for the task list
func NewTaskListController(taskStore store.Store, state *model.ListState) *TaskListController {
	return &TaskListController{
		taskStore: taskStore,
		state:     state,
		registry:  TaskListActions(),
	}
}

// GetActionRegistry returns the actions available in the task list
func (c *TaskListController) GetActionRegistry() *ActionRegistry {
	return c.registry
}

// GetState returns the list UI state
func (c *TaskListController) GetState() *model.ListState {
	return c.state
}

// SelectedTask returns the task under the cursor in the visible view
func (c *TaskListController) SelectedTask() (task.Task, bool) {
	view := c.taskStore.VisibleView()
	if len(view) == 0 {
		return task.Task{}, false
	}
	idx := c.state.ClampSelection(len(view))
	return view[idx], true
}

// HandleAction processes a task list action.
// Returns true if the action was handled.
func (c *TaskListController) HandleAction(actionID ActionID) bool {
	switch actionID {
	case ActionToggleDone:
		return c.handleToggleDone()
	case ActionDeleteTask:
		return c.handleDelete()
	case ActionNavUp:
		return c.state.MoveSelection(-1, len(c.taskStore.VisibleView()))
	case ActionNavDown:
		return c.state.MoveSelection(1, len(c.taskStore.VisibleView()))
	case ActionToggleHeader:
		c.state.ToggleHeader()
		return true
	default:
		return false
	}
}

func (c *TaskListController) handleToggleDone() bool {
	selected, ok := c.SelectedTask()
	if !ok {
		return false
	}
	return c.taskStore.ToggleDone(selected.ID)
}

func (c *TaskListController) handleDelete() bool {
	selected, ok := c.SelectedTask()
	if !ok {
		return false
	}
	if !c.taskStore.Delete(selected.ID) {
		return false
	}
	c.state.ClampSelection(len(c.taskStore.VisibleView()))
	return true
}

// HandleNewTask creates a task from the input text and selects it.
// The text is used as typed; empty titles are allowed.
func (c *TaskListController) HandleNewTask(title string) task.Task {
	created := c.taskStore.Create(title)
	// newest first: a visible new task is always the top row
	c.state.SetSelectedIndex(0)
	slog.Debug("task added from input", "task_id", created.ID)
	return created
}

// HandleSearch applies the search text and resets the selection
func (c *TaskListController) HandleSearch(query string) {
	c.taskStore.Search(query)
	c.state.SetSelectedIndex(0)
}

// ClearSearch removes the active filter
func (c *TaskListController) ClearSearch() {
	c.HandleSearch("")
}
