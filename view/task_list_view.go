package view

import (
	"fmt"

	"github.com/boolean-maybe/tada/controller"
	"github.com/boolean-maybe/tada/store"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TaskListView renders the visible view with a search box above it and the
// new task input below it.
type TaskListView struct {
	root      *tview.Flex
	searchBox *tview.InputField
	list      *tview.List
	newTask   *tview.InputField

	taskStore     store.Store
	controller    *controller.TaskListController
	registry      *controller.ActionRegistry
	searchActions *controller.ActionRegistry

	focusSetter     func(p tview.Primitive)
	onQuit          func()
	storeListenerID int
	stateListenerID int
}

// NewTaskListView creates the task list view and subscribes it to store and
// selection changes
func NewTaskListView(taskStore store.Store, ctrl *controller.TaskListController) *TaskListView {
	v := &TaskListView{
		taskStore:     taskStore,
		controller:    ctrl,
		registry:      ctrl.GetActionRegistry(),
		searchActions: controller.SearchActions(),
	}
	v.build()

	v.storeListenerID = taskStore.AddListener(v.refresh)
	v.stateListenerID = ctrl.GetState().AddListener(v.refresh)
	v.refresh()
	return v
}

func (v *TaskListView) build() {
	v.searchBox = tview.NewInputField().
		SetLabel(" Search: ").
		SetPlaceholder("filter by title").
		SetFieldWidth(0)
	v.searchBox.SetChangedFunc(func(text string) {
		v.controller.HandleSearch(text)
	})
	v.searchBox.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEscape:
			v.clearSearch()
			v.focus(v.list)
		case tcell.KeyEnter:
			v.focus(v.list)
		}
	})

	v.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	v.list.SetBorder(true)
	v.list.SetInputCapture(v.handleListInput)

	v.newTask = tview.NewInputField().
		SetLabel(" Add new Task: ").
		SetFieldWidth(0)
	v.newTask.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			v.controller.HandleNewTask(v.newTask.GetText())
			v.newTask.SetText("")
		case tcell.KeyEscape:
			v.focus(v.list)
		}
	})

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.searchBox, 1, 0, false).
		AddItem(v.list, 0, 1, true).
		AddItem(v.newTask, 1, 0, false)
}

// handleListInput routes keys pressed while the list has focus.
// Unmatched keys are swallowed so tview's own list bindings never move the cursor.
func (v *TaskListView) handleListInput(event *tcell.EventKey) *tcell.EventKey {
	action := v.registry.Match(event)
	if action == nil {
		return nil
	}

	switch action.ID {
	case controller.ActionSearch:
		v.focus(v.searchBox)
	case controller.ActionNewTask:
		v.focus(v.newTask)
	case controller.ActionQuit:
		if v.onQuit != nil {
			v.onQuit()
		}
	default:
		v.controller.HandleAction(action.ID)
	}
	return nil
}

func (v *TaskListView) clearSearch() {
	v.searchBox.SetText("")
	v.controller.ClearSearch()
}

// refresh redraws the list from the store's visible view
func (v *TaskListView) refresh() {
	tasks := v.taskStore.VisibleView()
	selected := v.controller.GetState().ClampSelection(len(tasks))

	v.list.Clear()
	for _, t := range tasks {
		v.list.AddItem(formatTaskRow(t), "", 0, nil)
	}
	if len(tasks) > 0 {
		v.list.SetCurrentItem(selected)
	}

	query := v.taskStore.Query()
	if query == "" {
		v.list.SetTitle(fmt.Sprintf(" Tasks (%d) ", len(tasks)))
	} else {
		v.list.SetTitle(fmt.Sprintf(" Tasks matching %q (%d) ", tview.Escape(query), len(tasks)))
	}

	// the store clears the query on reload; keep the box in step
	if v.searchBox.GetText() != query {
		v.searchBox.SetText(query)
	}
}

func (v *TaskListView) focus(p tview.Primitive) {
	if v.focusSetter != nil {
		v.focusSetter(p)
	}
}

// FocusNext moves focus to the next widget: search, list, new task input
func (v *TaskListView) FocusNext() {
	v.cycleFocus(1)
}

// FocusPrev moves focus to the previous widget
func (v *TaskListView) FocusPrev() {
	v.cycleFocus(-1)
}

func (v *TaskListView) cycleFocus(step int) {
	order := []tview.Primitive{v.searchBox, v.list, v.newTask}
	current := 1
	for i, p := range order {
		if p.HasFocus() {
			current = i
			break
		}
	}
	next := (current + step + len(order)) % len(order)
	v.focus(order[next])
}

// SetFocusSetter sets the callback used to move application focus
func (v *TaskListView) SetFocusSetter(setter func(p tview.Primitive)) {
	v.focusSetter = setter
}

// SetQuitHandler sets the callback run by the quit action
func (v *TaskListView) SetQuitHandler(onQuit func()) {
	v.onQuit = onQuit
}

// IsInputFocused reports whether a text input has focus
func (v *TaskListView) IsInputFocused() bool {
	return v.searchBox.HasFocus() || v.newTask.HasFocus()
}

// GetPrimitive returns the root primitive
func (v *TaskListView) GetPrimitive() tview.Primitive {
	return v.root
}

// GetActionRegistry returns the actions shown in the header for this view
func (v *TaskListView) GetActionRegistry() *controller.ActionRegistry {
	if v.searchBox.HasFocus() {
		return v.searchActions
	}
	return v.registry
}

// OnFocus puts focus on the list
func (v *TaskListView) OnFocus() {
	v.focus(v.list)
}

// Cleanup removes store and state listeners
func (v *TaskListView) Cleanup() {
	v.taskStore.RemoveListener(v.storeListenerID)
	v.controller.GetState().RemoveListener(v.stateListenerID)
}

// ensure TaskListView implements the controller view interfaces
var (
	_ controller.View          = (*TaskListView)(nil)
	_ controller.FocusSettable = (*TaskListView)(nil)
)
