package controller

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/boolean-maybe/tada/model"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/store/tasklist"
)

func newTestController(t *testing.T, titles ...string) (*TaskListController, *tasklist.TaskStore) {
	t.Helper()
	n := 0
	gen := func() (string, error) {
		n++
		return fmt.Sprintf("t%d", n), nil
	}
	ts := tasklist.NewTaskStore(store.NewMemoryKV(), tasklist.WithIDGenerator(gen))
	ts.Initialize(context.Background())
	t.Cleanup(func() { _ = ts.Close(context.Background()) })

	for _, title := range titles {
		ts.Create(title)
	}
	return NewTaskListController(ts, model.NewListState(true)), ts
}

func visibleTitles(s store.Store) []string {
	var out []string
	for _, t := range s.VisibleView() {
		out = append(out, t.Title)
	}
	return out
}

func TestTaskListController_HandleNewTask(t *testing.T) {
	c, ts := newTestController(t, "Buy milk")
	c.GetState().SetSelectedIndex(1)

	created := c.HandleNewTask("Call mom")

	if created.Title != "Call mom" || created.IsDone {
		t.Errorf("HandleNewTask() = %#v", created)
	}
	if got := visibleTitles(ts); !reflect.DeepEqual(got, []string{"Call mom", "Buy milk"}) {
		t.Errorf("visible = %v", got)
	}
	if sel, _ := c.SelectedTask(); sel.ID != created.ID {
		t.Errorf("selected = %s, want new task %s", sel.ID, created.ID)
	}
}

func TestTaskListController_ToggleSelected(t *testing.T) {
	c, ts := newTestController(t, "A", "B", "C")
	// visible: C, B, A
	c.GetState().SetSelectedIndex(1)

	if !c.HandleAction(ActionToggleDone) {
		t.Fatal("HandleAction(ToggleDone) = false")
	}
	got, _ := ts.GetTask("t2")
	if !got.IsDone {
		t.Errorf("task B not toggled: %#v", got)
	}
	if other, _ := ts.GetTask("t3"); other.IsDone {
		t.Error("unselected task toggled")
	}
}

func TestTaskListController_DeleteSelected(t *testing.T) {
	c, ts := newTestController(t, "A", "B", "C")
	c.GetState().SetSelectedIndex(2) // A, the last row

	if !c.HandleAction(ActionDeleteTask) {
		t.Fatal("HandleAction(DeleteTask) = false")
	}
	if got := visibleTitles(ts); !reflect.DeepEqual(got, []string{"C", "B"}) {
		t.Errorf("visible = %v, want [C B]", got)
	}
	if idx := c.GetState().GetSelectedIndex(); idx != 1 {
		t.Errorf("selection = %d, want clamped to 1", idx)
	}
}

func TestTaskListController_ActionsOnEmptyList(t *testing.T) {
	c, _ := newTestController(t)

	for _, id := range []ActionID{ActionToggleDone, ActionDeleteTask, ActionNavDown, ActionNavUp} {
		if c.HandleAction(id) {
			t.Errorf("HandleAction(%s) on empty list = true", id)
		}
	}
	if _, ok := c.SelectedTask(); ok {
		t.Error("SelectedTask() on empty list returned ok")
	}
}

func TestTaskListController_Navigation(t *testing.T) {
	c, _ := newTestController(t, "A", "B", "C")

	c.HandleAction(ActionNavDown)
	c.HandleAction(ActionNavDown)
	c.HandleAction(ActionNavDown) // stops at bottom
	if sel, _ := c.SelectedTask(); sel.Title != "A" {
		t.Errorf("selected = %q, want A", sel.Title)
	}

	c.HandleAction(ActionNavUp)
	if sel, _ := c.SelectedTask(); sel.Title != "B" {
		t.Errorf("selected = %q, want B", sel.Title)
	}
}

func TestTaskListController_SearchScopesActions(t *testing.T) {
	c, ts := newTestController(t, "apple", "banana", "cherry")

	c.HandleSearch("an")
	if got := visibleTitles(ts); !reflect.DeepEqual(got, []string{"banana"}) {
		t.Fatalf("visible = %v, want [banana]", got)
	}

	c.HandleAction(ActionDeleteTask)
	c.ClearSearch()

	if got := visibleTitles(ts); !reflect.DeepEqual(got, []string{"cherry", "apple"}) {
		t.Errorf("visible = %v, want [cherry apple]", got)
	}
	if ts.Query() != "" {
		t.Errorf("Query() = %q after ClearSearch", ts.Query())
	}
}

func TestTaskListController_ToggleHeader(t *testing.T) {
	c, _ := newTestController(t)
	if !c.HandleAction(ActionToggleHeader) {
		t.Fatal("HandleAction(ToggleHeader) = false")
	}
	if c.GetState().IsHeaderVisible() {
		t.Error("header still visible")
	}
}

func TestTaskListController_UnknownAction(t *testing.T) {
	c, _ := newTestController(t, "A")
	if c.HandleAction(ActionSearch) {
		t.Error("HandleAction(Search) = true, focus actions belong to the view")
	}
}
