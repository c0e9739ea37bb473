package testutil

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/boolean-maybe/tada/controller"
	"github.com/boolean-maybe/tada/internal/app"
	"github.com/boolean-maybe/tada/model"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/store/tasklist"
	"github.com/boolean-maybe/tada/task"
	"github.com/boolean-maybe/tada/view"
	"github.com/boolean-maybe/tada/view/header"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TestApp wraps the full MVC stack for integration testing with SimulationScreen
type TestApp struct {
	App        *tview.Application
	Screen     tcell.SimulationScreen
	RootLayout *view.RootLayout
	ListView   *view.TaskListView
	Controller *controller.TaskListController
	TaskStore  *tasklist.TaskStore
	KV         *store.MemoryKV
	State      *model.ListState
	t          *testing.T
}

// NewTestApp bootstraps the full MVC stack over an in-memory KV.
// Seed tasks are stored before the task store loads, like a previous session.
// Mirrors the initialization pattern from bootstrap.Bootstrap.
func NewTestApp(t *testing.T, seed ...task.Task) *TestApp {
	t.Helper()

	// 1. Model layer
	kv := store.NewMemoryKV()
	if len(seed) > 0 {
		SeedTasks(t, kv, seed...)
	}
	taskStore := tasklist.NewTaskStore(kv, tasklist.WithIDGenerator(SequentialIDs()))
	taskStore.Initialize(context.Background())
	state := model.NewListState(true)

	// 2. SimulationScreen
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 20)
	screen.Clear()

	// 3. tview.Application with SimulationScreen
	application := tview.NewApplication()
	application.SetScreen(screen)

	// 4. Controller and views
	ctrl := controller.NewTaskListController(taskStore, state)
	listView := view.NewTaskListView(taskStore, ctrl)
	listView.SetFocusSetter(func(p tview.Primitive) {
		application.SetFocus(p)
	})
	rootLayout := view.NewRootLayout(header.NewHeaderWidget(testBackend), listView, state, taskStore)

	// 5. Input wiring
	app.InstallGlobalInputCapture(application, listView, rootLayout, ctrl)
	application.SetRoot(rootLayout.GetPrimitive(), true).EnableMouse(false)
	listView.OnFocus()

	// Note: Do NOT call app.Run() - we use Draw() + screen.Show() for synchronous testing

	ta := &TestApp{
		App:        application,
		Screen:     screen,
		RootLayout: rootLayout,
		ListView:   listView,
		Controller: ctrl,
		TaskStore:  taskStore,
		KV:         kv,
		State:      state,
		t:          t,
	}
	t.Cleanup(ta.Cleanup)
	ta.Draw()
	return ta
}

// testBackend is the backend name shown in the test header
const testBackend = "memory"

// Draw forces a synchronous draw without running the app event loop
func (ta *TestApp) Draw() {
	_, width, height := ta.Screen.GetContents()
	ta.RootLayout.GetPrimitive().SetRect(0, 0, width, height)
	ta.RootLayout.GetPrimitive().Draw(ta.Screen)
	ta.Screen.Show()
}

// SendKey simulates a key press by calling the input capture handler.
// If InputCapture doesn't consume the event, it's forwarded to the focused primitive.
func (ta *TestApp) SendKey(key tcell.Key, ch rune, mod tcell.ModMask) {
	event := tcell.NewEventKey(key, ch, mod)
	consumed := false
	if capture := ta.App.GetInputCapture(); capture != nil {
		consumed = capture(event) == nil
	}

	if !consumed {
		if focused := ta.App.GetFocus(); focused != nil {
			if handler := focused.InputHandler(); handler != nil {
				handler(event, func(p tview.Primitive) { ta.App.SetFocus(p) })
			}
		}
	}

	ta.Draw()
}

// SendText types a string of characters into the focused primitive
func (ta *TestApp) SendText(text string) {
	for _, ch := range text {
		ta.SendKey(tcell.KeyRune, ch, tcell.ModNone)
	}
}

// GetTextAt extracts text from a screen region starting at (x, y) with given width
func (ta *TestApp) GetTextAt(x, y, width int) string {
	contents, screenWidth, _ := ta.Screen.GetContents()
	var result strings.Builder

	for i := 0; i < width; i++ {
		cellIdx := y*screenWidth + (x + i)
		if cellIdx >= len(contents) {
			break
		}
		cell := contents[cellIdx]
		if len(cell.Runes) > 0 {
			result.WriteRune(cell.Runes[0])
		} else {
			result.WriteRune(' ')
		}
	}

	return strings.TrimSpace(result.String())
}

// FindText searches for a text string anywhere on the screen.
// Returns (found, x, y) where x, y are the coordinates of the first match.
func (ta *TestApp) FindText(needle string) (bool, int, int) {
	contents, width, height := ta.Screen.GetContents()

	for y := 0; y < height; y++ {
		var row strings.Builder
		for x := 0; x < width; x++ {
			cell := contents[y*width+x]
			if len(cell.Runes) > 0 {
				row.WriteRune(cell.Runes[0])
			} else {
				row.WriteRune(' ')
			}
		}
		if idx := strings.Index(row.String(), needle); idx >= 0 {
			// convert byte offset to cell column
			return true, len([]rune(row.String()[:idx])), y
		}
	}
	return false, 0, 0
}

// RowOf returns the screen row showing needle, or -1
func (ta *TestApp) RowOf(needle string) int {
	found, _, y := ta.FindText(needle)
	if !found {
		return -1
	}
	return y
}

// AttrsAt returns the text attributes of the cell at (x, y)
func (ta *TestApp) AttrsAt(x, y int) tcell.AttrMask {
	contents, width, _ := ta.Screen.GetContents()
	idx := y*width + x
	if idx < 0 || idx >= len(contents) {
		return 0
	}
	_, _, attrs := contents[idx].Style.Decompose()
	return attrs
}

// Flush waits for pending persistence writes
func (ta *TestApp) Flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ta.TaskStore.Flush(ctx); err != nil {
		ta.t.Fatalf("flush: %v", err)
	}
}

// DumpScreen prints the current screen content for debugging
func (ta *TestApp) DumpScreen() {
	_, width, height := ta.Screen.GetContents()
	ta.t.Logf("Screen size: %dx%d", width, height)
	for y := 0; y < height; y++ {
		line := ta.GetTextAt(0, y, width)
		if line != "" {
			ta.t.Logf("Row %2d: %s", y, line)
		}
	}
}

// Cleanup tears down the test app and releases resources
func (ta *TestApp) Cleanup() {
	ta.RootLayout.Cleanup()
	_ = ta.TaskStore.Close(context.Background())
	ta.Screen.Fini()
}
