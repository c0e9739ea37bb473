package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/tada/controller"
	"github.com/boolean-maybe/tada/view"
)

// NewApp creates a tview application.
func NewApp() *tview.Application {
	return tview.NewApplication()
}

// Run runs the tview application.
// Returns an error if the application fails to run.
func Run(app *tview.Application, rootLayout *view.RootLayout) error {
	app.SetRoot(rootLayout.GetPrimitive(), true).EnableMouse(false)
	rootLayout.GetContentView().OnFocus()
	if err := app.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// SetupSignalHandler stops the application on SIGINT or SIGTERM so deferred
// cleanup (flushing pending writes) still runs.
func SetupSignalHandler(app *tview.Application) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("received signal, stopping", "signal", sig.String())
		app.Stop()
	}()
}

// GlobalInputHandler returns the input capture handling global actions:
// header toggle and focus cycling. Other events pass through to the focused widget.
func GlobalInputHandler(
	listView *view.TaskListView,
	rootLayout *view.RootLayout,
	ctrl *controller.TaskListController,
) func(event *tcell.EventKey) *tcell.EventKey {
	globalActions := controller.DefaultGlobalActions()

	return func(event *tcell.EventKey) *tcell.EventKey {
		action := globalActions.Match(event)
		if action == nil {
			return event
		}

		switch action.ID {
		case controller.ActionToggleHeader:
			ctrl.HandleAction(controller.ActionToggleHeader)
		case controller.ActionNextField:
			listView.FocusNext()
		case controller.ActionPrevField:
			listView.FocusPrev()
		default:
			return event
		}
		rootLayout.UpdateHeader()
		return nil
	}
}

// InstallGlobalInputCapture wires global key handling and the quit action
func InstallGlobalInputCapture(
	app *tview.Application,
	listView *view.TaskListView,
	rootLayout *view.RootLayout,
	ctrl *controller.TaskListController,
) {
	listView.SetQuitHandler(app.Stop)
	app.SetInputCapture(GlobalInputHandler(listView, rootLayout, ctrl))
}
