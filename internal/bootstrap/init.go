package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/rivo/tview"

	"github.com/boolean-maybe/tada/config"
	"github.com/boolean-maybe/tada/controller"
	"github.com/boolean-maybe/tada/internal/app"
	"github.com/boolean-maybe/tada/internal/background"
	"github.com/boolean-maybe/tada/model"
	"github.com/boolean-maybe/tada/store/tasklist"
	"github.com/boolean-maybe/tada/view"
	"github.com/boolean-maybe/tada/view/header"
)

// syncPollInterval is how often the header's sync indicator is refreshed
const syncPollInterval = 500 * time.Millisecond

// BootstrapResult contains all initialized application components.
type BootstrapResult struct {
	Cfg          *config.Config
	LogLevel     slog.Level
	TaskStore    *tasklist.TaskStore
	KVCloser     io.Closer
	ListState    *model.ListState
	App          *tview.Application
	Controller   *controller.TaskListController
	ListView     *view.TaskListView
	HeaderWidget *header.HeaderWidget
	RootLayout   *view.RootLayout
	Context      context.Context
	CancelFunc   context.CancelFunc
}

// Bootstrap orchestrates the complete application initialization sequence.
func Bootstrap() (*BootstrapResult, error) {
	// Phase 1: Configuration and logging
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logLevel := InitLogging(cfg)

	// Phase 2: Store initialization
	ctx, cancel := context.WithCancel(context.Background())
	taskStore, kvCloser, err := InitStores(ctx, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	// Phase 3: Model and controller
	listState := model.NewListState(config.GetHeaderVisible())
	ctrl := controller.NewTaskListController(taskStore, listState)

	// Phase 4: Application and views
	application := app.NewApp()
	app.SetupSignalHandler(application)

	listView := view.NewTaskListView(taskStore, ctrl)
	listView.SetFocusSetter(func(p tview.Primitive) {
		application.SetFocus(p)
	})
	headerWidget := header.NewHeaderWidget(cfg.Storage.Backend)
	rootLayout := view.NewRootLayout(headerWidget, listView, listState, taskStore)

	// Phase 5: Input wiring
	app.InstallGlobalInputCapture(application, listView, rootLayout, ctrl)

	// Phase 6: Background tasks
	background.StartSyncMonitor(ctx, taskStore, syncPollInterval, func(label string) {
		application.QueueUpdateDraw(func() {
			rootLayout.SetSyncLabel(label)
		})
	})

	return &BootstrapResult{
		Cfg:          cfg,
		LogLevel:     logLevel,
		TaskStore:    taskStore,
		KVCloser:     kvCloser,
		ListState:    listState,
		App:          application,
		Controller:   ctrl,
		ListView:     listView,
		HeaderWidget: headerWidget,
		RootLayout:   rootLayout,
		Context:      ctx,
		CancelFunc:   cancel,
	}, nil
}

// Shutdown flushes pending writes and releases the storage backend.
func (r *BootstrapResult) Shutdown() {
	r.CancelFunc()

	ctx, cancel := context.WithTimeout(context.Background(), r.Cfg.Storage.WriteTimeout+time.Second)
	defer cancel()
	if err := r.TaskStore.Close(ctx); err != nil {
		slog.Error("failed to flush tasks on exit", "error", err)
	}
	if st := r.TaskStore.SyncStatus(); st.LastError != nil {
		slog.Error("last write failed, recent changes may be lost", "error", st.LastError)
	}
	if err := r.KVCloser.Close(); err != nil {
		slog.Warn("failed to close storage", "error", err)
	}
}
