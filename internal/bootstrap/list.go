package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"

	taskpkg "github.com/boolean-maybe/tada/task"
)

// ListTasks loads the configured task list and prints it newest first.
// Used by the --list flag; no TUI is started.
func ListTasks(w io.Writer) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	InitLogging(cfg)

	ctx := context.Background()
	taskStore, closer, err := InitStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	defer func() { _ = taskStore.Close(ctx) }()

	return WriteTaskList(w, taskStore.VisibleView())
}

// WriteTaskList writes one line per task: a checkbox, then the title
func WriteTaskList(w io.Writer, tasks []taskpkg.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "no tasks")
		return err
	}
	for _, t := range tasks {
		box := "[ ]"
		if t.IsDone {
			box = "[x]"
		}
		title := strings.ReplaceAll(t.Title, "\n", " ")
		if _, err := fmt.Fprintf(w, "%s %s\n", box, title); err != nil {
			return err
		}
	}
	return nil
}
