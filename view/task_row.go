package view

import (
	"strings"

	"github.com/rivo/tview"

	taskpkg "github.com/boolean-maybe/tada/task"
)

// formatTaskRow renders one task as a list line: status box then title.
// Done titles are struck through.
func formatTaskRow(t taskpkg.Task) string {
	title := tview.Escape(strings.ReplaceAll(t.Title, "\n", " "))
	emoji := taskpkg.StatusEmoji(t.Status())
	if t.IsDone {
		return emoji + " [::s]" + title + "[::-]"
	}
	return emoji + " " + title
}
