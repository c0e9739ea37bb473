package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/boolean-maybe/tada/store/tasklist"
)

// SyncReporter exposes the persistence state of a task store
type SyncReporter interface {
	SyncStatus() tasklist.SyncStatus
}

// Sync labels shown in the header
const (
	SyncLabelSaved  = "saved"
	SyncLabelSaving = "saving"
	SyncLabelFailed = "failed"
)

// SyncLabel summarizes a SyncStatus for display
func SyncLabel(st tasklist.SyncStatus) string {
	switch {
	case st.Pending:
		return SyncLabelSaving
	case st.LastError != nil:
		return SyncLabelFailed
	default:
		return SyncLabelSaved
	}
}

// StartSyncMonitor polls reporter every interval and calls publish whenever
// the sync label changes. The first label is always published.
// Stops when ctx is cancelled.
func StartSyncMonitor(
	ctx context.Context,
	reporter SyncReporter,
	interval time.Duration,
	publish func(label string),
) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := ""
		for {
			st := reporter.SyncStatus()
			label := SyncLabel(st)
			if label != last {
				if label == SyncLabelFailed {
					slog.Warn("tasks not saved", "error", st.LastError)
				}
				last = label
				publish(label)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
