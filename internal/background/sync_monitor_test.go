package background

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/boolean-maybe/tada/store/tasklist"
)

type fakeReporter struct {
	mu sync.Mutex
	st tasklist.SyncStatus
}

func (f *fakeReporter) set(st tasklist.SyncStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.st = st
}

func (f *fakeReporter) SyncStatus() tasklist.SyncStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st
}

func TestSyncLabel(t *testing.T) {
	tests := []struct {
		name string
		st   tasklist.SyncStatus
		want string
	}{
		{name: "idle", st: tasklist.SyncStatus{}, want: SyncLabelSaved},
		{name: "pending", st: tasklist.SyncStatus{Pending: true}, want: SyncLabelSaving},
		{name: "pending after failure", st: tasklist.SyncStatus{Pending: true, LastError: errors.New("x")}, want: SyncLabelSaving},
		{name: "failed", st: tasklist.SyncStatus{LastError: errors.New("x")}, want: SyncLabelFailed},
		{name: "synced", st: tasklist.SyncStatus{LastSync: time.Now()}, want: SyncLabelSaved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SyncLabel(tt.st); got != tt.want {
				t.Errorf("SyncLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStartSyncMonitor_PublishesChanges(t *testing.T) {
	reporter := &fakeReporter{}
	labels := make(chan string, 10)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartSyncMonitor(ctx, reporter, 5*time.Millisecond, func(label string) {
		labels <- label
	})

	expect := func(want string) {
		t.Helper()
		select {
		case got := <-labels:
			if got != want {
				t.Errorf("published %q, want %q", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}

	expect(SyncLabelSaved)
	reporter.set(tasklist.SyncStatus{LastError: errors.New("disk full")})
	expect(SyncLabelFailed)
	reporter.set(tasklist.SyncStatus{LastSync: time.Now()})
	expect(SyncLabelSaved)

	// unchanged status publishes nothing
	select {
	case got := <-labels:
		t.Errorf("unexpected publish %q", got)
	case <-time.After(30 * time.Millisecond):
	}
}
