package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/boolean-maybe/tada/config"
	"github.com/boolean-maybe/tada/store"
	"github.com/boolean-maybe/tada/task"
)

// SequentialIDs returns an id generator producing t1, t2, ...
func SequentialIDs() config.IDGenerator {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("t%d", n), nil
	}
}

// SeedTasks stores tasks under the default key as a previous session would have
func SeedTasks(t *testing.T, kv store.KV, tasks ...task.Task) {
	t.Helper()
	data, err := task.EncodeCollection(tasks)
	if err != nil {
		t.Fatalf("encode seed tasks: %v", err)
	}
	if err := kv.Set(context.Background(), config.DefaultStorageKey, data); err != nil {
		t.Fatalf("seed tasks: %v", err)
	}
}
