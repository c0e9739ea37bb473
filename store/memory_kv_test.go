package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryKV_GetSet(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
	}

	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; want v2, true, nil", v, ok, err)
	}
	if kv.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", kv.Writes())
	}
}

func TestMemoryKV_InjectedErrors(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	boom := errors.New("boom")

	kv.SetWriteError(boom)
	if err := kv.Set(ctx, "k", "v"); !errors.Is(err, boom) {
		t.Errorf("Set() error = %v, want boom", err)
	}
	if kv.Writes() != 0 {
		t.Errorf("failed write was counted")
	}

	kv.SetWriteError(nil)
	if err := kv.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() after clearing error = %v", err)
	}

	kv.SetReadError(boom)
	if _, _, err := kv.Get(ctx, "k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want boom", err)
	}
}

func TestMemoryKV_Closed(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	_ = kv.Close()

	if err := kv.Set(ctx, "k", "v"); !errors.Is(err, ErrKVClosed) {
		t.Errorf("Set() after Close error = %v, want ErrKVClosed", err)
	}
	if _, _, err := kv.Get(ctx, "k"); !errors.Is(err, ErrKVClosed) {
		t.Errorf("Get() after Close error = %v, want ErrKVClosed", err)
	}
}

func TestMemoryKV_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	kv := NewMemoryKV()

	if err := kv.Set(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Errorf("Set() error = %v, want context.Canceled", err)
	}
}
