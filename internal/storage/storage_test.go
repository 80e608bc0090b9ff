package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/ibadah/internal/kv"
	"github.com/julianstephens/ibadah/internal/models"
)

type blockingStore struct {
	*kv.Memory
	release chan struct{}
}

func (b *blockingStore) Set(ctx context.Context, key, value string) error {
	<-b.release
	return b.Memory.Set(ctx, key, value)
}

func TestWriterPreservesOrder(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	w := NewWriter(mem)
	defer w.Close()

	for i := 0; i < 200; i++ {
		w.Set("reflections", fmt.Sprintf("v%d", i))
	}
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got, err := mem.Get(ctx, "reflections")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "v199" {
		t.Errorf("last write should win, got %q", got)
	}
}

func TestWriterDoesNotBlockCaller(t *testing.T) {
	store := &blockingStore{Memory: kv.NewMemory(), release: make(chan struct{})}
	w := NewWriter(store)

	start := time.Now()
	w.Set("settings", "{}")
	if time.Since(start) > time.Second {
		t.Fatal("Set() waited for the store")
	}

	if _, err := store.Get(context.Background(), "settings"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("write should still be pending, got err = %v", err)
	}

	close(store.release)
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if v, _ := store.Get(context.Background(), "settings"); v != "{}" {
		t.Errorf("Close() should drain the queue, got %q", v)
	}
}

func TestWriterLogsFailuresWithoutStopping(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	mem.FailWrites = errors.New("disk full")
	w := NewWriter(mem)
	defer w.Close()

	w.Set("badges", "[]")
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if w.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", w.Failures())
	}

	mem.FailWrites = nil
	w.Set("badges", "[1]")
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if v, _ := mem.Get(ctx, "badges"); v != "[1]" {
		t.Errorf("writer should keep going after a failure, got %q", v)
	}
}

func TestWriterRemoveAndClose(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	_ = mem.Set(ctx, "settings", "{}")
	w := NewWriter(mem)

	w.Remove("settings")
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := mem.Get(ctx, "settings"); !errors.Is(err, kv.ErrNotFound) {
		t.Errorf("expected key removed, got %v", err)
	}

	if err := w.Flush(ctx); !errors.Is(err, ErrWriterClosed) {
		t.Errorf("Flush() after Close() error = %v, want ErrWriterClosed", err)
	}
	w.Set("settings", "{}") // dropped, must not panic
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	w := NewWriter(mem)
	defer w.Close()

	repo := NewRepository[[]models.Reflection]("reflections", mem, w)

	_, found, err := repo.Load(ctx)
	if err != nil || found {
		t.Fatalf("Load() on empty store = found %v, err %v", found, err)
	}

	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	want := []models.Reflection{{ID: "a", Title: "t", Content: "c", CreatedAt: now, UpdatedAt: now}}
	if err := repo.Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := w.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got, found, err := repo.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load() = found %v, err %v", found, err)
	}
	if len(got) != 1 || got[0].ID != "a" || !got[0].CreatedAt.Equal(now) {
		t.Errorf("Load() = %+v", got)
	}
}

func TestRepositoryCorruptBlob(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	_ = mem.Set(ctx, "badges", "{not json")
	w := NewWriter(mem)
	defer w.Close()

	repo := NewRepository[[]models.Badge]("badges", mem, w)
	got, found, err := repo.Load(ctx)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !found {
		t.Error("found should be true for a present but corrupt blob")
	}
	if got != nil {
		t.Errorf("expected zero value on decode failure, got %+v", got)
	}
}
