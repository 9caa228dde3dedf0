package out_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	adapter "studybud/internal/modules/timer/adapter/out"
	"studybud/internal/modules/timer/domain"
)

func TestTimerStoreLoadMissingFile(t *testing.T) {
	t.Parallel()
	store := adapter.NewFileTimerStore(filepath.Join(t.TempDir(), "timer.json"))
	timer, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if timer != domain.Idle() {
		t.Fatalf("missing file should yield the idle timer: %+v", timer)
	}
}

func TestTimerStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := adapter.NewFileTimerStore(filepath.Join(t.TempDir(), "nested", "timer.json"))
	ctx := context.Background()

	saved := domain.Timer{
		Mode:        domain.ModeShortBreak,
		TimeLeftSec: 120,
		Running:     true,
		Round:       3,
		SessionID:   "s-1",
	}
	if err := store.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded != saved {
		t.Fatalf("round trip wrong: %+v", loaded)
	}
}

func TestTimerStoreCorruptBlob(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "timer.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := adapter.NewFileTimerStore(path)
	timer, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("a corrupt blob must not surface an error, got %v", err)
	}
	if timer != domain.Idle() {
		t.Fatalf("corrupt blob should fall back to idle: %+v", timer)
	}
}

func TestTimerStoreRejectsBadRound(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "timer.json")
	if err := os.WriteFile(path, []byte(`{"mode":"FOCUS","round":0}`), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := adapter.NewFileTimerStore(path)
	timer, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if timer != domain.Idle() {
		t.Fatalf("a blob without a valid round falls back to idle: %+v", timer)
	}
}
