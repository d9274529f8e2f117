package binding_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dshills/remap/internal/input/binding"
	"github.com/dshills/remap/internal/input/code"
)

func writeBindings(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeBindings(t, path, `{"bindings": [{"code": "w", "action": "move.up"}]}`)

	table := binding.NewTable()
	if err := binding.NewLoader().LoadInto(path, table); err != nil {
		t.Fatal(err)
	}

	var reloads atomic.Int32
	w, err := binding.NewWatcher(path, table,
		binding.WithDebounce(20*time.Millisecond),
		binding.WithReloadCallback(func() { reloads.Add(1) }),
	)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	writeBindings(t, path, `{"bindings": [{"code": "Up", "action": "move.up"}]}`)

	if !waitFor(t, 3*time.Second, func() bool { return reloads.Load() > 0 }) {
		t.Fatal("reload callback never fired")
	}
	if _, ok := table.Resolve(code.MustParse("Up")); !ok {
		t.Error("table does not reflect the rewritten file")
	}
	if _, ok := table.Resolve(code.MustParse("w")); ok {
		t.Error("stale binding survived reload")
	}
}

func TestWatcherBadFileLeavesTableUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeBindings(t, path, `{"bindings": [{"code": "w", "action": "move.up"}]}`)

	table := binding.NewTable()
	if err := binding.NewLoader().LoadInto(path, table); err != nil {
		t.Fatal(err)
	}

	var failures atomic.Int32
	w, err := binding.NewWatcher(path, table,
		binding.WithDebounce(20*time.Millisecond),
		binding.WithErrorCallback(func(error) { failures.Add(1) }),
	)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	writeBindings(t, path, `{not valid json`)

	if !waitFor(t, 3*time.Second, func() bool { return failures.Load() > 0 }) {
		t.Fatal("error callback never fired")
	}
	if name, ok := table.Resolve(code.MustParse("w")); !ok || name != "move.up" {
		t.Error("bad file corrupted the table")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeBindings(t, path, `{"bindings": [{"code": "w", "action": "move.up"}]}`)

	table := binding.NewTable()
	var reloads atomic.Int32
	w, err := binding.NewWatcher(path, table,
		binding.WithDebounce(20*time.Millisecond),
		binding.WithReloadCallback(func() { reloads.Add(1) }),
	)
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	writeBindings(t, filepath.Join(dir, "other.json"), `{}`)

	time.Sleep(150 * time.Millisecond)
	if reloads.Load() != 0 {
		t.Error("sibling file write triggered a reload")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bindings.json")
	writeBindings(t, path, `{"bindings": []}`)

	w, err := binding.NewWatcher(path, binding.NewTable())
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close error: %v", err)
	}
	if err := w.Close(); !errors.Is(err, binding.ErrWatcherClosed) {
		t.Errorf("expected ErrWatcherClosed, got %v", err)
	}
}
