package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/idilsaglam/todoapp/internal/config"
	"github.com/idilsaglam/todoapp/internal/console"
	"github.com/idilsaglam/todoapp/internal/controller"
)

func newTestApp(t *testing.T, dataDir string) (*App, *console.View) {
	t.Helper()
	var out, errOut bytes.Buffer
	v := console.New("mono", &out, &errOut)
	a, err := New(&config.Config{DataDir: dataDir, Theme: "mono"}, nil, v)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a, v
}

func TestAddPersistsAcrossContexts(t *testing.T) {
	dir := t.TempDir()

	_, v := newTestApp(t, dir)
	if err := v.SubmitAdd("Buy milk", "high", "2024-01-01"); err != nil {
		t.Fatalf("SubmitAdd failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "todos.json")); err != nil {
		t.Fatalf("blob not written: %v", err)
	}

	// A fresh context sees the same state.
	_, v2 := newTestApp(t, dir)
	if !v2.Rendered() {
		t.Error("second context should render the persisted todos at load")
	}
}

func TestCorruptBlobSurfacesDeserializationError(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "todos.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	v := console.New("mono", &out, &errOut)
	_, err := New(&config.Config{DataDir: dir, Theme: "mono"}, nil, v)

	var derr *controller.DeserializationError
	if !errors.As(err, &derr) {
		t.Fatalf("New error: got %v, want DeserializationError", err)
	}

	// The corrupt blob is preserved.
	b, readErr := os.ReadFile(filepath.Join(dir, "todos.json"))
	if readErr != nil || string(b) != "{broken" {
		t.Error("corrupt blob must be left untouched")
	}
}
