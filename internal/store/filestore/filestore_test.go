package filestore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	s := New(t.TempDir())

	_, ok, err := s.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestSetThenGet(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("todos", `[{"id":1}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := s.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("key not found after Set")
	}
	if got != `[{"id":1}]` {
		t.Errorf("value: got %q", got)
	}
}

func TestSetOverwritesInFull(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Set("todos", "first, much longer value"); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("todos", "second"); err != nil {
		t.Fatal(err)
	}
	got, _, err := s.Get("todos")
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("value: got %q, want %q", got, "second")
	}
}

func TestSetCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	if err := s.Set("todos", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "todos.json")); err != nil {
		t.Errorf("data file not created: %v", err)
	}
}

func TestKeySanitization(t *testing.T) {
	tests := []struct {
		key  string
		file string
	}{
		{"todos", "todos.json"},
		{"a/b", "a_b.json"},
		{"..", "...json"},
		{"", "_.json"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			dir := t.TempDir()
			s := New(dir)
			if err := s.Set(tt.key, "v"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if _, err := os.Stat(filepath.Join(dir, tt.file)); err != nil {
				t.Errorf("expected file %s: %v", tt.file, err)
			}
			got, ok, err := s.Get(tt.key)
			if err != nil || !ok || got != "v" {
				t.Errorf("Get(%q) = %q, %v, %v", tt.key, got, ok, err)
			}
		})
	}
}
