package memstore

import "testing"

func TestMissingKey(t *testing.T) {
	s := New()

	_, ok, err := s.Get("todos")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("missing key reported as present")
	}
}

func TestSetThenGet(t *testing.T) {
	s := New()

	if err := s.Set("todos", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, ok, err := s.Get("todos")
	if err != nil || !ok {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}
	if got != "[]" {
		t.Errorf("value: got %q, want %q", got, "[]")
	}

	// Empty values are distinguishable from missing keys.
	if err := s.Set("todos", ""); err != nil {
		t.Fatal(err)
	}
	got, ok, _ = s.Get("todos")
	if !ok || got != "" {
		t.Errorf("empty value: got %q, ok=%v", got, ok)
	}
}
