package model

import (
	"encoding/json"
	"testing"
)

// The persisted format has no schema versioning, so the five field names
// are load-bearing: renaming any of them breaks every existing blob.
func TestPersistedFieldNames(t *testing.T) {
	b, err := json.Marshal(Todo{ID: 1, Text: "Buy milk", Priority: "high", DueDate: "2024-01-01"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"id", "text", "completed", "priority", "dueDate"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing field %q in %s", field, b)
		}
	}
	if len(raw) != 5 {
		t.Errorf("got %d fields, want 5: %s", len(raw), b)
	}
}
