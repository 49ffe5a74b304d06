package tui

import (
	"strings"
	"testing"

	"github.com/idilsaglam/todoapp/internal/model"
)

func TestItemsForFlattensActiveFirst(t *testing.T) {
	v := New()
	v.DisplayTodos([]model.Todo{{ID: 2, Text: "b"}, {ID: 3, Text: "c"}})
	v.DisplayCompleted([]model.Todo{{ID: 1, Text: "a", Completed: true}})

	items := itemsFor(v)
	if len(items) != 3 {
		t.Fatalf("items: got %d, want 3", len(items))
	}
	gotIDs := make([]int, 0, len(items))
	for _, it := range items {
		gotIDs = append(gotIDs, it.(listItem).todo.ID)
	}
	want := []int{2, 3, 1}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("item order: got %v, want %v", gotIDs, want)
		}
	}
}

func TestListItemTitle(t *testing.T) {
	open := listItem{todo: model.Todo{Text: "Buy milk"}}
	if got := open.Title(); !strings.HasPrefix(got, boxUnchecked) {
		t.Errorf("open item title: got %q, want %q prefix", got, boxUnchecked)
	}

	done := listItem{todo: model.Todo{Text: "Buy milk", Completed: true}}
	if got := done.Title(); !strings.HasPrefix(got, boxChecked) {
		t.Errorf("done item title: got %q, want %q prefix", got, boxChecked)
	}
}

func TestDisplayCopiesInput(t *testing.T) {
	v := New()
	src := []model.Todo{{ID: 1, Text: "a"}}
	v.DisplayTodos(src)

	src[0].Text = "mutated"
	if v.active[0].Text != "a" {
		t.Error("DisplayTodos must copy its input")
	}
}
