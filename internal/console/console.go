// Package console is the non-interactive view: it validates one-shot
// gestures from the CLI and renders both lists as a framed panel.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/todoapp/internal/model"
	"github.com/idilsaglam/todoapp/internal/view"
)

// View implements view.View for one-shot commands. Display calls replace
// the buffered lists; Render prints them once at the end of the command.
type View struct {
	theme  Theme
	out    io.Writer
	errOut io.Writer

	add    view.AddFunc
	toggle view.ToggleFunc

	active    []model.Todo
	completed []model.Todo
	rendered  bool
}

func New(themeName string, out, errOut io.Writer) *View {
	return &View{theme: themeByName(themeName), out: out, errOut: errOut}
}

func (v *View) BindAddTodo(fn view.AddFunc) { v.add = fn }

func (v *View) BindToggleCompleted(fn view.ToggleFunc) { v.toggle = fn }

func (v *View) DisplayTodos(todos []model.Todo) {
	v.active = append([]model.Todo(nil), todos...)
	v.rendered = true
}

func (v *View) DisplayCompleted(todos []model.Todo) {
	v.completed = append([]model.Todo(nil), todos...)
	v.rendered = true
}

// SubmitAdd validates the gesture and forwards it to the bound handler.
// Validation failures never reach the controller.
func (v *View) SubmitAdd(text, priority, dueDate string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("add: empty text")
	}
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		return fmt.Errorf("add: empty due date")
	}
	if v.add == nil {
		return fmt.Errorf("add handler not bound")
	}
	v.add(text, priority, dueDate)
	return nil
}

// SubmitToggle forwards a toggle gesture for a single id. An unknown id
// is a no-op in the controller; the caller can check Rendered to tell
// the two cases apart.
func (v *View) SubmitToggle(id int) error {
	if v.toggle == nil {
		return fmt.Errorf("toggle handler not bound")
	}
	v.toggle(id)
	return nil
}

// Rendered reports whether any display call happened since ResetDirty.
func (v *View) Rendered() bool { return v.rendered }

// ResetDirty clears the rendered flag so a command can observe only the
// displays triggered by its own gesture.
func (v *View) ResetDirty() { v.rendered = false }

// Render prints the buffered lists as a single panel.
func (v *View) Render() {
	t := v.theme
	done, pending := len(v.completed), len(v.active)

	var lines []string
	lines = append(lines, fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		t.Accent.Render("Total"), done+pending,
	))
	lines = append(lines, t.Muted.Render(progressBar(done, done+pending, 28)))
	lines = append(lines, "")

	lines = append(lines, t.Accent.Render("Active"))
	lines = append(lines, v.itemLines(v.active, false)...)
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Completed"))
	lines = append(lines, v.itemLines(v.completed, true)...)

	fmt.Fprintln(v.out, panelStyle.Render(strings.Join(lines, "\n")))
}

func (v *View) itemLines(todos []model.Todo, done bool) []string {
	t := v.theme
	if len(todos) == 0 {
		return []string{t.Muted.Render("(none)")}
	}
	out := make([]string, 0, len(todos))
	for _, it := range todos {
		text := it.Text
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		box := t.Muted.Render(t.BoxUnchecked)
		if done {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		meta := t.Muted.Render(fmt.Sprintf("(%s, due %s)", it.Priority, it.DueDate))
		out = append(out, fmt.Sprintf("%3d. %s %s %s", it.ID, box, text, meta))
	}
	return out
}

// OK prints a success note outside the panel.
func (v *View) OK(msg string) {
	fmt.Fprintln(v.out, v.theme.Success.Render("✔ "+msg))
}

// Fail prints an error note to the error stream.
func (v *View) Fail(msg string) {
	fmt.Fprintln(v.errOut, v.theme.Error.Render("✖ "+msg))
}
