// Package tui is the interactive Bubble Tea view. It satisfies the same
// contract as the console view; the controller cannot tell them apart.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoapp/internal/model"
	"github.com/idilsaglam/todoapp/internal/view"
)

// TUI implements view.View. Display calls land synchronously while a
// gesture handler runs inside Update, so the lists here are always
// current by the time the next frame renders.
type TUI struct {
	add    view.AddFunc
	toggle view.ToggleFunc

	active    []model.Todo
	completed []model.Todo
}

func New() *TUI { return &TUI{} }

func (t *TUI) BindAddTodo(fn view.AddFunc) { t.add = fn }

func (t *TUI) BindToggleCompleted(fn view.ToggleFunc) { t.toggle = fn }

func (t *TUI) DisplayTodos(todos []model.Todo) {
	t.active = append([]model.Todo(nil), todos...)
}

func (t *TUI) DisplayCompleted(todos []model.Todo) {
	t.completed = append([]model.Todo(nil), todos...)
}

// Run starts the interactive program and blocks until the user quits.
func (t *TUI) Run() error {
	p := tea.NewProgram(newUIModel(t), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// listItem adapts model.Todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.todo.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %s", box, i.todo.Text)
}

func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Text }

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	boxStyled := mutedStyle.Render(boxUnchecked)
	textStyled := it.todo.Text
	if it.todo.Completed {
		boxStyled = successStyle.Render(boxChecked)
		textStyled = doneStyle.Render(it.todo.Text)
	}
	meta := mutedStyle.Render(fmt.Sprintf(" (%s, due %s)", it.todo.Priority, it.todo.DueDate))

	line := fmt.Sprintf("%s %s%s", boxStyled, textStyled, meta)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// Inline add form fields, in tab order.
const (
	fieldText = iota
	fieldPriority
	fieldDueDate
	fieldCount
)

type uiModel struct {
	tui  *TUI
	list list.Model

	width  int
	height int

	// Inline add
	adding bool
	field  int
	inputs [fieldCount]textinput.Model
	addErr string
}

func newUIModel(t *TUI) uiModel {
	l := list.New(itemsFor(t), itemDelegate{}, 0, 0)
	l.Title = headerTitle(t)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, toggleBind} }

	m := uiModel{tui: t, list: l, width: 80, height: 24}

	text := textinput.New()
	text.Prompt = "> "
	text.Placeholder = "New todo text..."
	text.CharLimit = 200
	m.inputs[fieldText] = text

	prio := textinput.New()
	prio.Prompt = "priority: "
	prio.Placeholder = "medium"
	prio.CharLimit = 20
	m.inputs[fieldPriority] = prio

	due := textinput.New()
	due.Prompt = "due: "
	due.Placeholder = "2024-01-01"
	due.CharLimit = 20
	m.inputs[fieldDueDate] = due

	return m
}

// itemsFor flattens the view's lists, active first, matching the
// persisted concatenation order.
func itemsFor(t *TUI) []list.Item {
	li := make([]list.Item, 0, len(t.active)+len(t.completed))
	for _, it := range t.active {
		li = append(li, listItem{todo: it})
	}
	for _, it := range t.completed {
		li = append(li, listItem{todo: it})
	}
	return li
}

func headerTitle(t *TUI) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), len(t.completed),
		pendingStyle.Render("•"), len(t.active),
		accentStyle.Render("Total"), len(t.active)+len(t.completed),
	)
}

// sync rebuilds the list after a gesture handler ran.
func (m *uiModel) sync() {
	m.list.SetItems(itemsFor(m.tui))
	m.list.Title = headerTitle(m.tui)
}

func (m uiModel) Init() tea.Cmd { return nil }

func (m uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			i := m.list.Index()
			items := m.list.Items()
			if i >= 0 && i < len(items) {
				if li, ok := items[i].(listItem); ok && m.tui.toggle != nil {
					m.tui.toggle(li.todo.ID)
					m.sync()
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.addErr = ""
			m.field = fieldText
			for i := range m.inputs {
				m.inputs[i].SetValue("")
				m.inputs[i].Blur()
			}
			m.inputs[fieldText].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m uiModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.KeyMsg:
		switch x.String() {
		case "enter":
			text := strings.TrimSpace(m.inputs[fieldText].Value())
			if text == "" {
				m.addErr = "Text cannot be empty"
				return m, nil
			}
			due := strings.TrimSpace(m.inputs[fieldDueDate].Value())
			if due == "" {
				m.addErr = "Due date cannot be empty"
				return m, nil
			}
			priority := strings.TrimSpace(m.inputs[fieldPriority].Value())
			if priority == "" {
				priority = "medium"
			}
			if m.tui.add != nil {
				m.tui.add(text, priority, due)
				m.sync()
			}
			m.adding = false
			return m, nil
		case "esc":
			m.adding = false
			return m, nil
		case "tab", "down":
			m.focusField((m.field + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.field + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	return m, cmd
}

func (m *uiModel) focusField(field int) {
	m.inputs[m.field].Blur()
	m.field = field
	m.inputs[m.field].Focus()
}

func (m uiModel) View() string {
	listHeight := m.height - 4
	if m.adding {
		listHeight = m.height - 9
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(m.width-2, listHeight)

	content := m.list.View()
	if m.adding {
		title := "Add new todo"
		if m.addErr != "" {
			title += " — " + errorStyle.Render(m.addErr)
		}
		form := title + "\n" +
			m.inputs[fieldText].View() + "\n" +
			m.inputs[fieldPriority].View() + "\n" +
			m.inputs[fieldDueDate].View()
		content = content + "\n" + panelStyle.Render(form)
	}
	return panelStyle.Render(content)
}
