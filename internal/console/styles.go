package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and checkbox glyphs used by the renderers.
type Theme struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Pending lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Done    lipgloss.Style // completed items: faint + strikethrough

	BoxUnchecked string
	BoxChecked   string
}

func themeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			BoxUnchecked: "◻",
			BoxChecked:   "◼",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Title: plain, Success: plain, Pending: plain,
			Accent: plain, Muted: plain, Error: plain,
			Done:         lipgloss.NewStyle().Strikethrough(true),
			BoxUnchecked: "[ ]",
			BoxChecked:   "[x]",
		}
	default: // classic
		return Theme{
			Title:        lipgloss.NewStyle().Bold(true),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Muted:        lipgloss.NewStyle().Faint(true),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			BoxUnchecked: "☐",
			BoxChecked:   "☑",
		}
	}
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

func progressBar(done, total, width int) string {
	span := total
	if span == 0 {
		span = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(span) * float64(width))
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d/%d",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), done, total)
}
