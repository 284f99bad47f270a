// Package style holds the lipgloss styles and entry rendering shared by the
// command output and the TUI.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/dashdo/internal/outline"
)

var (
	Done  = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	Date  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	Body  = lipgloss.NewStyle().Faint(true)
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Entry renders the checkbox, title and date stamp of entry on one line, for
// example "[x] Buy milk @ 2023-06-01T09:30". Checked titles are struck through.
func Entry(entry outline.Entry) string {
	var builder strings.Builder
	builder.Grow(32 + len(entry.Title))

	switch {
	case entry.Todo == nil:
	case *entry.Todo:
		builder.WriteString("[x] ")
	default:
		builder.WriteString("[ ] ")
	}

	if entry.Checked() {
		builder.WriteString(Done.Render(entry.Title))
	} else {
		builder.WriteString(entry.Title)
	}

	if entry.DateTime != nil {
		builder.WriteString(" @ ")
		builder.WriteString(Date.Render(outline.FormatDateTime(*entry.DateTime)))
	}
	return builder.String()
}
