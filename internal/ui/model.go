package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/dashdo/internal/files"
	"github.com/faizmokh/dashdo/internal/lists"
	"github.com/faizmokh/dashdo/internal/outline"
	"github.com/faizmokh/dashdo/internal/style"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Model owns Bubble Tea state for browsing one list.
type Model struct {
	ctx    context.Context
	reader *lists.Reader
	writer *lists.Writer
	name   string

	items     []outline.Item
	malformed int
	selected  int

	mode          mode
	input         textinput.Model
	inputLabel    string
	editingIndex  int
	pendingSelect int
	selectLast    bool

	keys keyMap
	help help.Model

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeAddChild
	modeEdit
	modeConfirmDelete
)

type listLoadedMsg struct {
	doc lists.Document
	err error
}

type toggleResultMsg struct {
	index int
	item  outline.Item
	err   error
}

// appendResultMsg carries the 1-based index of the new entry; zero means it
// went to the end of the list.
type appendResultMsg struct {
	index int
	err   error
}

type editResultMsg struct {
	index int
	err   error
}

type deleteResultMsg struct {
	index int
	err   error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, reader *lists.Reader, writer *lists.Writer, name string) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 512
	input.Cursor.SetMode(cursor.CursorStatic)

	return Model{
		ctx:           ctx,
		reader:        reader,
		writer:        writer,
		name:          name,
		input:         input,
		editingIndex:  -1,
		pendingSelect: -1,
		keys:          defaultKeyMap(),
		help:          help.New(),
		loading:       true,
		statusLine:    fmt.Sprintf("Loading %s...", name),
	}
}

// Init loads the list.
func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 0)
		return m, nil
	case listLoadedMsg:
		return m.handleLoaded(msg)
	case toggleResultMsg:
		return m.handleToggleResult(msg)
	case appendResultMsg:
		return m.handleAppendResult(msg)
	case editResultMsg:
		return m.handleEditResult(msg)
	case deleteResultMsg:
		return m.handleDeleteResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd, modeAddChild, modeEdit:
		return m.handleInputKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.items)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, len(m.items))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected entry %d of %d", m.selected+1, len(m.items))
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.statusLine = fmt.Sprintf("Refreshing %s...", m.name)
		m.errorLine = ""
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.Toggle):
		if len(m.items) == 0 || m.loading {
			return m, nil
		}
		m.statusLine = fmt.Sprintf("Toggling entry %d...", m.selected+1)
		m.errorLine = ""
		return m, m.toggleCmd(m.selected)
	case key.Matches(msg, m.keys.Add):
		if m.loading {
			return m, nil
		}
		label := "New entry (title, @YYYY-MM-DD[THH:MM], !todo|!done|!none; Enter to save, Esc to cancel):"
		if len(m.items) > 0 {
			label = fmt.Sprintf("New entry after %d (title, @date, !todo|!done|!none; Enter to save, Esc to cancel):", m.selected+1)
		}
		return m.beginInput(modeAdd, label, "")
	case key.Matches(msg, m.keys.AddChild):
		if len(m.items) == 0 || m.loading {
			return m, nil
		}
		label := fmt.Sprintf("New entry under %d (title, @date, !todo|!done|!none; Enter to save, Esc to cancel):", m.selected+1)
		return m.beginInput(modeAddChild, label, "")
	case key.Matches(msg, m.keys.Edit):
		if len(m.items) == 0 || m.loading {
			return m, nil
		}
		label := fmt.Sprintf("Edit entry %d (title, @date, !todo|!done|!none; Enter to save, Esc to cancel):", m.selected+1)
		return m.beginInput(modeEdit, label, entryToInput(m.items[m.selected].Entry))
	case key.Matches(msg, m.keys.Delete):
		if len(m.items) == 0 || m.loading {
			return m, nil
		}
		m.mode = modeConfirmDelete
		m.editingIndex = m.selected
		m.statusLine = ""
		m.errorLine = ""
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submitInput()
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		index := m.editingIndex
		m.mode = modeNormal
		m.editingIndex = -1
		m.statusLine = "Deleting entry..."
		m.errorLine = ""
		return m, m.deleteCmd(index)
	case key.Matches(msg, m.keys.Cancel):
		return m.cancelInput("Delete cancelled.")
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginInput(next mode, label, value string) (tea.Model, tea.Cmd) {
	m.mode = next
	m.inputLabel = label
	m.editingIndex = m.selected
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.statusLine = ""
	m.errorLine = ""
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.inputLabel = ""
	m.editingIndex = -1
	m.input.Blur()
	m.input.Reset()
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	parsed, err := parseInputLine(m.input.Value())
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if parsed.title == "" {
		m.errorLine = "Title cannot be empty."
		return m, nil
	}

	index := m.editingIndex
	if (m.mode != modeAdd || len(m.items) > 0) && (index < 0 || index >= len(m.items)) {
		return m.cancelInput("No entry selected.")
	}

	var cmd tea.Cmd
	switch m.mode {
	case modeAdd, modeAddChild:
		m.statusLine = "Saving entry..."
		entry := outline.Entry{Title: parsed.title, DateTime: parsed.date, Todo: outline.Bool(false), Children: []outline.Entry{}}
		if parsed.todoSeen {
			entry.Todo = parsed.todo
		}
		if len(m.items) == 0 {
			cmd = m.appendCmd(outline.Item{Depth: 1, Entry: entry})
			break
		}
		depth := m.items[index].Depth
		if m.mode == modeAddChild {
			depth++
		}
		cmd = m.insertCmd(index, outline.Item{Depth: depth, Entry: entry})
	case modeEdit:
		updated := m.items[index].Entry
		updated.Title = parsed.title
		updated.DateTime = parsed.date
		updated.Todo = parsed.todo
		cmd = m.editCmd(index, updated)
		m.statusLine = "Updating entry..."
	}

	m.mode = modeNormal
	m.inputLabel = ""
	m.editingIndex = -1
	m.input.Blur()
	m.input.Reset()
	m.errorLine = ""
	return m, cmd
}

func (m Model) handleLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.selectLast = false
		m.pendingSelect = -1
		if errors.Is(msg.err, files.ErrListNotFound) {
			m.items = nil
			m.malformed = 0
			m.selected = 0
			m.statusLine = fmt.Sprintf("%s has no entries.", m.name)
			m.errorLine = ""
			return m, nil
		}
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", m.name, msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.errorLine = ""
	m.items = msg.doc.Items()
	m.malformed = len(msg.doc.Result.Failures)
	switch {
	case m.selectLast:
		m.selected = len(m.items) - 1
	case m.pendingSelect >= 0:
		m.selected = m.pendingSelect
	}
	m.selectLast = false
	m.pendingSelect = -1
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
	m.selected = max(m.selected, 0)

	if len(m.items) == 0 {
		m.statusLine = fmt.Sprintf("%s has no entries.", m.name)
	} else if m.statusLine == "" || strings.HasSuffix(m.statusLine, "...") {
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.items), plural(len(m.items)))
	}
	return m, nil
}

func (m Model) handleToggleResult(msg toggleResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Toggle failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	if msg.index >= 0 && msg.index < len(m.items) {
		items := make([]outline.Item, len(m.items))
		copy(items, m.items)
		items[msg.index] = msg.item
		m.items = items
	}
	m.statusLine = fmt.Sprintf("Toggled entry %d.", msg.index+1)
	m.errorLine = ""
	return m, nil
}

func (m Model) handleAppendResult(msg appendResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Add failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	if msg.index > 0 {
		m.pendingSelect = msg.index - 1
		m.statusLine = fmt.Sprintf("Added entry %d.", msg.index)
	} else {
		m.selectLast = true
		m.statusLine = "Entry added."
	}
	m.errorLine = ""
	m.loading = true
	return m, m.loadCmd()
}

func (m Model) handleEditResult(msg editResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Edit failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.statusLine = fmt.Sprintf("Updated entry %d.", msg.index+1)
	m.errorLine = ""
	m.loading = true
	m.pendingSelect = msg.index
	return m, m.loadCmd()
}

func (m Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Delete failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}

	m.statusLine = fmt.Sprintf("Deleted entry %d.", msg.index+1)
	m.errorLine = ""
	m.loading = true
	m.pendingSelect = msg.index
	return m, m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		doc, err := reader.Load(ctx, name)
		return listLoadedMsg{doc: doc, err: err}
	}
}

func (m Model) toggleCmd(index int) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		item, err := writer.Toggle(ctx, name, index+1)
		return toggleResultMsg{index: index, item: item, err: err}
	}
}

func (m Model) appendCmd(item outline.Item) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		return appendResultMsg{err: writer.Append(ctx, name, item)}
	}
}

func (m Model) insertCmd(after int, item outline.Item) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		index, err := writer.Insert(ctx, name, after+1, item)
		return appendResultMsg{index: index, err: err}
	}
}

func (m Model) editCmd(index int, entry outline.Entry) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		return editResultMsg{index: index, err: writer.Edit(ctx, name, index+1, entry)}
	}
}

func (m Model) deleteCmd(index int) tea.Cmd {
	writer := m.writer
	ctx := m.ctx
	name := m.name
	return func() tea.Msg {
		_, err := writer.Delete(ctx, name, index+1)
		return deleteResultMsg{index: index, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	header := m.name
	if m.malformed > 0 {
		header += fmt.Sprintf(" (%d malformed)", m.malformed)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", lipgloss.Width(header)))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading...\n")
	} else if len(m.items) == 0 {
		b.WriteString("(no entries)\n")
	} else {
		for i, item := range m.items {
			marker := "  "
			line := formatItem(item)
			if i == m.selected {
				marker = "> "
				line = selectedStyle.Render(line)
			}
			b.WriteString(marker)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	switch m.mode {
	case modeAdd, modeAddChild, modeEdit:
		b.WriteString("\n")
		b.WriteString(m.inputLabel)
		b.WriteByte('\n')
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeConfirmDelete:
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Delete entry %d? (y/n, Esc to cancel)", m.editingIndex+1))
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(style.Error.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

// formatItem indents the shared entry rendering by depth and marks entries
// that carry a body.
func formatItem(item outline.Item) string {
	line := strings.Repeat("  ", max(item.Depth-1, 0)) + style.Entry(item.Entry)
	if item.Entry.Body != nil {
		line += " …"
	}
	return line
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
