package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// History panel layout constants
const (
	historyWidth    = 34 // Width of the history side panel
	minHeightForLog = 8  // Minimum table height
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

func newTable(columns []table.Column, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, minHeightForLog)),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// HistoryPanel lists the undo steps of the editing session, newest last.
type HistoryPanel struct {
	table table.Model
	steps int
}

// NewHistoryPanel creates a panel height rows tall.
func NewHistoryPanel(height int) HistoryPanel {
	return HistoryPanel{table: newTable([]table.Column{
		{Title: "#", Width: 4},
		{Title: "Step", Width: historyWidth - 10},
	}, height)}
}

// Sync refreshes the rows when the stack changed size.
func (p *HistoryPanel) Sync(s *history.Stack) {
	if len(s.Undo) == p.steps {
		return
	}
	p.steps = len(s.Undo)
	names := s.Names()
	rows := make([]table.Row, len(names))
	for i, name := range names {
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), name}
	}
	p.table.SetRows(rows)
	p.table.GotoBottom()
}

// View renders the panel.
func (p HistoryPanel) View() string {
	if p.steps == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Width(historyWidth - 4)
		return panelStyle.Render("History\n\n" + empty.Render("No edits yet."))
	}
	return panelStyle.Render(p.table.View())
}

// JournalKeyMap defines the key bindings for the journal viewer.
type JournalKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k JournalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k JournalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// JournalModel shows the recorded steps of one editing session.
type JournalModel struct {
	title string
	table table.Model
	help  help.Model
	keys  JournalKeyMap
	empty bool
}

// NewJournalModel creates a viewer for entries.
func NewJournalModel(title string, entries []storage.JournalEntry, height int) JournalModel {
	t := newTable([]table.Column{
		{Title: "Seq", Width: 5},
		{Title: "Action", Width: 8},
		{Title: "Step", Width: 28},
		{Title: "Time", Width: 14},
	}, height-6)

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.Seq),
			e.Direction,
			e.Name,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	t.SetRows(rows)

	return JournalModel{
		title: title,
		table: t,
		help:  help.New(),
		empty: len(entries) == 0,
		keys: JournalKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("up/k", "scroll up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("down/j", "scroll down"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init initializes the journal model.
func (m JournalModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal viewer.
func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.table.SetHeight(max(msg.Height-6, minHeightForLog))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal.
func (m JournalModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.empty {
		b.WriteString(panelStyle.Render("No steps recorded in this session."))
	} else {
		b.WriteString(panelStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunJournal shows the journal viewer until the user quits.
func RunJournal(title string, entries []storage.JournalEntry, height int) error {
	p := tea.NewProgram(
		NewJournalModel(title, entries, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
