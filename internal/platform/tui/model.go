package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/meta"
	"github.com/vovakirdan/game-maker/internal/rules"
	"github.com/vovakirdan/game-maker/internal/storage"
)

// Options configures a terminal host.
type Options struct {
	TickRate int // Game frames per second
	ScaleX   int // Pixels per terminal column
	ScaleY   int // Pixels per terminal row
	Seed     uint64

	// MaxFrameTime caps the wall time one tick can catch up on. Zero keeps
	// the clock's default.
	MaxFrameTime time.Duration

	// Store receives the play result when the session ends. It may be nil.
	Store *storage.Store
	Log   core.Logger
}

func (o Options) withDefaults() Options {
	if o.TickRate <= 0 {
		o.TickRate = 60
	}
	o.ScaleX = max(o.ScaleX, 1)
	o.ScaleY = max(o.ScaleY, 1)
	if o.Log == nil {
		o.Log = core.NopLogger{}
	}
	return o
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the Bubble Tea model running a metagame.
type Model struct {
	host    *meta.Host
	screen  *core.Screen
	input   *InputMapper
	audio   *StatusAudio
	keys    KeyMap
	help    help.Model
	history HistoryPanel
	opts    Options

	showHistory bool
	err         error
	quitting    bool
	recorded    bool // Whether the play result has been stored
}

// NewModel creates a model that hosts m from now on.
func NewModel(m *meta.Metagame, opts Options) Model {
	opts = opts.withDefaults()
	audio := &StatusAudio{Log: opts.Log}
	m.Audio = audio

	host := meta.NewHost(m, time.Now(), opts.TickRate)
	host.Time = host.Time.WithMaxFrameTime(opts.MaxFrameTime)

	size := OuterSize(m.Game)
	keys := DefaultKeyMap()
	return Model{
		host:    host,
		screen:  core.NewScreen(size.W/opts.ScaleX, size.H/opts.ScaleY, opts.ScaleX, opts.ScaleY),
		input:   NewInputMapper(keys),
		audio:   audio,
		keys:    keys,
		help:    help.New(),
		history: NewHistoryPanel(size.H / opts.ScaleY),
		opts:    opts,
	}
}

// Meta returns the hosted metagame.
func (m Model) Meta() *meta.Metagame {
	return m.host.Meta
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.Mouse(msg, m.screen)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.input.Key(msg)
	return m, nil
}

// handleTick plays every game frame due at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	mg := m.host.Meta
	outcome, err := m.host.Frame(now, func() core.Input {
		return m.input.Next(InnerOrigin(mg.Game, mg.Subgame))
	})
	if err != nil {
		m.err = err
		m.opts.Log.Debug("frame failed", "error", err)
	}
	if outcome == meta.Quit {
		return m.quit()
	}

	m.history.Sync(mg.Editor.History)
	return m, tickCmd(m.opts.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.recordPlay()
	m.quitting = true
	return m, tea.Quit
}

// recordPlay stores how the game on screen ended, once.
func (m *Model) recordPlay() {
	if m.recorded || m.opts.Store == nil {
		return
	}
	m.recorded = true

	mg := m.host.Meta
	link, ok := mg.Nav.Queue.Current()
	if !ok {
		return
	}
	//nolint:errcheck // Best-effort save, the session is ending regardless
	m.opts.Store.RecordPlay(storage.PlayResult{
		Collection: link.Collection,
		Game:       link.Game,
		Status:     PlayStatus(mg.Game.WinStatus),
		Frames:     mg.Game.FrameNumber,
		Seed:       int64(m.opts.Seed),
	})
}

// PlayStatus is the status stored for a finished play through.
func PlayStatus(w rules.WinStatus) string {
	switch w {
	case rules.Won, rules.JustWon:
		return "Won"
	case rules.Lost, rules.JustLost:
		return "Lost"
	default:
		return "Unfinished"
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	// Create screenshots directory
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".gamemaker", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	name := "game"
	if link, ok := m.host.Meta.Nav.Queue.Current(); ok {
		name = link.Game
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the metagame into the screen buffer.
func (m *Model) draw() {
	mg := m.host.Meta
	g := mg.Game
	if mg.Transition.Alpha() >= 0.5 {
		g = mg.Transition.Game
	}

	size := OuterSize(g)
	m.screen.Resize(size.W/m.screen.ScaleX, size.H/m.screen.ScaleY)
	m.screen.Clear()
	DrawGame(m.screen, g, core.Position{})
	if ShowsSubgame(g) {
		DrawGame(m.screen, mg.Subgame, InnerOrigin(g, mg.Subgame))
	}
}

// ShowsSubgame reports whether g has a screen member showing the edited
// game.
func ShowsSubgame(g *game.Game) bool {
	for i := range g.Members {
		switch g.Members[i].Text.Contents {
		case game.ScreenName, game.PlayScreenName:
			return true
		}
	}
	return false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	view := RenderScreen(m.screen)
	if m.showHistory {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", m.history.View())
	}

	var b strings.Builder
	b.WriteString(view)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// status is the line under the game: where we are and what the editor has
// selected.
func (m Model) status() string {
	mg := m.host.Meta
	var parts []string
	if link, ok := mg.Nav.Queue.Current(); ok {
		parts = append(parts, link.String())
	}
	parts = append(parts, fmt.Sprintf("frame %d", mg.Game.FrameNumber))
	if s := mg.Game.WinStatus; !s.IsUndecided() {
		parts = append(parts, s.String())
	}
	if ShowsSubgame(mg.Game) {
		if sel, ok := mg.Editor.Selected(mg.Subgame); ok {
			parts = append(parts, "selected "+sel.Name)
		}
		if mg.Editor.HasInnerCopy() {
			parts = append(parts, "playing")
		}
	}
	if a := m.audio.Status(); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " | ")
}

// Run starts the Bubble Tea program hosting m.
func Run(m *meta.Metagame, opts Options) error {
	p := tea.NewProgram(
		NewModel(m, opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover questions need motion with no button held
	)

	_, err := p.Run()
	return err
}
