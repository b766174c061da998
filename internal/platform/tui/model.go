// Package tui provides the Bubble Tea and lipgloss front end for t2048.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
	"github.com/vovakirdan/t2048/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208")).
			MarginBottom(1)

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Model is the Bubble Tea model for playing one session.
type Model struct {
	session  *session.Session
	keys     GameKeyMap
	help     help.Model
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
// The model draws the board itself, so the session's own output is discarded.
func NewModel(s *session.Session) Model {
	s.SetOutput(io.Discard)
	return Model{
		session: s,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}
}

// Init records the initial board.
func (m Model) Init() tea.Cmd {
	m.session.Start()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case msg.String() == "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	// Unbound special keys are ignored; unbound characters count as invalid commands.
	if action == core.ActionNone && msg.Type != tea.KeyRunes {
		return m, nil
	}

	m.status = ""
	if m.session.Handle(action) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// saveScreenshot writes the plain-text board to a file and returns a status line.
func (m Model) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed: " + err.Error()
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("t2048_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(t2048.RenderText(m.session.Game().Board())), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Game().Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n")
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"Score: %d   Best tile: %d   Moves: %d   Undo: %d",
		snap.Score, snap.MaxTile, snap.Moves, snap.Undos,
	)))
	b.WriteString("\n")
	b.WriteString(RenderBoard(snap.Board))
	b.WriteString("\n")

	if snap.State == t2048.StateStuck {
		b.WriteString(noticeStyle.Render(session.StuckNotice))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

// Run plays the session in the alternate screen, then finishes it.
func Run(s *session.Session) error {
	p := tea.NewProgram(
		NewModel(s),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	s.Finish()
	return err
}
