package tui

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/froghouse/jumper/internal/core"
	"github.com/froghouse/jumper/internal/game"
	"github.com/froghouse/jumper/internal/leaderboard"
)

// Leaderboard is the score sink and ranked view the TUI talks to. The local
// client satisfies it with remote-plus-mirror semantics; SSH sessions use a
// direct service adapter.
type Leaderboard interface {
	RecordScore(ctx context.Context, score int) error
	Top(ctx context.Context) ([]leaderboard.Entry, error)
}

// phase is the UI state, separate from the game's own session states.
type phase int

const (
	phaseName      phase = iota // Username entry
	phaseCharacter              // Character select
	phaseTitle                  // Ready to start
	phasePlaying                // Tick loop running
	phaseOver                   // Terminal screen with the leaderboard
)

// scoresMsg delivers the asynchronously fetched global top list.
type scoresMsg struct {
	entries []leaderboard.Entry
	err     error
}

// recordedMsg reports the one-shot score submission for the finished run.
type recordedMsg struct {
	err error
}

// ModelConfig configures a jumper TUI session.
type ModelConfig struct {
	Runtime   core.RuntimeConfig
	Username  string // Pre-set identity; empty prompts for one
	Character leaderboard.Character

	// SaveIdentity persists name/character choices. Nil when the identity
	// is fixed (SSH sessions use the connecting user).
	SaveIdentity func(username, character string) error
}

// Model is the Bubble Tea model for running the jumper.
type Model struct {
	game   *game.Game
	screen *core.Screen
	board  Leaderboard
	config ModelConfig

	phase     phase
	nameInput textinput.Model
	character leaderboard.Character

	input    core.InputFrame
	state    core.GameState
	recorded bool // Submission fired for the current game over
	scores   []leaderboard.Entry
	scoresOK bool
	quitting bool
}

// NewModel creates a TUI model for the given game and leaderboard.
func NewModel(g *game.Game, board Leaderboard, cfg ModelConfig) Model {
	if cfg.Runtime.Seed == 0 {
		cfg.Runtime.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = leaderboard.MaxUsernameLen
	ti.Focus()

	character := cfg.Character
	if !character.Valid() {
		character = leaderboard.CharacterCooper
	}

	m := Model{
		game:      g,
		screen:    core.NewScreen(cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
		board:     board,
		config:    cfg,
		nameInput: ti,
		character: character,
	}
	if cfg.Username != "" {
		m.phase = phaseTitle
	}
	return m
}

// Init starts the cursor blink for the name prompt.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.Runtime.ScreenW = msg.Width
		m.config.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case recordedMsg:
		// Submission outcome is cosmetic here: failures already degraded
		// to the local mirror inside the client.
		return m, nil

	case scoresMsg:
		if msg.err == nil {
			m.scores = msg.entries
			m.scoresOK = true
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseName:
		return m.handleNameKey(msg)
	case phaseCharacter:
		return m.handleCharacterKey(msg)
	case phaseTitle:
		return m.handleTitleKey(msg)
	case phasePlaying:
		return m.handlePlayKey(msg)
	case phaseOver:
		return m.handleOverKey(msg)
	}
	return m, nil
}

func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(m.nameInput.Value())
		if utf8.RuneCountInString(name) < leaderboard.MinUsernameLen {
			return m, nil
		}
		m.config.Username = name
		m.saveIdentity()
		m.phase = phaseCharacter
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleCharacterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		if m.character == leaderboard.CharacterCooper {
			m.character = leaderboard.CharacterZeek
		} else {
			m.character = leaderboard.CharacterCooper
		}
	case "enter", " ", "space":
		m.saveIdentity()
		m.phase = phaseTitle
	case "q", "esc":
		m.phase = phaseTitle
	}
	return m, nil
}

func (m Model) handleTitleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "space":
		return m.startRun()
	case "c":
		m.phase = phaseCharacter
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "a":
		m.input.Left = true
	case "right", "d":
		m.input.Right = true
	case "q":
		// Quitting mid-run abandons the session; nothing is submitted.
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.startRun()
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// startRun begins a fresh session and enters the tick loop.
func (m Model) startRun() (tea.Model, tea.Cmd) {
	m.config.Runtime.Seed = time.Now().UnixNano()
	m.game.Start(m.config.Runtime.Seed)
	m.state = m.game.State()
	m.phase = phasePlaying
	m.input = core.InputFrame{}
	m.recorded = false
	m.scores = nil
	m.scoresOK = false
	return m, tickCmd(m.config.Runtime.TickRate)
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		return m, nil
	}

	m.state = m.game.Step(m.input)
	m.input = core.InputFrame{}

	if m.state.GameOver {
		m.phase = phaseOver
		cmds := []tea.Cmd{m.fetchScoresCmd()}
		if !m.recorded {
			// Exactly one submission per finished run. The command runs
			// off the UI loop; an in-flight submission survives restarts.
			m.recorded = true
			cmds = append(cmds, m.recordScoreCmd(m.state.Score))
		}
		return m, tea.Batch(cmds...)
	}

	return m, tickCmd(m.config.Runtime.TickRate)
}

func (m Model) recordScoreCmd(score int) tea.Cmd {
	board := m.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return recordedMsg{err: board.RecordScore(ctx, score)}
	}
}

func (m Model) fetchScoresCmd() tea.Cmd {
	board := m.board
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		entries, err := board.Top(ctx)
		return scoresMsg{entries: entries, err: err}
	}
}

func (m *Model) saveIdentity() {
	if m.config.SaveIdentity == nil {
		return
	}
	//nolint:errcheck // Identity persistence is best-effort; play continues
	m.config.SaveIdentity(m.config.Username, string(m.character))
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseName:
		return m.viewNamePrompt()
	case phaseCharacter:
		return m.viewCharacterSelect()
	case phaseTitle:
		return m.viewTitle()
	default:
		renderWorld(m.game, m.screen)
		if m.phase == phaseOver {
			renderGameOver(m.screen, m.state.Score)
		}
		out := m.screen.String()
		if m.phase == phaseOver && m.scoresOK {
			out += "\n" + renderScoreboard(m.scores, m.config.Username)
		}
		return out
	}
}

// Run starts the Bubble Tea program for a local play session.
func Run(g *game.Game, board Leaderboard, cfg ModelConfig) error {
	p := tea.NewProgram(
		NewModel(g, board, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
