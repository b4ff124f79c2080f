package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/froghouse/jumper/internal/core"
	"github.com/froghouse/jumper/internal/game"
	"github.com/froghouse/jumper/internal/leaderboard"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 3)
)

// renderWorld projects the world-space scene into the character buffer.
// The world is camera-relative: everything shifts by the camera's Y before
// scaling down to terminal cells.
func renderWorld(g *game.Game, s *core.Screen) {
	s.Clear()

	cfg := g.Config()
	scaleX := float64(s.Width()) / cfg.World.CanvasWidth
	scaleY := float64(s.Height()) / cfg.World.CanvasHeight
	camY := g.CameraY()

	for _, p := range g.Platforms() {
		row := int((p.Y - camY) * scaleY)
		if row < 0 || row >= s.Height() {
			continue
		}
		col := int(p.X * scaleX)
		w := core.Max(1, int(p.W*scaleX))
		s.DrawHLine(col, row, w, '▀')
	}

	pl := g.Player()
	px := int(pl.X * scaleX)
	py := int((pl.Y - camY) * scaleY)
	pw := core.Max(1, int(pl.W*scaleX))
	ph := core.Max(1, int(pl.H*scaleY))
	s.DrawRect(core.NewRect(px, py, pw, ph), '█')

	s.DrawText(1, 0, fmt.Sprintf("Score: %d", g.Score()))
}

// renderGameOver overlays the terminal box on the frozen world.
func renderGameOver(s *core.Screen, score int) {
	boxW := core.Min(36, s.Width())
	boxH := 7
	box := core.NewRect((s.Width()-boxW)/2, (s.Height()-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, "GAME OVER")
	s.DrawTextCentered(box.Y+3, fmt.Sprintf("Score: %d", score))
	s.DrawTextCentered(box.Y+5, "[r] play again   [q] quit")
}

func (m Model) viewNamePrompt() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Who's jumping?"),
		"",
		m.nameInput.View(),
		"",
		hintStyle.Render(fmt.Sprintf("%d-%d characters, enter to confirm",
			leaderboard.MinUsernameLen, leaderboard.MaxUsernameLen)),
	)
	return m.centered(promptStyle.Render(body))
}

func (m Model) viewCharacterSelect() string {
	cooper := dimStyle.Render("  cooper  ")
	zeek := dimStyle.Render("  zeek  ")
	if m.character == leaderboard.CharacterCooper {
		cooper = selectedStyle.Render("> cooper <")
	} else {
		zeek = selectedStyle.Render("> zeek <")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Pick a character"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, cooper, "   ", zeek),
		"",
		hintStyle.Render("←/→ switch, enter to confirm"),
	)
	return m.centered(promptStyle.Render(body))
}

func (m Model) viewTitle() string {
	lines := []string{
		titleStyle.Render("J U M P E R"),
		"",
		fmt.Sprintf("playing as %s (%s)",
			selectedStyle.Render(m.config.Username), m.character),
		"",
		hintStyle.Render("[space] start   [c] character   [q] quit"),
	}
	if m.config.Username == "" {
		lines[2] = dimStyle.Render("playing anonymously, scores stay local")
	}

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return m.centered(promptStyle.Render(body))
}

// centered places the block in the middle of the terminal.
func (m Model) centered(block string) string {
	w := m.config.Runtime.ScreenW
	h := m.config.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		return block
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, block)
}

// renderScoreboard formats the global top list shown under the game-over
// screen, highlighting the player's own entries.
func renderScoreboard(entries []leaderboard.Entry, highlight string) string {
	if len(entries) == 0 {
		return hintStyle.Render("No scores yet. Be the first!")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("GLOBAL TOP"))
	sb.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %-20s %6d  %s", i+1, e.Username, e.Score, e.Date)
		if highlight != "" && strings.EqualFold(e.Username, highlight) {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
