// Package game implements the endless-jumper simulation: procedural level
// generation, per-tick physics and collision, camera tracking, and the
// session state machine (idle -> running -> over).
//
// The platform list is append-only and never pruned. For the session lengths
// this game sees the growth is an accepted tradeoff; long-running hosts
// should restart sessions rather than expect pruning.
package game

import (
	"math"

	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/core"
)

// Player is the mutable per-session avatar, owned exclusively by Step.
type Player struct {
	X, Y       float64
	W, H       float64
	VelX, VelY float64
	OnGround   bool
}

// Rect returns the player's world-space bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Game owns one session of the endless jumper. The host holds the only
// reference and drives ticks from its own scheduler; Step never blocks and
// never fails, it only transitions state.
type Game struct {
	cfg config.JumperConfig
	gen *Generator

	player           Player
	platforms        []Platform
	cameraY          float64
	score            int
	started          bool
	over             bool
	highestPlatformY float64
	tick             uint64
}

// New creates an idle game. Call Start to begin a run.
func New(cfg config.JumperConfig) *Game {
	return &Game{cfg: cfg}
}

// Start begins a new run: regenerates the platform field, resets the player,
// camera, and score, and transitions to running. Restarting after game over
// goes through here as well.
func (g *Game) Start(seed int64) {
	g.gen = NewGenerator(g.cfg, seed)
	g.platforms = g.gen.Initial()
	g.highestPlatformY = highestOf(g.platforms)

	g.player = Player{
		X: g.cfg.World.CanvasWidth / 2,
		Y: g.cfg.World.CanvasHeight - g.cfg.Player.SpawnY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.cameraY = 0
	g.score = 0
	g.started = true
	g.over = false
	g.tick = 0
}

// Step advances the simulation by one tick with the given input snapshot.
// Outside the running state it is a no-op.
func (g *Game) Step(in core.InputFrame) core.GameState {
	if !g.started || g.over {
		return g.State()
	}
	g.tick++

	ph := g.cfg.Physics
	w := g.cfg.World
	p := &g.player

	// Horizontal velocity: held key sets it, otherwise friction decays it.
	// Left wins when both are held.
	if in.Left {
		p.VelX = -ph.PlayerSpeed
	} else if in.Right {
		p.VelX = ph.PlayerSpeed
	} else {
		p.VelX *= ph.Friction
	}

	// Gravity accumulates without a terminal velocity cap.
	p.VelY += ph.Gravity
	p.X += p.VelX
	p.Y += p.VelY

	// Horizontal wraparound keeps x within [-width, canvasWidth].
	if p.X < -p.W {
		p.X = w.CanvasWidth
	} else if p.X > w.CanvasWidth {
		p.X = -p.W
	}

	// Platform landing is only evaluated while falling. Every platform whose
	// horizontal extent overlaps the player and whose top edge lies within
	// the tolerance band below the player's feet is applied in sequence
	// order; when several overlap in one tick the last one wins.
	p.OnGround = false
	if p.VelY > 0 {
		for _, pl := range g.platforms {
			if p.X < pl.X+pl.W && p.X+p.W > pl.X &&
				p.Y+p.H > pl.Y && p.Y+p.H < pl.Y+pl.H+ph.LandingTolerance {
				p.Y = pl.Y - p.H
				p.VelY = ph.JumpForce
				p.OnGround = true
			}
		}
	}

	// Camera ratchet: follows the player up, never back down.
	targetY := p.Y - w.CanvasHeight*w.CameraFactor
	if targetY < g.cameraY {
		g.cameraY = targetY
	}

	// Score derives from height and never decreases within a session.
	if s := int(math.Floor((w.CanvasHeight - p.Y) / w.ScoreDivisor)); s > g.score {
		g.score = s
	}

	// The run ends when the player falls far enough below the viewport.
	if p.Y > g.cameraY+w.CanvasHeight+w.FallMargin {
		g.over = true
	}

	// Extend the field once the player approaches the highest platform.
	// Consumed platforms are never removed.
	if p.Y < g.highestPlatformY+g.cfg.Level.Spacing*float64(g.cfg.Level.RefillThreshold) {
		more := g.gen.More(g.highestPlatformY)
		g.platforms = append(g.platforms, more...)
		g.highestPlatformY = highestOf(more)
	}

	return g.State()
}

// State returns the session status for the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Started:  g.started,
		GameOver: g.over,
	}
}

// Player returns a copy of the current player state.
func (g *Game) Player() Player {
	return g.player
}

// Platforms returns the live platform sequence. Callers must not mutate it.
func (g *Game) Platforms() []Platform {
	return g.platforms
}

// CameraY returns the current viewport offset.
func (g *Game) CameraY() float64 {
	return g.cameraY
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// Over reports whether the session has reached its terminal state.
func (g *Game) Over() bool {
	return g.over
}

// Started reports whether a run is in progress or finished (not idle).
func (g *Game) Started() bool {
	return g.started
}

// Config returns the tuning the game was created with.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}
