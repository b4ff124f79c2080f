package game

import (
	"testing"

	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/core"
)

func newTestGame() *Game {
	g := New(config.DefaultJumperConfig())
	g.Start(12345)
	return g
}

func TestStepBeforeStartIsNoop(t *testing.T) {
	g := New(config.DefaultJumperConfig())

	state := g.Step(core.InputFrame{Right: true})

	if state.Started || state.GameOver || state.Score != 0 {
		t.Errorf("Step before Start should be a no-op, got %+v", state)
	}
	if g.Snapshot().Tick != 0 {
		t.Errorf("tick should not advance before Start, got %d", g.Snapshot().Tick)
	}
}

func TestLandingSnapsToBounce(t *testing.T) {
	g := newTestGame()
	cfg := g.cfg

	// Single platform directly under the player, player falling into the
	// tolerance band.
	g.platforms = []Platform{{X: 380, Y: 550, W: 100, H: 20}}
	g.player.X = 400
	g.player.Y = 525
	g.player.VelY = 5

	g.Step(core.InputFrame{})

	wantY := 550 - cfg.Player.Height
	if g.player.Y != wantY {
		t.Errorf("landing should snap bottom to platform top: y = %v, want %v", g.player.Y, wantY)
	}
	if g.player.VelY != cfg.Physics.JumpForce {
		t.Errorf("landing should set the fixed bounce velocity: velY = %v, want %v", g.player.VelY, cfg.Physics.JumpForce)
	}
	if !g.player.OnGround {
		t.Error("landing should set OnGround")
	}
}

func TestNoLandingWhileRising(t *testing.T) {
	g := newTestGame()

	g.platforms = []Platform{{X: 380, Y: 550, W: 100, H: 20}}
	g.player.X = 400
	g.player.Y = 512
	g.player.VelY = -3 // Rising through the platform

	g.Step(core.InputFrame{})

	if g.player.OnGround {
		t.Error("collision must not be evaluated while rising")
	}
	if g.player.VelY == g.cfg.Physics.JumpForce {
		t.Error("rising player should pass through the platform")
	}
}

func TestMultipleOverlappingHitsLastWins(t *testing.T) {
	g := newTestGame()

	// Two platforms overlapping the player in the same tick; hits are
	// applied in sequence order, so the later platform determines the
	// final resting position.
	g.platforms = []Platform{
		{X: 380, Y: 550, W: 100, H: 20},
		{X: 380, Y: 545, W: 100, H: 20},
	}
	g.player.X = 400
	g.player.Y = 525
	g.player.VelY = 5

	g.Step(core.InputFrame{})

	wantY := 545 - g.cfg.Player.Height
	if g.player.Y != wantY {
		t.Errorf("last overlapping platform should win: y = %v, want %v", g.player.Y, wantY)
	}
}

func TestHorizontalWraparound(t *testing.T) {
	cfg := config.DefaultJumperConfig()

	tests := []struct {
		name  string
		x     float64
		velX  float64
		in    core.InputFrame
		wantX float64
	}{
		{"wrap off left edge", -cfg.Player.Width - 1, -3, core.InputFrame{Left: true}, cfg.World.CanvasWidth},
		{"wrap off right edge", cfg.World.CanvasWidth + 1, 3, core.InputFrame{Right: true}, -cfg.Player.Width},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame()
			g.platforms = nil // No landings in this test
			g.player.X = tc.x
			g.player.VelX = tc.velX

			g.Step(tc.in)

			if g.player.X != tc.wantX {
				t.Errorf("x = %v, want %v", g.player.X, tc.wantX)
			}
			if g.player.X < -cfg.Player.Width || g.player.X > cfg.World.CanvasWidth {
				t.Errorf("x = %v outside [-width, canvasWidth]", g.player.X)
			}
		})
	}
}

func TestLeftInputWinsOverRight(t *testing.T) {
	g := newTestGame()

	g.Step(core.InputFrame{Left: true, Right: true})

	if g.player.VelX != -g.cfg.Physics.PlayerSpeed {
		t.Errorf("left should have priority, velX = %v", g.player.VelX)
	}
}

func TestFrictionDecaysTowardZero(t *testing.T) {
	g := newTestGame()
	g.player.VelX = 3

	g.Step(core.InputFrame{})

	want := 3 * g.cfg.Physics.Friction
	if g.player.VelX != want {
		t.Errorf("velX = %v, want %v", g.player.VelX, want)
	}
	if g.player.VelX == 0 {
		t.Error("friction decay should never reach exactly zero in one tick")
	}
}

func TestScoreAndCameraMonotonic(t *testing.T) {
	g := newTestGame()

	prevScore := g.Score()
	prevCamera := g.CameraY()
	for i := 0; i < 600; i++ {
		in := core.InputFrame{}
		if i%40 < 20 {
			in.Right = true
		} else {
			in.Left = true
		}
		state := g.Step(in)

		if state.Score < prevScore {
			t.Fatalf("tick %d: score decreased from %d to %d", i, prevScore, state.Score)
		}
		if g.CameraY() > prevCamera {
			t.Fatalf("tick %d: camera moved down from %v to %v", i, prevCamera, g.CameraY())
		}
		prevScore = state.Score
		prevCamera = g.CameraY()

		if state.GameOver {
			break
		}
	}
}

func TestFallEndsSession(t *testing.T) {
	g := newTestGame()
	cfg := g.cfg

	// Constant rightward input walks the player off the base platform
	// before falling into its tolerance band, so gravity alone decides
	// the run: the session must end once the player drops a full
	// viewport plus margin below the camera.
	var lastState core.GameState
	maxHeight := cfg.World.CanvasHeight // Smallest y observed, start from spawn
	for i := 0; i < 200; i++ {
		lastState = g.Step(core.InputFrame{Right: true})
		if y := g.Player().Y; y < maxHeight {
			maxHeight = y
		}
		if lastState.GameOver {
			break
		}
	}

	if !lastState.GameOver {
		t.Fatal("session should end within 200 ticks of free fall")
	}
	if g.Player().Y <= g.CameraY()+cfg.World.CanvasHeight+cfg.World.FallMargin {
		t.Error("game over fired before the player fell past the viewport margin")
	}

	wantScore := int((cfg.World.CanvasHeight - maxHeight) / cfg.World.ScoreDivisor)
	if lastState.Score != wantScore {
		t.Errorf("final score = %d, want %d (from peak height %v)", lastState.Score, wantScore, maxHeight)
	}

	// Terminal state: further ticks are no-ops.
	snap := g.Snapshot()
	g.Step(core.InputFrame{Left: true})
	if g.Snapshot() != snap {
		t.Error("Step after game over should not mutate the session")
	}
}

func TestPlatformFieldExtends(t *testing.T) {
	g := newTestGame()

	before := len(g.Platforms())
	highest := g.Snapshot().HighestPlatformY

	// Teleport the player near the top of the generated field.
	g.player.Y = highest + g.cfg.Level.Spacing
	g.player.VelY = -1

	g.Step(core.InputFrame{})

	after := len(g.Platforms())
	if after != before+g.cfg.Level.BatchCount {
		t.Errorf("platform count = %d, want %d", after, before+g.cfg.Level.BatchCount)
	}
	if g.Snapshot().HighestPlatformY >= highest {
		t.Error("highest platform should move up after extension")
	}
	if len(g.Platforms()) < before {
		t.Error("platform sequence must be append-only")
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame()

	for i := 0; i < 300; i++ {
		if g.Step(core.InputFrame{Right: true}).GameOver {
			break
		}
	}

	g.Start(999)
	snap := g.Snapshot()

	if snap.Score != 0 || snap.Over || !snap.Started || snap.Tick != 0 {
		t.Errorf("Start should reset the session, got %+v", snap)
	}
	if snap.CameraY != 0 {
		t.Errorf("camera should reset to 0, got %v", snap.CameraY)
	}
	if snap.PlatformCount != g.cfg.Level.InitialCount+1 {
		t.Errorf("platform count = %d, want %d", snap.PlatformCount, g.cfg.Level.InitialCount+1)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical sessions.
	run := func() Snapshot {
		g := New(config.DefaultJumperConfig())
		g.Start(42)
		for i := 0; i < 400; i++ {
			in := core.InputFrame{Left: i%3 == 0, Right: i%5 == 0}
			if g.Step(in).GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("determinism failed:\n run1 = %+v\n run2 = %+v", a, b)
	}
}
