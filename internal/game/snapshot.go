package game

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Tick             uint64
	Score            int
	PlayerX          float64
	PlayerY          float64
	VelX             float64
	VelY             float64
	OnGround         bool
	CameraY          float64
	PlatformCount    int
	HighestPlatformY float64
	Started          bool
	Over             bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:             g.tick,
		Score:            g.score,
		PlayerX:          g.player.X,
		PlayerY:          g.player.Y,
		VelX:             g.player.VelX,
		VelY:             g.player.VelY,
		OnGround:         g.player.OnGround,
		CameraY:          g.cameraY,
		PlatformCount:    len(g.platforms),
		HighestPlatformY: g.highestPlatformY,
		Started:          g.started,
		Over:             g.over,
	}
}
