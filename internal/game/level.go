package game

import (
	"math/rand"

	"github.com/froghouse/jumper/internal/config"
	"github.com/froghouse/jumper/internal/core"
)

// Platform is a static ledge the player rebounds from. Immutable once created.
type Platform struct {
	X, Y float64
	W, H float64
}

// Rect returns the platform's world-space bounding box.
func (p Platform) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Generator produces platform layouts procedurally: the initial field at game
// start and incremental batches as the player climbs. Pure function of its
// RNG; the caller merges results into the session's platform sequence.
type Generator struct {
	cfg config.JumperConfig
	rng *rand.Rand
}

// NewGenerator creates a generator seeded for a deterministic layout.
func NewGenerator(cfg config.JumperConfig, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Initial produces the starting field: one platform centered under the spawn
// point plus InitialCount platforms with random horizontal placement and
// fixed vertical spacing ascending from the base.
func (gn *Generator) Initial() []Platform {
	lv := gn.cfg.Level
	w := gn.cfg.World

	platforms := make([]Platform, 0, lv.InitialCount+1)
	baseY := w.CanvasHeight - 50

	platforms = append(platforms, Platform{
		X: w.CanvasWidth/2 - lv.PlatformWidth/2,
		Y: baseY,
		W: lv.PlatformWidth,
		H: lv.PlatformHeight,
	})

	for i := 1; i <= lv.InitialCount; i++ {
		platforms = append(platforms, Platform{
			X: gn.rng.Float64() * (w.CanvasWidth - lv.PlatformWidth),
			Y: baseY - float64(i)*lv.Spacing,
			W: lv.PlatformWidth,
			H: lv.PlatformHeight,
		})
	}
	return platforms
}

// More produces BatchCount additional platforms continuing the spacing above
// currentHighest (lower y = higher in the world).
func (gn *Generator) More(currentHighest float64) []Platform {
	lv := gn.cfg.Level
	w := gn.cfg.World

	startY := currentHighest - lv.Spacing

	platforms := make([]Platform, 0, lv.BatchCount)
	for i := 1; i <= lv.BatchCount; i++ {
		platforms = append(platforms, Platform{
			X: gn.rng.Float64() * (w.CanvasWidth - lv.PlatformWidth),
			Y: startY - float64(i)*lv.Spacing,
			W: lv.PlatformWidth,
			H: lv.PlatformHeight,
		})
	}
	return platforms
}

// highestOf returns the smallest y among the given platforms.
func highestOf(platforms []Platform) float64 {
	highest := platforms[0].Y
	for _, p := range platforms[1:] {
		if p.Y < highest {
			highest = p.Y
		}
	}
	return highest
}
