package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
// Matches the embedded defaults/jumper.yaml.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			CanvasWidth:  800,
			CanvasHeight: 600,
			CameraFactor: 0.7,
			FallMargin:   100,
			ScoreDivisor: 10,
		},
		Physics: PhysicsConfig{
			Gravity:          0.07,
			JumpForce:        -18,
			PlayerSpeed:      3.0,
			Friction:         0.8,
			LandingTolerance: 10,
		},
		Player: PlayerConfig{
			Width:  40,
			Height: 40,
			SpawnY: 100,
		},
		Level: LevelConfig{
			PlatformWidth:   100,
			PlatformHeight:  20,
			Spacing:         150,
			InitialCount:    100,
			BatchCount:      20,
			RefillThreshold: 10,
		},
	}
}
