package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// Default returns the built-in platformer configuration.
// Used as the final fallback when no YAML can be loaded, and as the
// canonical source of the tuning constants in tests.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			TileSize:     16,
			Gravity:      50,
			Accel:        40,
			Friction:     30,
			MaxSpeed:     8,
			JumpImpulse:  -15,
			MaxFallSpeed: 20,
			SnapEpsilon:  0.1,
		},
		Map: MapConfig{
			Cols:      160,
			Rows:      24,
			PitMargin: 4,
		},
		Generator: GeneratorConfig{
			SafeZoneCols:  6,
			EndMarginCols: 6,
			GapChance:     0.08,
			MinGapSpacing: 6,
			GapMin:        2,
			GapMax:        4,
			PlantChance:   0.10,

			PlatformMinStride: 6,
			PlatformMaxStride: 14,
			PlatformMinLen:    3,
			PlatformMaxLen:    6,
			PlatformMinRise:   3,
			PlatformMaxRise:   5,
			CrateChance:       0.5,
			EnemyChance:       0.25,

			IslandMinStride: 18,
			IslandMaxStride: 30,
			IslandMinLen:    2,
			IslandMaxLen:    4,
			IslandMinRise:   7,
			IslandMaxRise:   9,
			IslandCrate:     0.6,

			GateOffsetCols: 4,
			GateRise:       2,
			SpawnCol:       2,
		},
		Player: PlayerConfig{
			Width:  12,
			Height: 14,
		},
		Enemy: EnemyConfig{
			Width:       12,
			Height:      12,
			PatrolSpeed: 2,
			SettleSpeed: 8,
		},
		Timers: TimerConfig{
			DeadTime: 1.5,
			WinTime:  2.0,
		},
		Camera: CameraConfig{
			Smoothing:    0.08,
			LeadFraction: 0.35,
			Margin:       32,
		},
		Scaling: ScalingConfig{
			Enabled:        true,
			MaxLevel:       8,
			GapChanceStep:  0.01,
			EnemyChanceStep: 0.04,
		},
	}
}
