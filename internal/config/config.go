// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

// Config contains all tuning for the platformer: physics constants,
// map geometry, generator probabilities, actor sizes, timers and camera.
// These are the only "configuration" the core consumes; there is no
// runtime-loaded game state.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Map       MapConfig       `yaml:"map"`
	Generator GeneratorConfig `yaml:"generator"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Timers    TimerConfig     `yaml:"timers"`
	Camera    CameraConfig    `yaml:"camera"`
	Scaling   ScalingConfig   `yaml:"scaling"`
}

// PhysicsConfig defines the fixed physics constants.
// Velocities are in tile units per second; positions in world pixels.
type PhysicsConfig struct {
	TileSize     float64 `yaml:"tile_size"`      // World pixels per tile
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, tiles/s^2 (airborne only)
	Accel        float64 `yaml:"accel"`          // Horizontal acceleration under input, tiles/s^2
	Friction     float64 `yaml:"friction"`       // Horizontal decay without input, tiles/s^2
	MaxSpeed     float64 `yaml:"max_speed"`      // Horizontal speed cap, tiles/s
	JumpImpulse  float64 `yaml:"jump_impulse"`   // Upward (negative) jump velocity, tiles/s
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Downward speed cap, tiles/s
	SnapEpsilon  float64 `yaml:"snap_epsilon"`   // Below this |vx| snaps to exactly zero
}

// MapConfig defines level geometry.
type MapConfig struct {
	Cols      int     `yaml:"cols"`       // Map width in tiles
	Rows      int     `yaml:"rows"`       // Map height in tiles
	PitMargin float64 `yaml:"pit_margin"` // Tiles below the floor row before a fall kills
}

// GeneratorConfig tunes the procedural map generator.
type GeneratorConfig struct {
	SafeZoneCols  int     `yaml:"safe_zone_cols"` // Leading columns that are always solid
	EndMarginCols int     `yaml:"end_margin_cols"` // Trailing columns kept solid around the gate
	GapChance     float64 `yaml:"gap_chance"`      // Per-column probability of opening a gap
	MinGapSpacing int     `yaml:"min_gap_spacing"` // Minimum solid columns between gaps
	GapMin        int     `yaml:"gap_min"`         // Shortest gap in tiles
	GapMax        int     `yaml:"gap_max"`         // Longest gap in tiles
	PlantChance   float64 `yaml:"plant_chance"`    // Probability of a plant above solid floor

	PlatformMinStride int     `yaml:"platform_min_stride"` // Column stride between platform attempts
	PlatformMaxStride int     `yaml:"platform_max_stride"`
	PlatformMinLen    int     `yaml:"platform_min_len"` // Platform length in tiles
	PlatformMaxLen    int     `yaml:"platform_max_len"`
	PlatformMinRise   int     `yaml:"platform_min_rise"` // Tiles above the floor row
	PlatformMaxRise   int     `yaml:"platform_max_rise"`
	CrateChance       float64 `yaml:"crate_chance"` // Probability of a crate on a platform
	EnemyChance       float64 `yaml:"enemy_chance"` // Probability of an enemy patrolling a platform

	IslandMinStride int     `yaml:"island_min_stride"` // Sky island stride (larger gaps)
	IslandMaxStride int     `yaml:"island_max_stride"`
	IslandMinLen    int     `yaml:"island_min_len"`
	IslandMaxLen    int     `yaml:"island_max_len"`
	IslandMinRise   int     `yaml:"island_min_rise"` // Sky island height above the floor row
	IslandMaxRise   int     `yaml:"island_max_rise"`
	IslandCrate     float64 `yaml:"island_crate_chance"`

	GateOffsetCols int `yaml:"gate_offset_cols"` // Gate distance from the right edge
	GateRise       int `yaml:"gate_rise"`        // Gate elevation above the floor row, in tiles
	SpawnCol       int `yaml:"spawn_col"`        // Player spawn column near the left edge
}

// PlayerConfig defines the player actor's size in world pixels.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines enemy actor parameters.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PatrolSpeed float64 `yaml:"patrol_speed"` // Horizontal patrol velocity, tiles/s
	SettleSpeed float64 `yaml:"settle_speed"` // Constant downward settle velocity, tiles/s
}

// TimerConfig defines the state-machine timers in seconds.
type TimerConfig struct {
	DeadTime float64 `yaml:"dead_time"` // Seconds before respawn after death
	WinTime  float64 `yaml:"win_time"`  // Seconds before the next level after winning
}

// CameraConfig defines the camera-follow rule.
type CameraConfig struct {
	Smoothing    float64 `yaml:"smoothing"`     // Per-tick exponential smoothing factor
	LeadFraction float64 `yaml:"lead_fraction"` // Fraction of viewport width kept ahead of the player
	Margin       float64 `yaml:"margin"`        // Extra scroll slack past the map edge, world pixels
}

// ScalingConfig makes later levels harder by scaling generator odds.
// Applied per level above the first, capped at MaxLevel.
type ScalingConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MaxLevel       int     `yaml:"max_level"`        // Level at which scaling stops growing
	GapChanceStep  float64 `yaml:"gap_chance_step"`  // Added to gap_chance per level
	EnemyChanceStep float64 `yaml:"enemy_chance_step"` // Added to enemy_chance per level
}

// Preset is a named difficulty level selectable from the CLI.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// ParsePreset converts a CLI string to a Preset.
// Returns false for unrecognized names.
func ParsePreset(s string) (Preset, bool) {
	switch s {
	case "easy":
		return PresetEasy, true
	case "normal":
		return PresetNormal, true
	case "hard":
		return PresetHard, true
	case "fixed":
		return PresetFixed, true
	}
	return "", false
}
