package config

// ApplyPreset adjusts the generator tuning for a named difficulty preset.
// Easy widens gap spacing and thins out enemies; hard does the opposite.
// Fixed disables per-level scaling but leaves the base tuning alone.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Generator.GapChance *= 0.6
		cfg.Generator.EnemyChance *= 0.5
		cfg.Generator.GapMax = Default().Generator.GapMin + 1
		cfg.Generator.MinGapSpacing += 3
	case PresetNormal:
		// Base tuning is the normal preset.
	case PresetHard:
		cfg.Generator.GapChance *= 1.5
		cfg.Generator.EnemyChance *= 1.8
		cfg.Generator.MinGapSpacing = maxInt(3, cfg.Generator.MinGapSpacing-2)
	case PresetFixed:
		cfg.Scaling.Enabled = false
	}
}

// ForLevel returns generator tuning scaled for the given 1-indexed level.
// Scaling grows linearly and stops at Scaling.MaxLevel. Gap length bounds
// never scale; only gap and enemy frequency do.
func (c Config) ForLevel(level int) GeneratorConfig {
	gen := c.Generator
	if !c.Scaling.Enabled || level <= 1 {
		return gen
	}

	steps := level - 1
	if c.Scaling.MaxLevel > 1 && steps > c.Scaling.MaxLevel-1 {
		steps = c.Scaling.MaxLevel - 1
	}

	gen.GapChance += float64(steps) * c.Scaling.GapChanceStep
	gen.EnemyChance += float64(steps) * c.Scaling.EnemyChanceStep
	if gen.GapChance > 0.25 {
		gen.GapChance = 0.25
	}
	if gen.EnemyChance > 0.9 {
		gen.EnemyChance = 0.9
	}
	return gen
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
