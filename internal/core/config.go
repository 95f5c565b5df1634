package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to terminal size and for reproducible runs.
type RuntimeConfig struct {
	ViewportW int   // Viewport width in character cells (one cell per tile column)
	ViewportH int   // Viewport height in character cells
	TickRate  int   // Simulation ticks per second (default 90)
	Seed      int64 // RNG seed; 0 means the platform layer seeds from time
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 80,
		ViewportH: 24,
		TickRate:  90,
		Seed:      0,
	}
}
