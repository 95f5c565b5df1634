package game

import (
	"math/rand"
	"time"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
)

// Status is the game flow state.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusDead
	StatusWin
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusWin:
		return "win"
	default:
		return "unknown"
	}
}

// StepResult reports what one tick produced. RunEnded fires on the tick
// the player dies, carrying the score held before it was reset; the
// platform layer uses it to persist finished runs.
type StepResult struct {
	Status     Status
	RunEnded   bool
	FinalScore int
	Level      int
}

// Game owns the world and the play/death/win state machine. It is not
// safe for concurrent use; the simulation Loop serializes access.
type Game struct {
	cfg     *config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	world  *World
	status Status

	deadTime float64 // Seconds left in the death freeze
	winTime  float64 // Seconds left in the win celebration
	score    int
	level    int
	paused   bool

	prevPause bool // For edge-triggered pause toggling
	prevReset bool
}

// New creates a game with the given tuning and runtime settings and
// generates the first level. A zero seed falls back to the wall clock,
// matching normal (non-reproducible) play.
func New(cfg config.Config, rt core.RuntimeConfig) *Game {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     &cfg,
		runtime: rt,
		rng:     rand.New(rand.NewSource(seed)),
		level:   1,
	}
	g.regenerate()
	return g
}

// Reset restarts from level 1 with a zero score.
func (g *Game) Reset() {
	g.level = 1
	g.score = 0
	g.status = StatusPlaying
	g.deadTime = 0
	g.winTime = 0
	g.regenerate()
}

// regenerate replaces the world wholesale for the current level and puts
// the player at the new spawn point.
func (g *Game) regenerate() {
	gen := g.cfg.ForLevel(g.level)
	g.world = GenerateWorld(*g.cfg, gen, g.rng)
	g.world.Player = Actor{
		Pos:     g.world.Spawn,
		Width:   g.cfg.Player.Width,
		Height:  g.cfg.Player.Height,
		Footing: Airborne,
	}
}

// SetViewport updates the viewport dimensions used by the camera rule.
func (g *Game) SetViewport(wCells, hCells int) {
	g.runtime.ViewportW = wCells
	g.runtime.ViewportH = hCells
}

// Step advances the simulation by one fixed tick of dt seconds. Within a
// tick the order is fixed: physics, interaction rules, enemy update,
// particle update, camera update.
func (g *Game) Step(keys *core.KeySet, dt float64) StepResult {
	g.handleToggles(keys)

	if g.paused {
		return g.result(false, 0)
	}

	switch g.status {
	case StatusPlaying:
		return g.stepPlaying(keys, dt)
	case StatusDead:
		return g.stepDead(dt)
	case StatusWin:
		return g.stepWin(dt)
	}
	return g.result(false, 0)
}

// handleToggles processes the edge-triggered pause and reset keys.
func (g *Game) handleToggles(keys *core.KeySet) {
	pause := keys.Held(core.KeyPause)
	if pause && !g.prevPause {
		g.paused = !g.paused
	}
	g.prevPause = pause

	reset := keys.Held(core.KeyReset)
	if reset && !g.prevReset {
		g.Reset()
	}
	g.prevReset = reset
}

func (g *Game) stepPlaying(keys *core.KeySet, dt float64) StepResult {
	in := inputState{
		left:  keys.Held(core.KeyLeft),
		right: keys.Held(core.KeyRight),
		jump:  keys.Held(core.KeyJump),
	}

	if fell := stepPlayer(g.world, g.cfg, in, dt); fell {
		g.spawnBurst(g.world.Player.Bounds().Center(), burstPitDeath)
		final := g.enterDead()
		return g.result(true, final)
	}

	if ended, final := g.applyInteractions(); ended {
		return g.result(true, final)
	}

	g.stepEnemies(dt)
	g.world.Gate.Phase += dt * 3

	g.emitMovementParticles()
	g.world.Particles = stepParticles(g.world.Particles, g.cfg.Physics.TileSize, dt)

	g.updateCamera()
	return g.result(false, 0)
}

// applyInteractions evaluates crate pickup, enemy contact and gate reach
// against the player's bounding box. Returns true with the pre-reset
// score if the player died.
func (g *Game) applyInteractions() (bool, int) {
	w := g.world
	ts := g.cfg.Physics.TileSize
	player := w.Player.Bounds()

	// Crate pickup, iterating by descending index for stable removal.
	for i := len(w.Decor) - 1; i >= 0; i-- {
		d := w.Decor[i]
		if d.Kind != DecorCrate {
			continue
		}
		if player.Intersects(d.Bounds(ts)) {
			g.spawnBurst(d.Bounds(ts).Center(), burstCrate)
			w.Decor = append(w.Decor[:i], w.Decor[i+1:]...)
			g.score++
		}
	}

	// Enemy contact: only the first intersecting enemy is processed.
	for i := range w.Enemies {
		if player.Intersects(w.Enemies[i].Bounds()) {
			g.spawnBurst(w.Enemies[i].Bounds().Center(), burstEnemyKill)
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return true, g.enterDead()
		}
	}

	// Gate reach.
	if player.Intersects(w.Gate.Bounds()) {
		g.status = StatusWin
		g.winTime = g.cfg.Timers.WinTime
		g.spawnBurst(w.Gate.Bounds().Center(), burstGateWin)
	}

	return false, 0
}

// enterDead starts the death freeze: fixed timer, score reset, player
// moved off-screen with zero velocity. Returns the score held before the
// reset.
func (g *Game) enterDead() int {
	final := g.score
	g.status = StatusDead
	g.deadTime = g.cfg.Timers.DeadTime
	g.score = 0

	p := &g.world.Player
	p.Pos = core.Vec2{X: -1000, Y: -1000}
	p.Vel = core.Vec2{}
	return final
}

// stepDead counts the death freeze down; only particles and the timer
// advance. On expiry the player respawns at the level's spawn point.
func (g *Game) stepDead(dt float64) StepResult {
	g.world.Particles = stepParticles(g.world.Particles, g.cfg.Physics.TileSize, dt)

	g.deadTime -= dt
	if g.deadTime <= 0 {
		g.deadTime = 0
		p := &g.world.Player
		p.Pos = g.world.Spawn
		p.Vel = core.Vec2{}
		p.Footing = Airborne
		g.status = StatusPlaying
	}
	return g.result(false, 0)
}

// stepWin counts the celebration down while the gate's shimmer
// accelerates. On expiry the level counter advances and the world is
// regenerated wholesale.
func (g *Game) stepWin(dt float64) StepResult {
	g.world.Particles = stepParticles(g.world.Particles, g.cfg.Physics.TileSize, dt)
	g.world.Gate.Phase += dt * 12
	g.updateCamera()

	g.winTime -= dt
	if g.winTime <= 0 {
		g.winTime = 0
		g.level++
		g.regenerate()
		g.status = StatusPlaying
	}
	return g.result(false, 0)
}

func (g *Game) result(ended bool, finalScore int) StepResult {
	return StepResult{
		Status:     g.status,
		RunEnded:   ended,
		FinalScore: finalScore,
		Level:      g.level,
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Level returns the current 1-indexed level.
func (g *Game) Level() int {
	return g.level
}

// Status returns the current flow state.
func (g *Game) Status() Status {
	return g.status
}

// Paused reports whether the pause menu is up.
func (g *Game) Paused() bool {
	return g.paused
}
