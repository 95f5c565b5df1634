package game

import (
	"sync"
	"time"

	"github.com/akarpov/tilerunner/internal/core"
)

// stopWait bounds how long Stop blocks for the loop goroutine to observe
// termination.
const stopWait = time.Second

// Loop drives the game at a fixed cadence on its own goroutine,
// independent of the presentation layer's redraw cadence.
//
// One mutex guards both the pressed-key set and the world: the loop takes
// it for the read-input/step/publish portion of each tick, input handlers
// take it to mutate the key set, and Snapshot takes it to read world
// state. The lock is never held across the redraw hint or any I/O.
type Loop struct {
	mu   sync.Mutex
	game *Game
	keys *core.KeySet

	interval time.Duration
	dt       float64

	redraw   func()                 // Non-blocking redraw hint, may be nil
	onRunEnd func(score, level int) // Called when a run ends, may be nil

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a simulation loop around the game ticking at the given
// rate (ticks per second).
func NewLoop(g *Game, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = core.DefaultRuntimeConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return &Loop{
		game:     g,
		keys:     core.NewKeySet(),
		interval: interval,
		dt:       interval.Seconds(),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetRedraw installs the redraw hint invoked after every tick, outside
// the lock. The hint must not block; the presentation thread may coalesce
// or drop hints without affecting simulation correctness.
func (l *Loop) SetRedraw(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.redraw = fn
}

// SetRunEnd installs a callback fired (outside the lock) on the tick a
// run ends, with the score held before the death reset.
func (l *Loop) SetRunEnd(fn func(score, level int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onRunEnd = fn
}

// Start launches the loop goroutine.
func (l *Loop) Start() {
	go l.run()
}

// Done returns a channel closed once Stop has been requested. Consumers
// blocked on a redraw hint select on it so they unblock when the loop
// shuts down.
func (l *Loop) Done() <-chan struct{} {
	return l.stop
}

// Stop asks the loop to terminate and waits, bounded, for it to observe
// the request. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
	select {
	case <-l.done:
	case <-time.After(stopWait):
	}
}

// run is the fixed-cadence tick loop. The termination flag is checked
// once per iteration; a short sleep throttles the cadence.
func (l *Loop) run() {
	defer close(l.done)

	for {
		select {
		case <-l.stop:
			return
		default:
		}

		l.mu.Lock()
		result := l.game.Step(l.keys, l.dt)
		redraw := l.redraw
		onRunEnd := l.onRunEnd
		l.mu.Unlock()

		if result.RunEnded && onRunEnd != nil {
			onRunEnd(result.FinalScore, result.Level)
		}
		if redraw != nil {
			redraw()
		}

		time.Sleep(l.interval)
	}
}

// KeyDown records a physical key press, normalized onto the canonical
// key set under the simulation lock.
func (l *Loop) KeyDown(code string) {
	k := core.NormalizeKey(code)
	if k == core.KeyNone {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys.Press(k)
}

// KeyUp records a physical key release.
func (l *Loop) KeyUp(code string) {
	k := core.NormalizeKey(code)
	if k == core.KeyNone {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys.Release(k)
}

// Snapshot returns a consistent view of the world for rendering. No
// partial tick is ever visible: the snapshot is taken under the same lock
// the tick runs under.
func (l *Loop) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.game.Snapshot()
}

// SetViewport forwards a viewport resize to the game under the lock.
func (l *Loop) SetViewport(wCells, hCells int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.game.SetViewport(wCells, hCells)
}
