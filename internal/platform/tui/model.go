package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
	"github.com/akarpov/tilerunner/internal/game"
	"github.com/akarpov/tilerunner/internal/storage"
)

// Terminals report key repeats but no key-up events. A key is treated as
// held while repeats keep arriving and released once none arrive within
// the hold window; the sweep interval bounds how stale a release can be.
const (
	keyHoldWindow = 150 * time.Millisecond
	sweepInterval = 50 * time.Millisecond
)

// frameMsg signals that the simulation finished a tick and a fresh
// snapshot is available.
type frameMsg struct{}

// sweepMsg triggers a pass over held keys to synthesize releases.
type sweepMsg time.Time

// Model is the Bubble Tea model for an interactive play session. The
// simulation runs on the loop's own goroutine; the model only forwards
// input and renders snapshots, so a slow terminal never stalls a tick.
type Model struct {
	loop   *game.Loop
	store  *storage.Store
	screen *core.Screen
	keys   *KeyMapper

	frames chan struct{}
	held   map[string]time.Time

	snap     game.Snapshot
	quitting bool
}

// NewModel creates a play-session model around a simulation loop. The
// store may be nil; runs are then not persisted.
func NewModel(loop *game.Loop, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		loop:   loop,
		store:  store,
		screen: core.NewScreen(cfg.ViewportW, cfg.ViewportH),
		keys:   NewKeyMapper(),
		frames: make(chan struct{}, 1),
		held:   make(map[string]time.Time),
	}

	// The redraw hint must never block the tick: a full channel means a
	// frame is already pending and this one coalesces into it.
	frames := m.frames
	loop.SetRedraw(func() {
		select {
		case frames <- struct{}{}:
		default:
		}
	})

	if store != nil {
		loop.SetRunEnd(func(score, level int) {
			//nolint:errcheck // Best-effort save, play continues regardless
			store.SaveRun(score, level)
		})
	}

	return m
}

// Init starts the simulation loop and the frame/sweep commands.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	return tea.Batch(waitFrame(m.frames, m.loop.Done()), sweepCmd())
}

// waitFrame blocks on the next redraw hint from the loop goroutine. It
// also watches loop termination so the command unblocks and quits once
// the loop stops, instead of leaking with the session.
func waitFrame(frames chan struct{}, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-frames:
			return frameMsg{}
		case <-done:
			return tea.Quit()
		}
	}
}

// sweepCmd schedules the next held-key sweep.
func sweepCmd() tea.Cmd {
	return tea.Tick(sweepInterval, func(t time.Time) tea.Msg {
		return sweepMsg(t)
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.loop.SetViewport(msg.Width, msg.Height)
		return m, nil

	case frameMsg:
		m.snap = m.loop.Snapshot()
		return m, waitFrame(m.frames, m.loop.Done())

	case sweepMsg:
		m.releaseStaleKeys()
		return m, sweepCmd()
	}

	return m, nil
}

// handleKey forwards a key press to the loop and records it as held.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit
	}
	if code == "" {
		return m, nil
	}

	m.loop.KeyDown(code)
	m.held[code] = time.Now()
	return m, nil
}

// releaseStaleKeys synthesizes key-up events for keys whose terminal
// repeats have stopped arriving.
func (m Model) releaseStaleKeys() {
	now := time.Now()
	for code, last := range m.held {
		if now.Sub(last) > keyHoldWindow {
			m.loop.KeyUp(code)
			delete(m.held, code)
		}
	}
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.snap.Grid == nil {
		return "loading..."
	}

	renderSnapshot(&m.snap, m.screen)
	return RenderScreen(m.screen)
}

// Run starts an interactive play session in the local terminal and
// blocks until the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store) error {
	g := game.New(cfg, rt)
	loop := game.NewLoop(g, rt.TickRate)
	loop.SetViewport(rt.ViewportW, rt.ViewportH)

	model := NewModel(loop, store, rt)
	defer loop.Stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
