package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
	"github.com/akarpov/tilerunner/internal/game"
)

func testModel(t *testing.T) (Model, *game.Loop) {
	t.Helper()
	cfg := config.Default()
	rt := core.RuntimeConfig{ViewportW: 40, ViewportH: 20, TickRate: 200, Seed: 1}
	g := game.New(cfg, rt)
	loop := game.NewLoop(g, rt.TickRate)
	return NewModel(loop, nil, rt), loop
}

func TestWaitFrameUnblocksAfterLoopStop(t *testing.T) {
	m, loop := testModel(t)
	loop.Start()
	loop.Stop()

	// At most one redraw hint can still be buffered from a tick that ran
	// before the stop was observed; after draining it the command must
	// report the stopped loop rather than block with the session.
	deadline := time.After(2 * time.Second)
	for i := 0; i < 3; i++ {
		got := make(chan tea.Msg, 1)
		go func() {
			got <- waitFrame(m.frames, loop.Done())()
		}()

		select {
		case msg := <-got:
			switch msg.(type) {
			case tea.QuitMsg:
				return
			case frameMsg:
			default:
				t.Fatalf("waitFrame returned %T, want frameMsg or tea.QuitMsg", msg)
			}
		case <-deadline:
			t.Fatal("waitFrame still blocked after loop stop")
		}
	}
	t.Fatal("waitFrame never reported the stopped loop")
}

func TestWaitFrameDeliversPendingFrame(t *testing.T) {
	m, loop := testModel(t)

	m.frames <- struct{}{}
	msg := waitFrame(m.frames, loop.Done())()
	if _, ok := msg.(frameMsg); !ok {
		t.Fatalf("waitFrame returned %T, want frameMsg", msg)
	}
}
