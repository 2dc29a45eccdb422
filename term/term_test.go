package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeysHoldExpires(t *testing.T) {
	k := NewKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	k.Handle(key('w'), t0)

	if in := k.Poll(t0.Add(50 * time.Millisecond)); !in.Forward {
		t.Error("forward should be held within the hold window")
	}
	if in := k.Poll(t0.Add(150 * time.Millisecond)); in.Forward {
		t.Error("forward should release after the hold window")
	}
}

func TestKeysEdgeTriggered(t *testing.T) {
	k := NewKeys(0)
	now := time.Unix(1000, 0)
	k.Handle(key('f'), now)
	k.Handle(key('r'), now)
	k.Handle(key('n'), now)

	in := k.Poll(now)
	if !in.Catch || !in.Reset || !in.Restart {
		t.Fatalf("expected catch, reset and restart, got %+v", in)
	}
	in = k.Poll(now)
	if in.Catch || in.Reset || in.Restart {
		t.Errorf("edge keys should clear after one poll, got %+v", in)
	}
}

func TestKeysShiftBoosts(t *testing.T) {
	k := NewKeys(0)
	now := time.Unix(1000, 0)
	k.Handle(key('W'), now)

	in := k.Poll(now)
	if !in.Forward || !in.Boost {
		t.Errorf("shifted W should move forward with boost, got %+v", in)
	}
}

func TestKeysArrowsLook(t *testing.T) {
	k := NewKeys(0)
	now := time.Unix(1000, 0)
	k.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), now)
	k.Handle(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), now)

	in := k.Poll(now)
	if in.MouseDX != -2*lookStep || in.MouseDY != lookStep {
		t.Errorf("look delta = (%v, %v)", in.MouseDX, in.MouseDY)
	}
	if in = k.Poll(now); in.MouseDX != 0 || in.MouseDY != 0 {
		t.Error("look delta should reset after poll")
	}
}

func TestKeysEscapeQuits(t *testing.T) {
	k := NewKeys(0)
	if k.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()) {
		t.Error("escape should stop the loop")
	}
	if !k.Poll(time.Now()).Quit {
		t.Error("quit should be reported")
	}
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func findRune(screen tcell.SimulationScreen, want rune) (int, int, bool) {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == want {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func TestRunnerStepDrawsPlayer(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	g, err := game.NewGame(cfg, game.Options{Seed: 3})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(g.Unload)

	screen := newScreen(t)
	r := NewRunner(screen, g, 0)
	r.Step(time.Now())

	if g.Tick() != 1 {
		t.Errorf("tick = %d, want 1", g.Tick())
	}
	if _, _, ok := findRune(screen, '@'); !ok {
		t.Error("player glyph not drawn")
	}
}

func TestViewShowsPrompt(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	screen := newScreen(t)
	v := NewView(screen, cfg)
	v.Draw(game.Snapshot{
		Prompt:   game.PromptRetry,
		Required: 3,
		Goal:     mgl64.Vec3{10, 0, 10},
	})

	if _, _, ok := findRune(screen, 'G'); !ok {
		t.Error("prompt text not drawn")
	}
	if _, _, ok := findRune(screen, '*'); !ok {
		t.Error("goal glyph not drawn")
	}
}

func TestTickIntervalMatchesStep(t *testing.T) {
	dt := game.DT
	want := time.Duration(float64(time.Second) * dt)
	if diff := tickInterval - want; diff < -time.Microsecond || diff > time.Microsecond {
		t.Errorf("tick interval %v, want about %v", tickInterval, want)
	}
}

func TestPollEventsStopsWhenReaderLeaves(t *testing.T) {
	screen := newScreen(t)
	for i := 0; i < 5; i++ {
		screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	}

	out := make(chan tcell.Event, 1)
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pollEvents(screen, out, stop)
		close(done)
	}()

	// Take one event, then stop reading with the rest still queued.
	select {
	case <-out:
	case <-time.After(time.Second):
		t.Fatal("no event forwarded")
	}
	close(stop)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller still blocked after stop")
	}
}
