package term

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/reefdive/game"
	"github.com/pthm-cable/reefdive/telemetry"
)

// tickInterval is the wall-clock period of one game tick.
const tickInterval = time.Second / game.TickRate

// Runner drives a game from terminal input at a fixed tick rate.
type Runner struct {
	screen tcell.Screen
	game   *game.Game
	keys   *Keys
	view   *View

	// OnEvents receives each tick's drained events, e.g. for sound.
	OnEvents func([]telemetry.Event)
}

// NewRunner wires a game to an initialized screen.
func NewRunner(screen tcell.Screen, g *game.Game, hold time.Duration) *Runner {
	return &Runner{
		screen: screen,
		game:   g,
		keys:   NewKeys(hold),
		view:   NewView(screen, g.Config()),
	}
}

// Run loops until the player quits or ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	stop := make(chan struct{})
	defer close(stop)
	go pollEvents(r.screen, events, stop)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !r.keys.Handle(ev, time.Now()) {
					slog.Info("quit", "tick", r.game.Tick())
					return nil
				}
			case *tcell.EventResize:
				r.screen.Sync()
				r.view.Resize()
			}

		case now := <-ticker.C:
			r.Step(now)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or stop
// is closed. It closes out when the screen stops producing events.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-stop:
			return
		}
	}
}

// Step advances one tick with the keys held at now and redraws.
func (r *Runner) Step(now time.Time) {
	r.game.Update(r.keys.Poll(now), game.DT)
	if evs := r.game.DrainEvents(); len(evs) > 0 && r.OnEvents != nil {
		r.OnEvents(evs)
	}
	r.game.RecordFrame()
	r.view.Draw(r.game.Snapshot())
}
