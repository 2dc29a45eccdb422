// Package term plays the game in a terminal with a top-down tcell view.
package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/reefdive/game"
)

// DefaultHold is how long a key stays down after its last press event.
// Terminals report presses and auto-repeat but never releases.
const DefaultHold = 150 * time.Millisecond

// lookStep is the mouse-equivalent delta, in pixels, for one arrow key tick.
const lookStep = 12.0

// Keys turns tcell key events into game input.
type Keys struct {
	hold time.Duration
	last map[rune]time.Time

	catch, reset, restart, quit bool
	lookDX, lookDY             float64
}

// NewKeys returns a key tracker holding each key for hold.
func NewKeys(hold time.Duration) *Keys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keys{hold: hold, last: make(map[rune]time.Time)}
}

// Handle records one event. It returns false if the event asks to quit.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.quit = true
		return false
	case tcell.KeyLeft:
		k.lookDX -= lookStep
	case tcell.KeyRight:
		k.lookDX += lookStep
	case tcell.KeyUp:
		k.lookDY -= lookStep
	case tcell.KeyDown:
		k.lookDY += lookStep
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'f', 'F':
			k.catch = true
		case 'r', 'R':
			k.reset = true
		case 'n', 'N':
			k.restart = true
		case 'W', 'A', 'S', 'D', 'E', 'Q':
			// Shifted movement boosts.
			k.last[r+('a'-'A')] = now
			k.last[' '] = now
		default:
			k.last[r] = now
		}
	}
	return true
}

func (k *Keys) held(r rune, now time.Time) bool {
	t, ok := k.last[r]
	return ok && now.Sub(t) < k.hold
}

// Poll returns the input for the tick at now and clears edge-triggered keys.
func (k *Keys) Poll(now time.Time) game.Input {
	in := game.Input{
		Forward:  k.held('w', now),
		Backward: k.held('s', now),
		Left:     k.held('a', now),
		Right:    k.held('d', now),
		Up:       k.held('e', now),
		Down:     k.held('q', now),
		Boost:    k.held(' ', now),
		MouseDX:  k.lookDX,
		MouseDY:  k.lookDY,
		Catch:    k.catch,
		Reset:    k.reset,
		Restart:  k.restart,
		Quit:     k.quit,
	}
	k.catch, k.reset, k.restart = false, false, false
	k.lookDX, k.lookDY = 0, 0
	return in
}
