package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/reefdive/game"
)

// Controls is the legend shown in the corner of the screen.
const Controls = "WASD move | E/Q up/down | Shift boost | F catch | R retry | N new tank | Tab release mouse | P perf"

// Input polls raylib's keyboard and mouse. The mouse steers the view only
// while the cursor is captured; clicking the window captures it.
type Input struct {
	captured     bool
	allowCapture bool
	pendingReset bool
	showPerf     bool
}

// NewInput returns an input source with capture allowed.
func NewInput() *Input {
	return &Input{allowCapture: true}
}

// Poll implements game.InputSource.
func (in *Input) Poll() game.Input {
	if rl.IsKeyPressed(rl.KeyTab) {
		in.Release()
	}
	if in.allowCapture && !in.captured && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		rl.DisableCursor()
		in.captured = true
	}
	if rl.IsKeyPressed(rl.KeyP) {
		in.showPerf = !in.showPerf
	}

	out := game.Input{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		Up:       rl.IsKeyDown(rl.KeyE),
		Down:     rl.IsKeyDown(rl.KeyQ),
		Boost:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		Catch:    rl.IsKeyPressed(rl.KeyF),
		Reset:    rl.IsKeyPressed(rl.KeyR) || in.pendingReset,
		Restart:  rl.IsKeyPressed(rl.KeyN),
		Quit:     rl.WindowShouldClose(),
	}
	in.pendingReset = false

	if in.captured {
		d := rl.GetMouseDelta()
		out.MouseDX = float64(d.X)
		out.MouseDY = float64(d.Y)
	}
	return out
}

// PressReset queues a reset for the next poll, as if R had been pressed.
func (in *Input) PressReset() {
	in.pendingReset = true
}

// AllowCapture enables or disables mouse capture. Disabling it releases a
// captured cursor so overlay buttons can be clicked.
func (in *Input) AllowCapture(allow bool) {
	in.allowCapture = allow
	if !allow {
		in.Release()
	}
}

// Release frees the cursor.
func (in *Input) Release() {
	if in.captured {
		rl.EnableCursor()
		in.captured = false
	}
}

// ShowPerf reports whether the perf panel is toggled on.
func (in *Input) ShowPerf() bool { return in.showPerf }
