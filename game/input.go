package game

import "github.com/pthm-cable/reefdive/systems"

// Input is one frame of player input.
// Movement and Boost are held state; Catch, Reset, Restart and Quit are
// edge-triggered and true only on the frame the key went down.
type Input struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Boost             bool
	MouseDX, MouseDY  float64

	Catch   bool
	Reset   bool // Retry after game over, restart after victory
	Restart bool // Rebuild the world from any state
	Quit    bool
}

// InputSource produces the input for the next tick.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input { return f() }

// intent extracts the held controls the player controller consumes.
func (in Input) intent() systems.PlayerIntent {
	return systems.PlayerIntent{
		Forward:  in.Forward,
		Backward: in.Backward,
		Left:     in.Left,
		Right:    in.Right,
		Up:       in.Up,
		Down:     in.Down,
		Boost:    in.Boost,
		LookDX:   in.MouseDX,
		LookDY:   in.MouseDY,
	}
}
