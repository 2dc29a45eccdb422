package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Autopilot is an InputSource that plays the game for soak runs.
// It surfaces when low on oxygen, hunts the nearest benign agent until it has
// enough species, then swims to the goal. It retries after a game over and
// restarts after a victory.
type Autopilot struct {
	game        *Game
	sensitivity float64
	surfacing   bool
	catchArmed  bool
}

// NewAutopilot returns an autopilot driving g.
func NewAutopilot(g *Game) *Autopilot {
	return &Autopilot{game: g, sensitivity: g.cfg.Player.MouseSensitivity}
}

// Poll implements InputSource.
func (a *Autopilot) Poll() Input {
	s := a.game.Snapshot()
	switch s.State {
	case StateGameOver, StateVictory:
		return Input{Reset: true}
	}

	if s.Oxygen < 0.3 {
		a.surfacing = true
	} else if s.Oxygen > 0.95 {
		a.surfacing = false
	}

	var target mgl64.Vec3
	catching := false
	switch {
	case a.surfacing:
		target = s.PlayerPos
		target[1] = a.game.arena.WaterSurface() + 2
	case len(s.Collected) >= s.Required:
		target = s.Goal
	default:
		var ok bool
		target, ok = nearestBenign(s)
		if !ok {
			target = s.Goal
		}
		catching = ok
	}

	in := a.steer(s, target)

	// Catch is edge-triggered; alternate so a held press still fires
	if catching && target.Sub(s.PlayerPos).Len() <= a.game.cfg.Objective.PickupRadius {
		a.catchArmed = !a.catchArmed
		in.Catch = a.catchArmed
	}
	return in
}

// steer turns toward target and presses the keys that close the distance.
func (a *Autopilot) steer(s Snapshot, target mgl64.Vec3) Input {
	var in Input
	d := target.Sub(s.PlayerPos)

	horiz := math.Hypot(d[0], d[2])
	if horiz > 0.5 {
		// Forward at yaw is (-sin yaw, 0, -cos yaw)
		want := math.Atan2(-d[0], -d[2])
		delta := wrapAngle(s.PlayerYaw - want)
		in.MouseDX = clampLook(delta / a.sensitivity)
		in.Forward = math.Abs(delta) < math.Pi/3
	}
	if d[1] > 1 {
		in.Up = true
	} else if d[1] < -1 {
		in.Down = true
	}
	in.MouseDY = clampLook(s.PlayerPitch / a.sensitivity)
	in.Boost = horiz > 30
	return in
}

func nearestBenign(s Snapshot) (mgl64.Vec3, bool) {
	best := math.Inf(1)
	var pos mgl64.Vec3
	for _, ag := range s.Agents {
		if ag.Hostile {
			continue
		}
		if d := ag.Position.Sub(s.PlayerPos).Len(); d < best {
			best, pos = d, ag.Position
		}
	}
	return pos, !math.IsInf(best, 1)
}

func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

// clampLook limits a synthetic mouse delta to what a hand could do in a frame.
func clampLook(v float64) float64 {
	const maxDelta = 40
	return math.Max(-maxDelta, math.Min(maxDelta, v))
}
