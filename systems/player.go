package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
)

// PlayerIntent is the held input the player controller consumes each tick.
type PlayerIntent struct {
	Forward, Backward bool
	Left, Right       bool
	Up, Down          bool
	Boost             bool
	LookDX, LookDY    float64 // Mouse delta in pixels since the last tick
}

// Moving reports whether any movement key is held.
func (in PlayerIntent) Moving() bool {
	return in.Forward || in.Backward || in.Left || in.Right || in.Up || in.Down
}

// PlayerParams holds what the controller reads besides the player itself.
type PlayerParams struct {
	Arena     Arena
	Player    config.PlayerConfig
	Meters    config.MetersConfig
	Obstacles []mgl64.Vec3 // Agent positions the diver cannot pass through
}

// ApplyLook turns the diver by a mouse delta. Pitch stops just short of straight up/down.
func ApplyLook(p *components.PlayerState, dx, dy float64, pc config.PlayerConfig) {
	p.Yaw -= dx * pc.MouseSensitivity
	p.Pitch -= dy * pc.MouseSensitivity
	limit := math.Pi/2 - pc.PitchEpsilon
	p.Pitch = clampFloat(p.Pitch, -limit, limit)
}

// MoveDirection composes the unnormalized movement vector from held keys.
// Horizontal movement follows yaw only, so looking down does not slow travel.
func MoveDirection(yaw float64, in PlayerIntent) mgl64.Vec3 {
	backward := mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
	left := mgl64.Vec3{-math.Cos(yaw), 0, math.Sin(yaw)}

	var move mgl64.Vec3
	if in.Forward {
		move = move.Sub(backward)
	}
	if in.Backward {
		move = move.Add(backward)
	}
	if in.Left {
		move = move.Add(left)
	}
	if in.Right {
		move = move.Sub(left)
	}
	if in.Up {
		move[1]++
	}
	if in.Down {
		move[1]--
	}
	return move
}

// FrictionFactor returns the velocity multiplier for one idle tick.
func FrictionFactor(pc config.PlayerConfig, dt float64) float64 {
	if pc.FrictionMode == config.FrictionTimeNormalized {
		return math.Pow(pc.Friction, dt*pc.FrictionRefHz)
	}
	return pc.Friction
}

// UpdatePlayer runs the player phase of a tick and reports whether boost ran dry.
func UpdatePlayer(p *components.PlayerState, in PlayerIntent, params *PlayerParams, dt float64) (boostDepleted bool) {
	// Agents moved last tick; never start a tick inside one
	p.Position = PushOut(p.Position, params.Obstacles, params.Player.CollisionRadius)

	ApplyLook(p, in.LookDX, in.LookDY, params.Player)

	boostDepleted = UpdateBoost(p, in.Boost, params.Meters, dt)

	move := MoveDirection(p.Yaw, in)
	if move.Len() > 0 {
		speed := params.Player.Speed
		if p.BoostActive {
			speed *= params.Player.BoostMultiplier
		}
		p.Velocity = move.Normalize().Mul(speed)
	} else {
		p.Velocity = p.Velocity.Mul(FrictionFactor(params.Player, dt))
	}

	p.Position = ClampPlayer(p.Position.Add(p.Velocity.Mul(dt)), params.Arena)
	p.Position = PushOut(p.Position, params.Obstacles, params.Player.CollisionRadius)
	return boostDepleted
}

// ClampPlayer applies the floor, wall and ceiling limits in that order.
func ClampPlayer(pos mgl64.Vec3, a Arena) mgl64.Vec3 {
	if floor := a.FloorAt(pos[0], pos[2]); pos[1] < floor {
		pos[1] = floor
	}
	lim := a.PlayerLimit()
	pos[0] = clampFloat(pos[0], -lim, lim)
	pos[2] = clampFloat(pos[2], -lim, lim)
	pos[1] = math.Min(pos[1], a.Ceiling())
	return pos
}

// PushOut moves pos out of every obstacle sphere of the given radius,
// placing it exactly on the sphere along obstacle->pos.
// Obstacles are resolved in order; a later push may re-enter an earlier sphere.
func PushOut(pos mgl64.Vec3, obstacles []mgl64.Vec3, radius float64) mgl64.Vec3 {
	for _, o := range obstacles {
		away := pos.Sub(o)
		if away.Len() < radius {
			pos = o.Add(normalizeOr(away, mgl64.Vec3{0, 1, 0}).Mul(radius))
		}
	}
	return pos
}
