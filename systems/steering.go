package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
)

// SteeringParams bundles everything an agent update reads besides its own state.
type SteeringParams struct {
	Arena     Arena
	Steering  config.SteeringConfig
	Hazard    config.HazardConfig
	PlayerPos mgl64.Vec3
	ElapsedMs float64 // Drives the bobbing phase
	Rng       *rand.Rand
}

// SelectMode picks the steering mode for this tick.
// Chasing wins over returning; only hostile agents chase.
func SelectMode(pos mgl64.Vec3, sp components.Species, p *SteeringParams) components.SteeringMode {
	if sp.Hostile() && pos.Sub(p.PlayerPos).Len() <= p.Hazard.AttackRadius {
		return components.ModeChasing
	}
	if p.Arena.OutsideAgentBounds(pos[0], pos[2]) {
		return components.ModeReturning
	}
	return components.ModeWander
}

// UpdateAgent advances one agent by dt.
func UpdateAgent(pose *components.Pose, st *components.Steering, sp components.Species, p *SteeringParams, dt float64) {
	pos := pose.Position
	speed := st.Speed

	st.Mode = SelectMode(pos, sp, p)
	switch st.Mode {
	case components.ModeChasing:
		toPlayer := normalizeOr(p.PlayerPos.Sub(pos), st.TargetDir)
		st.TargetDir = lerpVec(st.TargetDir, toPlayer, p.Hazard.ChaseLerp)
		speed *= p.Hazard.AttackSpeedMult
	case components.ModeReturning:
		center := mgl64.Vec3{0, pos[1], 0}
		toCenter := normalizeOr(center.Sub(pos), st.TargetDir)
		st.TargetDir = lerpVec(st.TargetDir, toCenter, p.Steering.ReturnLerp)
		st.ChangeTimer = p.Steering.ChangeTimerMin + p.Rng.Float64()*(p.Steering.ChangeTimerMax-p.Steering.ChangeTimerMin)
	default:
		st.ChangeTimer = math.Max(0, st.ChangeTimer-dt)
	}
	st.TargetDir = normalizeOr(st.TargetDir, sp.ForwardAxis)

	target := mgl64.QuatBetweenVectors(sp.ForwardAxis, st.TargetDir)
	pose.Orientation = slerpShortest(pose.Orientation, target, math.Min(1, p.Steering.TurnFactor*st.BaseSpeed))

	pos = pos.Add(st.TargetDir.Mul(speed * dt * st.BaseSpeed))
	pos[1] += math.Sin(p.ElapsedMs*p.Steering.BobFrequency+pos[0]+pos[2]) * p.Steering.BobAmplitude * st.BaseSpeed
	pos[1] = p.Arena.ClampAgentY(pos[1])
	pose.Position = pos
}

// slerpShortest interpolates along the shorter arc between two rotations.
func slerpShortest(from, to mgl64.Quat, t float64) mgl64.Quat {
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	q := mgl64.QuatSlerp(from, to, t)
	if l := q.Len(); l > 1e-12 {
		return q.Scale(1 / l)
	}
	return to
}
