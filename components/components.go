// Package components defines ECS components for the aquarium simulation.
package components

import "github.com/go-gl/mathgl/mgl64"

// Pose is an agent's world position and orientation.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// SteeringMode is the agent's current steering behaviour.
type SteeringMode uint8

const (
	ModeWander    SteeringMode = iota // Keep heading, count down the change timer
	ModeReturning                     // Turn back towards the arena centre
	ModeChasing                       // Hostile only: turn towards the player
)

func (m SteeringMode) String() string {
	switch m {
	case ModeWander:
		return "wander"
	case ModeReturning:
		return "returning"
	case ModeChasing:
		return "chasing"
	}
	return "unknown"
}

// Steering holds an agent's movement intent.
type Steering struct {
	TargetDir   mgl64.Vec3 // Unit length after every update
	BaseSpeed   float64    // Species base speed
	Speed       float64    // Instance speed (base speed with spawn jitter)
	ChangeTimer float64    // Seconds until the next heading change window
	Mode        SteeringMode
}

// Role separates collectable fish from hazards.
type Role uint8

const (
	RoleBenign Role = iota
	RoleHostile
)

func (r Role) String() string {
	if r == RoleHostile {
		return "hostile"
	}
	return "benign"
}

// Species identifies what an agent is.
type Species struct {
	Name        string
	Index       int        // Index into the configured species list
	Role        Role
	ForwardAxis mgl64.Vec3 // Model-space axis the agent swims along
}

// Hostile reports whether the agent damages the player.
func (s Species) Hostile() bool {
	return s.Role == RoleHostile
}
