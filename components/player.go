package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/config"
)

// PlayerState is the diver. There is exactly one per world.
type PlayerState struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Yaw      float64 // Radians about +Y
	Pitch    float64 // Radians about the local X axis

	Health float64
	Oxygen float64
	Boost  float64

	BoostActive bool // Boost is being spent this tick
	CanBoost    bool // False after depletion until the trigger is released
}

// NewPlayerState returns a diver at the configured spawn point with full meters.
func NewPlayerState(cfg *config.Config) PlayerState {
	return PlayerState{
		Position: SpawnPoint(cfg),
		Health:   cfg.Meters.MaxHealth,
		Oxygen:   cfg.Meters.MaxOxygen,
		Boost:    cfg.Meters.MaxBoost,
		CanBoost: true,
	}
}

// SpawnPoint returns the configured player spawn point.
func SpawnPoint(cfg *config.Config) mgl64.Vec3 {
	s := cfg.Arena.Spawn
	return mgl64.Vec3{s[0], s[1], s[2]}
}

// Orientation is the camera rotation: yaw about +Y, then pitch about local X.
func (p *PlayerState) Orientation() mgl64.Quat {
	return mgl64.AnglesToQuat(p.Yaw, p.Pitch, 0, mgl64.YXZ)
}

// Forward returns the unit look direction (-Z rotated by the orientation).
func (p *PlayerState) Forward() mgl64.Vec3 {
	return p.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
}
