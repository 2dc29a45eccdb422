package systems

import (
	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
)

// HazardResolver applies shark bites to the player, at most one per cooldown.
type HazardResolver struct {
	cfg   config.HazardConfig
	box   float64
	timer float64 // Seconds until the next bite may land
}

// NewHazardResolver returns a resolver that can bite on its first tick.
func NewHazardResolver(cfg config.HazardConfig, hitbox float64) *HazardResolver {
	return &HazardResolver{cfg: cfg, box: hitbox}
}

// Hostile is the part of a hostile agent the resolver needs.
type Hostile struct {
	Pose components.Pose
	Body components.Body
}

// AgentBounds returns the world AABB of an agent's oriented body box.
func AgentBounds(pose components.Pose, body components.Body) AABB {
	corners := body.Corners(pose)
	return BoundPoints(corners[:])
}

// Update advances the cooldown and applies damage for the first overlapping
// hostile. It returns the index of the hostile that bit, or -1, and the
// damage dealt this tick.
func (h *HazardResolver) Update(p *components.PlayerState, hostiles []Hostile, dt float64) (int, float64) {
	h.timer -= dt
	if h.timer > 0 {
		return -1, 0
	}
	h.timer = 0

	player := BoxAround(p.Position, h.box)
	for i, hs := range hostiles {
		if player.Intersects(AgentBounds(hs.Pose, hs.Body)) {
			before := p.Health
			p.Health = Drain(p.Health, h.cfg.Damage, 1)
			h.timer = h.cfg.Cooldown
			return i, before - p.Health
		}
	}
	return -1, 0
}

// Cooldown returns the seconds left before the next bite can land.
func (h *HazardResolver) Cooldown() float64 {
	return h.timer
}

// Reset clears the cooldown.
func (h *HazardResolver) Reset() {
	h.timer = 0
}
