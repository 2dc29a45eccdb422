package systems

import (
	"math"

	"github.com/pthm-cable/reefdive/config"
)

// TerrainHeight returns the seabed height at (x, z).
// It is the only height source for gameplay: spawn props, the goal point
// and the player floor clamp all read it.
func TerrainHeight(x, z float64) float64 {
	return math.Sin(x*0.1)*2 + math.Cos(z*0.15)*1.5
}

// Arena describes the aquarium volume.
type Arena struct {
	halfSize     float64
	agentLimit   float64
	playerLimit  float64
	ceiling      float64
	waterSurface float64
	floorClear   float64
	agentMinY    float64
	agentMaxY    float64
}

// NewArena builds the arena from configuration.
func NewArena(cfg *config.Config) Arena {
	return Arena{
		halfSize:     cfg.Derived.HalfSize,
		agentLimit:   cfg.Derived.AgentLimit,
		playerLimit:  cfg.Derived.PlayerLimit,
		ceiling:      cfg.Derived.Ceiling,
		waterSurface: cfg.Arena.WaterSurface,
		floorClear:   cfg.Arena.FloorClearance,
		agentMinY:    cfg.Arena.AgentMinY,
		agentMaxY:    cfg.Arena.AgentMaxY,
	}
}

func (a Arena) HalfSize() float64     { return a.halfSize }
func (a Arena) AgentLimit() float64   { return a.agentLimit }
func (a Arena) PlayerLimit() float64  { return a.playerLimit }
func (a Arena) Ceiling() float64      { return a.ceiling }
func (a Arena) WaterSurface() float64 { return a.waterSurface }

// Submerged reports whether height y is under the water surface.
func (a Arena) Submerged(y float64) bool {
	return y < a.waterSurface
}

// FloorAt returns the lowest height the player may occupy at (x, z).
func (a Arena) FloorAt(x, z float64) float64 {
	return TerrainHeight(x, z) + a.floorClear
}

// ClampAgentY keeps agents inside their swimming band.
func (a Arena) ClampAgentY(y float64) float64 {
	return clampFloat(y, a.agentMinY, a.agentMaxY)
}

// OutsideAgentBounds reports whether (x, z) is past the agent turn-back line.
func (a Arena) OutsideAgentBounds(x, z float64) bool {
	return math.Abs(x) > a.agentLimit || math.Abs(z) > a.agentLimit
}
