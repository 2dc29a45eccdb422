package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
)

// AgentView is the read-only view of one agent for drawing.
type AgentView struct {
	Species     string
	SpeciesIdx  int
	Hostile     bool
	Mode        components.SteeringMode
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Heading     mgl64.Vec3
	Scale       float64
	HalfExtents mgl64.Vec3
}

// Snapshot is an immutable copy of everything a HUD or renderer reads.
// Take it after Update returns.
type Snapshot struct {
	Tick  int32
	State State

	// Meter ratios in [0,1]
	Health float64
	Oxygen float64
	Boost  float64

	BoostActive bool
	CanBoost    bool
	Submerged   bool

	Collected   []string // Distinct species in first-catch order
	TotalCaught int
	Required    int

	Prompt     Prompt
	Atmosphere Atmosphere

	PlayerPos   mgl64.Vec3
	PlayerYaw   float64
	PlayerPitch float64

	Goal   mgl64.Vec3
	Agents []AgentView
}

// Snapshot returns the post-tick state for collaborators.
func (g *Game) Snapshot() Snapshot {
	m := g.cfg.Meters
	s := Snapshot{
		Tick:        g.tick,
		State:       g.state,
		Health:      g.player.Health / m.MaxHealth,
		Oxygen:      g.player.Oxygen / m.MaxOxygen,
		Boost:       g.player.Boost / m.MaxBoost,
		BoostActive: g.player.BoostActive,
		CanBoost:    g.player.CanBoost,
		Submerged:   g.submerged,
		Collected:   g.collected.Species(),
		TotalCaught: g.collected.Total(),
		Required:    g.cfg.Objective.RequiredSpecies,
		Prompt:      g.prompt,
		Atmosphere:  g.atmosphere,
		PlayerPos:   g.player.Position,
		PlayerYaw:   g.player.Yaw,
		PlayerPitch: g.player.Pitch,
		Goal:        g.goal,
		Agents:      make([]AgentView, 0, len(g.benign)+len(g.hostile)),
	}

	query := g.agentFilter.Query()
	for query.Next() {
		pose, st, sp, body := query.Get()
		s.Agents = append(s.Agents, AgentView{
			Species:     sp.Name,
			SpeciesIdx:  sp.Index,
			Hostile:     sp.Hostile(),
			Mode:        st.Mode,
			Position:    pose.Position,
			Orientation: pose.Orientation,
			Heading:     st.TargetDir,
			Scale:       body.Scale,
			HalfExtents: body.HalfExtents,
		})
	}
	return s
}

// AgentCount returns the number of live agents.
func (g *Game) AgentCount() (benign, hostile int) {
	return len(g.benign), len(g.hostile)
}
