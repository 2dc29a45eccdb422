package systems

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
)

// AgentSpawn is the component set of a freshly spawned agent.
type AgentSpawn struct {
	Pose     components.Pose
	Steering components.Steering
	Species  components.Species
	Body     components.Body
}

// SpeciesFromConfig converts a configured species into its component.
func SpeciesFromConfig(sp *config.SpeciesConfig, index int) components.Species {
	role := components.RoleBenign
	if sp.Hostile {
		role = components.RoleHostile
	}
	axis := mgl64.Vec3{sp.ForwardAxis[0], sp.ForwardAxis[1], sp.ForwardAxis[2]}
	return components.Species{
		Name:        sp.Name,
		Index:       index,
		Role:        role,
		ForwardAxis: normalizeOr(axis, mgl64.Vec3{0, 0, 1}),
	}
}

// PlanSpawn rolls the randomized placement, scale and speed of one agent.
// Agents start unrotated, facing along their species forward axis.
func PlanSpawn(sp *config.SpeciesConfig, index int, cfg *config.Config, rng *rand.Rand) AgentSpawn {
	st := cfg.Steering
	r := st.SpawnRadius
	pos := mgl64.Vec3{
		(rng.Float64()*2 - 1) * r,
		cfg.Arena.AgentMinY + rng.Float64()*(cfg.Arena.AgentMaxY-cfg.Arena.AgentMinY),
		(rng.Float64()*2 - 1) * r,
	}
	scale := sp.ScaleMin + rng.Float64()*(sp.ScaleMax-sp.ScaleMin)
	species := SpeciesFromConfig(sp, index)

	return AgentSpawn{
		Pose: components.Pose{Position: pos, Orientation: mgl64.QuatIdent()},
		Steering: components.Steering{
			TargetDir:   species.ForwardAxis,
			BaseSpeed:   sp.BaseSpeed,
			Speed:       sp.BaseSpeed * (st.SpeedJitterMin + rng.Float64()*(st.SpeedJitterMax-st.SpeedJitterMin)),
			ChangeTimer: st.ChangeTimerMin + rng.Float64()*(st.ChangeTimerMax-st.ChangeTimerMin),
			Mode:        components.ModeWander,
		},
		Species: species,
		Body:    components.BodyFromSpecies(sp, scale),
	}
}
