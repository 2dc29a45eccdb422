package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/config"
)

// CollectedSet tracks the distinct species caught, in first-catch order.
type CollectedSet struct {
	order []string
	seen  map[string]struct{}
	total int
}

// NewCollectedSet returns an empty set.
func NewCollectedSet() *CollectedSet {
	return &CollectedSet{seen: make(map[string]struct{})}
}

// Add records a catch and reports whether the species is new.
func (c *CollectedSet) Add(species string) bool {
	c.total++
	if _, ok := c.seen[species]; ok {
		return false
	}
	c.seen[species] = struct{}{}
	c.order = append(c.order, species)
	return true
}

// Has reports whether species has been caught.
func (c *CollectedSet) Has(species string) bool {
	_, ok := c.seen[species]
	return ok
}

// Distinct returns the number of distinct species caught.
func (c *CollectedSet) Distinct() int { return len(c.order) }

// Total returns the number of agents caught.
func (c *CollectedSet) Total() int { return c.total }

// Species returns the caught species in first-catch order.
func (c *CollectedSet) Species() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Clear empties the set.
func (c *CollectedSet) Clear() {
	c.order = c.order[:0]
	c.total = 0
	clear(c.seen)
}

// CatchCandidate is a benign agent that may be caught.
type CatchCandidate struct {
	Position mgl64.Vec3
	Species  string
}

// FindCatch returns the index of the agent to catch, scanning from the end
// of the roster, or -1 when none is within radius.
func FindCatch(player mgl64.Vec3, roster []CatchCandidate, radius float64) int {
	for i := len(roster) - 1; i >= 0; i-- {
		if player.Sub(roster[i].Position).Len() <= radius {
			return i
		}
	}
	return -1
}

// GoalPoint returns the totem goal point above the arena centre.
func GoalPoint(obj config.ObjectiveConfig) mgl64.Vec3 {
	return mgl64.Vec3{0, TerrainHeight(0, 0) + obj.TotemBaseOffset + obj.GoalHeight, 0}
}

// ObjectiveMet reports whether the player is at the goal with enough species.
func ObjectiveMet(player, goal mgl64.Vec3, set *CollectedSet, obj config.ObjectiveConfig) bool {
	return player.Sub(goal).Len() < obj.ReachDistance && set.Distinct() >= obj.RequiredSpecies
}
