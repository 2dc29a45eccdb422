package scenery

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/reefdive/systems"
)

const (
	BubbleCount = 300

	bubbleRise     = 3.0  // Multiplier on each bubble's speed
	bubbleDrift    = 0.8  // Max sideways speed from the noise field
	bubbleDriftF   = 0.05 // Noise frequency per world unit
	bubbleSinkMax  = 5.0  // Respawn depth below the seabed
	bubbleMinSpeed = 0.6
	bubbleSpeedVar = 1.5
)

// Bubble is one rising particle.
type Bubble struct {
	Position mgl64.Vec3
	Radius   float64
	Speed    float64
	Alpha    float64 // Fades from 1 at the seabed to 0 at the surface
}

// Bubbles rise from the seabed to the water surface and respawn below the
// floor. The field is cosmetic and advanced only while the game is playing.
type Bubbles struct {
	items   []Bubble
	rng     *rand.Rand
	noise   opensimplex.Noise
	limit   float64
	surface float64
	t       float64
}

// NewBubbles scatters count bubbles through the arena volume.
func NewBubbles(count int, arena systems.Arena, seed int64) *Bubbles {
	b := &Bubbles{
		items:   make([]Bubble, count),
		rng:     rand.New(rand.NewSource(seed)),
		noise:   opensimplex.New(seed),
		limit:   arena.PlayerLimit(),
		surface: arena.WaterSurface(),
	}
	for i := range b.items {
		it := &b.items[i]
		x := (b.rng.Float64()*2 - 1) * b.limit
		z := (b.rng.Float64()*2 - 1) * b.limit
		floor := systems.TerrainHeight(x, z)
		it.Position = mgl64.Vec3{x, floor + b.rng.Float64()*(b.surface-floor), z}
		it.Radius = (b.rng.Float64()*1.5 + 0.5) * b.rng.Float64() * 0.6
		it.Speed = bubbleMinSpeed + b.rng.Float64()*bubbleSpeedVar
		it.Alpha = b.alpha(it.Position)
	}
	return b
}

// Update advances every bubble by dt seconds.
func (b *Bubbles) Update(dt float64) {
	b.t += dt
	for i := range b.items {
		it := &b.items[i]
		p := it.Position

		p[1] += it.Speed * dt * bubbleRise
		p[0] += b.noise.Eval3(p[0]*bubbleDriftF, p[2]*bubbleDriftF, b.t*0.3) * bubbleDrift * dt
		p[2] += b.noise.Eval3(p[2]*bubbleDriftF, p[0]*bubbleDriftF, b.t*0.3+100) * bubbleDrift * dt
		p[0] = math.Max(-b.limit, math.Min(b.limit, p[0]))
		p[2] = math.Max(-b.limit, math.Min(b.limit, p[2]))

		if p[1] > b.surface {
			p[1] = systems.TerrainHeight(p[0], p[2]) - b.rng.Float64()*bubbleSinkMax
		}
		it.Position = p
		it.Alpha = b.alpha(p)
	}
}

func (b *Bubbles) alpha(p mgl64.Vec3) float64 {
	floor := systems.TerrainHeight(p[0], p[2])
	a := 1 - (p[1]-floor)/(b.surface-floor)
	return math.Max(0, math.Min(1, a))
}

// All returns the live bubbles. The slice is reused by Update.
func (b *Bubbles) All() []Bubble { return b.items }
