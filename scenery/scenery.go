// Package scenery lays out the decorative aquarium props: the seabed mesh,
// rocks, seaweed, the central totem and rising bubbles. None of it affects gameplay.
package scenery

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/systems"
)

const (
	SeabedSegments = 64
	seabedJitter   = 0.5  // Max cosmetic offset from the gameplay height field
	seabedFreq     = 0.35 // Jitter noise frequency per world unit

	rockCount      = 50
	rockLift       = 0.2
	ringRockCount  = 8
	ringRockRadius = 6.0
	ringRockSize   = 1.6

	plantGroups    = 10
	plantsPerGroup = 20
	plantSpread    = 50.0 // Cluster width around the group centre
	plantBorder    = 2.0  // Inset from the arena walls
	plantLift      = 0.1
	plantMinHeight = 0.8
	plantMaxHeight = 2.4

	TotemHeight  = 15.0
	TotemRadius  = 1.5
	totemMaxTilt = math.Pi / 36
)

// Seabed is a square grid of vertices following the terrain height field
// with a little noise on top.
type Seabed struct {
	size    float64
	segs    int
	heights []float64
}

// NewSeabed samples the height field on a segs x segs grid.
func NewSeabed(size float64, segs int, noise opensimplex.Noise) *Seabed {
	s := &Seabed{size: size, segs: segs, heights: make([]float64, (segs+1)*(segs+1))}
	for i := 0; i <= segs; i++ {
		for j := 0; j <= segs; j++ {
			x, z := s.gridXZ(i, j)
			n := 2*noise.Eval2(x*seabedFreq, z*seabedFreq) - 1
			n = math.Max(-1, math.Min(1, n))
			s.heights[i*(segs+1)+j] = systems.TerrainHeight(x, z) + seabedJitter*n
		}
	}
	return s
}

func (s *Seabed) gridXZ(i, j int) (x, z float64) {
	step := s.size / float64(s.segs)
	return -s.size/2 + float64(i)*step, -s.size/2 + float64(j)*step
}

// Segments returns the number of quads along each side.
func (s *Seabed) Segments() int { return s.segs }

// Vertex returns grid vertex (i, j), with i along X and j along Z.
func (s *Seabed) Vertex(i, j int) mgl64.Vec3 {
	x, z := s.gridXZ(i, j)
	return mgl64.Vec3{x, s.heights[i*(s.segs+1)+j], z}
}

// Rock is a boulder resting on the seabed.
type Rock struct {
	Position mgl64.Vec3
	Radius   float64
	Ring     bool // Part of the ring around the totem
}

// Plant is a stalk of seaweed rooted on the seabed.
type Plant struct {
	Position mgl64.Vec3 // Root
	Height   float64
}

// Totem is the central column the goal point hovers above.
type Totem struct {
	Base         mgl64.Vec3
	Height       float64
	Radius       float64
	TiltX, TiltZ float64 // Radians
}

// Top returns the centre of the column's top face.
func (t Totem) Top() mgl64.Vec3 {
	return t.Base.Add(mgl64.Vec3{0, t.Height, 0})
}

// Layout is the full set of static props.
type Layout struct {
	Seabed *Seabed
	Rocks  []Rock
	Plants []Plant
	Totem  Totem
}

// NewLayout places every static prop for an arena. The same seed gives the
// same layout.
func NewLayout(cfg *config.Config, seed int64) *Layout {
	rng := rand.New(rand.NewSource(seed))
	size := cfg.Arena.Size

	l := &Layout{
		Seabed: NewSeabed(size, SeabedSegments, opensimplex.NewNormalized(seed)),
	}

	for i := 0; i < rockCount; i++ {
		x := (rng.Float64() - 0.5) * size
		z := (rng.Float64() - 0.5) * size
		r := (0.4 + rng.Float64()*2) * (0.6 + rng.Float64()*1.8)
		l.Rocks = append(l.Rocks, Rock{
			Position: mgl64.Vec3{x, systems.TerrainHeight(x, z) + rockLift, z},
			Radius:   r,
		})
	}

	l.Totem = Totem{
		Base:   mgl64.Vec3{0, systems.TerrainHeight(0, 0) + cfg.Objective.TotemBaseOffset, 0},
		Height: TotemHeight,
		Radius: TotemRadius,
		TiltX:  (rng.Float64()*2 - 1) * totemMaxTilt,
		TiltZ:  (rng.Float64()*2 - 1) * totemMaxTilt,
	}

	for i := 0; i < ringRockCount; i++ {
		a := float64(i) / ringRockCount * 2 * math.Pi
		x := l.Totem.Base[0] + math.Cos(a)*ringRockRadius
		z := l.Totem.Base[2] + math.Sin(a)*ringRockRadius
		l.Rocks = append(l.Rocks, Rock{
			Position: mgl64.Vec3{x, systems.TerrainHeight(x, z) + rockLift, z},
			Radius:   ringRockSize,
			Ring:     true,
		})
	}

	l.Plants = plantGroupsFor(rng, size)
	return l
}

// plantGroupsFor scatters seaweed in clusters, keeping every root inside
// the walls.
func plantGroupsFor(rng *rand.Rand, size float64) []Plant {
	limit := size/2 - plantBorder
	plants := make([]Plant, 0, plantGroups*plantsPerGroup)
	for g := 0; g < plantGroups; g++ {
		cx := (rng.Float64() - 0.5) * (size - 2*plantBorder)
		cz := (rng.Float64() - 0.5) * (size - 2*plantBorder)
		for i := 0; i < plantsPerGroup; i++ {
			x := clamp(cx+(rng.Float64()-0.5)*plantSpread, -limit, limit)
			z := clamp(cz+(rng.Float64()-0.5)*plantSpread, -limit, limit)
			plants = append(plants, Plant{
				Position: mgl64.Vec3{x, systems.TerrainHeight(x, z) + plantLift, z},
				Height:   plantMinHeight + rng.Float64()*(plantMaxHeight-plantMinHeight),
			})
		}
	}
	return plants
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
