package scenery

import (
	"math"
	"testing"

	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/systems"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func TestSeabedFollowsHeightField(t *testing.T) {
	s := NewSeabed(200, 16, opensimplex.NewNormalized(7))

	if s.Segments() != 16 {
		t.Fatalf("segments = %d, want 16", s.Segments())
	}
	for i := 0; i <= 16; i++ {
		for j := 0; j <= 16; j++ {
			v := s.Vertex(i, j)
			if d := math.Abs(v[1] - systems.TerrainHeight(v[0], v[2])); d > seabedJitter+1e-9 {
				t.Fatalf("vertex (%d,%d) off the height field by %v", i, j, d)
			}
		}
	}

	first, last := s.Vertex(0, 0), s.Vertex(16, 16)
	if first[0] != -100 || first[2] != -100 || last[0] != 100 || last[2] != 100 {
		t.Errorf("grid spans %v to %v, want +-100", first, last)
	}
}

func TestLayoutDeterministic(t *testing.T) {
	cfg := testConfig(t)
	a, b := NewLayout(cfg, 3), NewLayout(cfg, 3)

	if len(a.Rocks) != len(b.Rocks) {
		t.Fatalf("rock counts differ: %d vs %d", len(a.Rocks), len(b.Rocks))
	}
	for i := range a.Rocks {
		if a.Rocks[i] != b.Rocks[i] {
			t.Fatalf("rock %d differs: %+v vs %+v", i, a.Rocks[i], b.Rocks[i])
		}
	}
	if len(a.Plants) != len(b.Plants) {
		t.Fatalf("plant counts differ: %d vs %d", len(a.Plants), len(b.Plants))
	}
	for i := range a.Plants {
		if a.Plants[i] != b.Plants[i] {
			t.Fatalf("plant %d differs: %+v vs %+v", i, a.Plants[i], b.Plants[i])
		}
	}
	if a.Totem != b.Totem {
		t.Errorf("totems differ: %+v vs %+v", a.Totem, b.Totem)
	}
}

func TestLayoutRocks(t *testing.T) {
	cfg := testConfig(t)
	l := NewLayout(cfg, 1)
	half := cfg.Arena.Size / 2

	ring := 0
	for _, r := range l.Rocks {
		p := r.Position
		if math.Abs(p[0]) > half || math.Abs(p[2]) > half {
			t.Errorf("rock outside the arena at %v", p)
		}
		if d := p[1] - systems.TerrainHeight(p[0], p[2]); math.Abs(d-rockLift) > 1e-9 {
			t.Errorf("rock at %v not resting on the seabed", p)
		}
		if !r.Ring {
			continue
		}
		ring++
		if d := math.Hypot(p[0]-l.Totem.Base[0], p[2]-l.Totem.Base[2]); math.Abs(d-ringRockRadius) > 1e-9 {
			t.Errorf("ring rock %v at distance %v from the totem", p, d)
		}
	}
	if ring != ringRockCount {
		t.Errorf("ring rocks = %d, want %d", ring, ringRockCount)
	}
	if len(l.Rocks) != rockCount+ringRockCount {
		t.Errorf("rocks = %d, want %d", len(l.Rocks), rockCount+ringRockCount)
	}
}

func TestLayoutPlants(t *testing.T) {
	cfg := testConfig(t)
	l := NewLayout(cfg, 5)
	limit := cfg.Arena.Size/2 - plantBorder

	if len(l.Plants) != plantGroups*plantsPerGroup {
		t.Fatalf("plants = %d, want %d", len(l.Plants), plantGroups*plantsPerGroup)
	}
	for _, p := range l.Plants {
		at := p.Position
		if math.Abs(at[0]) > limit || math.Abs(at[2]) > limit {
			t.Errorf("plant at %v closer than %v to the walls", at, plantBorder)
		}
		if d := at[1] - systems.TerrainHeight(at[0], at[2]); math.Abs(d-plantLift) > 1e-9 {
			t.Errorf("plant at %v not rooted on the seabed", at)
		}
		if p.Height < plantMinHeight || p.Height > plantMaxHeight {
			t.Errorf("plant height %v outside [%v, %v]", p.Height, plantMinHeight, plantMaxHeight)
		}
	}

	// Each group stays within its spread of the group's first plant.
	for g := 0; g < plantGroups; g++ {
		group := l.Plants[g*plantsPerGroup : (g+1)*plantsPerGroup]
		for _, p := range group[1:] {
			if dx := math.Abs(p.Position[0] - group[0].Position[0]); dx > plantSpread {
				t.Errorf("group %d spans %v on x, want <= %v", g, dx, plantSpread)
			}
			if dz := math.Abs(p.Position[2] - group[0].Position[2]); dz > plantSpread {
				t.Errorf("group %d spans %v on z, want <= %v", g, dz, plantSpread)
			}
		}
	}
}

func TestTotemSitsUnderGoal(t *testing.T) {
	cfg := testConfig(t)
	l := NewLayout(cfg, 1)
	goal := systems.GoalPoint(cfg.Objective)

	if l.Totem.Base[0] != goal[0] || l.Totem.Base[2] != goal[2] {
		t.Errorf("totem base %v not under goal %v", l.Totem.Base, goal)
	}
	if want := goal[1] - cfg.Objective.GoalHeight; math.Abs(l.Totem.Base[1]-want) > 1e-9 {
		t.Errorf("totem base y = %v, want %v", l.Totem.Base[1], want)
	}
	if math.Abs(l.Totem.TiltX) > totemMaxTilt || math.Abs(l.Totem.TiltZ) > totemMaxTilt {
		t.Errorf("totem tilt %v/%v exceeds %v", l.Totem.TiltX, l.Totem.TiltZ, totemMaxTilt)
	}
	if top := l.Totem.Top(); top[1] != l.Totem.Base[1]+TotemHeight {
		t.Errorf("top = %v", top)
	}
}

func TestBubblesRiseAndRespawn(t *testing.T) {
	cfg := testConfig(t)
	arena := systems.NewArena(cfg)
	b := NewBubbles(50, arena, 9)

	if len(b.All()) != 50 {
		t.Fatalf("bubbles = %d, want 50", len(b.All()))
	}

	before := make([]float64, 50)
	for i, it := range b.All() {
		before[i] = it.Position[1]
	}
	b.Update(0.01)
	rose := 0
	for i, it := range b.All() {
		if it.Position[1] > before[i] {
			rose++
		}
	}
	if rose == 0 {
		t.Error("no bubble rose")
	}

	for step := 0; step < 2000; step++ {
		b.Update(1.0 / 30)
		for _, it := range b.All() {
			p := it.Position
			if p[1] > arena.WaterSurface() {
				t.Fatalf("step %d: bubble above the surface at %v", step, p)
			}
			if p[1] < systems.TerrainHeight(p[0], p[2])-bubbleSinkMax-1e-9 {
				t.Fatalf("step %d: bubble too deep at %v", step, p)
			}
			if math.Abs(p[0]) > arena.PlayerLimit() || math.Abs(p[2]) > arena.PlayerLimit() {
				t.Fatalf("step %d: bubble outside the glass at %v", step, p)
			}
			if it.Alpha < 0 || it.Alpha > 1 {
				t.Fatalf("step %d: alpha %v", step, it.Alpha)
			}
		}
	}
}
