package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/reefdive/components"
)

func TestPlanSpawn_WithinSpeciesRanges(t *testing.T) {
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(3))

	for i := range cfg.Species {
		sp := &cfg.Species[i]
		for n := 0; n < 200; n++ {
			a := PlanSpawn(sp, i, cfg, rng)
			pos := a.Pose.Position
			if math.Abs(pos[0]) > 50 || math.Abs(pos[2]) > 50 {
				t.Fatalf("%s: spawn %v outside ±50", sp.Name, pos)
			}
			if pos[1] < 5 || pos[1] > 25 {
				t.Fatalf("%s: spawn height %v outside [5,25]", sp.Name, pos[1])
			}
			if a.Body.Scale < sp.ScaleMin || a.Body.Scale > sp.ScaleMax {
				t.Fatalf("%s: scale %v outside [%v,%v]", sp.Name, a.Body.Scale, sp.ScaleMin, sp.ScaleMax)
			}
			ratio := a.Steering.Speed / sp.BaseSpeed
			if ratio < 0.8 || ratio > 1.2 {
				t.Fatalf("%s: speed ratio %v outside [0.8,1.2]", sp.Name, ratio)
			}
			if a.Steering.ChangeTimer < 2 || a.Steering.ChangeTimer > 4 {
				t.Fatalf("%s: change timer %v outside [2,4]", sp.Name, a.Steering.ChangeTimer)
			}
			if math.Abs(a.Steering.TargetDir.Len()-1) > 1e-12 {
				t.Fatalf("%s: target dir not unit", sp.Name)
			}
		}
	}
}

func TestSpeciesFromConfig_Roles(t *testing.T) {
	cfg := testConfig(t)

	hostile := 0
	for i := range cfg.Species {
		s := SpeciesFromConfig(&cfg.Species[i], i)
		if s.Hostile() {
			hostile++
			if s.Name != "shark" {
				t.Errorf("unexpected hostile species %q", s.Name)
			}
		}
		if s.Index != i {
			t.Errorf("%s: index %d, want %d", s.Name, s.Index, i)
		}
	}
	if hostile != 1 {
		t.Errorf("expected exactly one hostile species, got %d", hostile)
	}

	koi := SpeciesFromConfig(&cfg.Species[cfg.Derived.SpeciesIndex["koi_fish"]], 0)
	if koi.Role != components.RoleBenign || koi.ForwardAxis[0] != 1 {
		t.Errorf("koi should be benign facing +X, got %v %v", koi.Role, koi.ForwardAxis)
	}
}
