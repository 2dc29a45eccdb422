package systems

import (
	"math"
	"testing"
)

func TestTerrainHeight(t *testing.T) {
	tests := []struct {
		x, z float64
		want float64
	}{
		{0, 0, 1.5},
		{5 * math.Pi, 0, 2 + 1.5},
		{0, math.Pi / 0.15, -1.5},
		{-5 * math.Pi, 0, -2 + 1.5},
	}
	for _, tc := range tests {
		if got := TerrainHeight(tc.x, tc.z); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("TerrainHeight(%v, %v) = %v, want %v", tc.x, tc.z, got, tc.want)
		}
	}
}

func TestTerrainHeight_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		x, z := float64(i)*1.37-60, float64(i)*-0.91+40
		if TerrainHeight(x, z) != TerrainHeight(x, z) {
			t.Fatalf("non-reproducible height at (%v, %v)", x, z)
		}
	}
}

func TestArena(t *testing.T) {
	a := NewArena(testConfig(t))

	if a.HalfSize() != 100 || a.AgentLimit() != 95 || a.PlayerLimit() != 99 || a.Ceiling() != 44 {
		t.Errorf("unexpected limits half=%v agent=%v player=%v ceiling=%v",
			a.HalfSize(), a.AgentLimit(), a.PlayerLimit(), a.Ceiling())
	}
	if !a.Submerged(39.9) || a.Submerged(40) {
		t.Error("surface is at y=40")
	}
	if a.ClampAgentY(2) != 5 || a.ClampAgentY(30) != 25 || a.ClampAgentY(12) != 12 {
		t.Error("agent band is [5,25]")
	}
	if a.OutsideAgentBounds(95, 95) || !a.OutsideAgentBounds(-95.1, 0) {
		t.Error("agent bound is |x|,|z| > 95")
	}
}
