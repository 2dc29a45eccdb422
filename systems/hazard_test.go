package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
)

func sharkAt(pos mgl64.Vec3) Hostile {
	return Hostile{
		Pose: components.Pose{Position: pos, Orientation: mgl64.QuatIdent()},
		Body: components.Body{Scale: 1, HalfExtents: mgl64.Vec3{1, 1, 3}},
	}
}

func TestHazard_OneHitPerCooldown(t *testing.T) {
	cfg := testConfig(t)
	h := NewHazardResolver(cfg.Hazard, cfg.Player.HitboxSize)
	p := components.NewPlayerState(cfg)
	p.Position = mgl64.Vec3{0, 20, 0}
	sharks := []Hostile{sharkAt(mgl64.Vec3{0, 20, 1})}

	if i, dmg := h.Update(&p, sharks, dt); i != 0 || dmg != 20 {
		t.Fatalf("expected first overlap to deal 20, dealt %v", dmg)
	}
	// Second overlap 0.1s later lands inside the cooldown
	if i, dmg := h.Update(&p, sharks, 0.1); i != -1 || dmg != 0 {
		t.Errorf("expected no damage during cooldown, dealt %v", dmg)
	}
	if p.Health != 80 {
		t.Errorf("expected health 80, got %v", p.Health)
	}

	h.Update(&p, sharks, 0.5)
	if p.Health != 60 {
		t.Errorf("expected a second bite once the cooldown elapsed, health %v", p.Health)
	}
}

func TestHazard_MultipleSharksOneHit(t *testing.T) {
	cfg := testConfig(t)
	h := NewHazardResolver(cfg.Hazard, cfg.Player.HitboxSize)
	p := components.NewPlayerState(cfg)
	p.Position = mgl64.Vec3{0, 20, 0}
	sharks := []Hostile{sharkAt(mgl64.Vec3{0, 20, 1}), sharkAt(mgl64.Vec3{0, 20, -1})}

	h.Update(&p, sharks, dt)

	if p.Health != 80 {
		t.Errorf("two overlapping sharks must bite once, health %v", p.Health)
	}
}

func TestHazard_NoOverlapNoDamage(t *testing.T) {
	cfg := testConfig(t)
	h := NewHazardResolver(cfg.Hazard, cfg.Player.HitboxSize)
	p := components.NewPlayerState(cfg)
	p.Position = mgl64.Vec3{0, 20, 0}

	h.Update(&p, []Hostile{sharkAt(mgl64.Vec3{0, 20, 10})}, dt)

	if p.Health != 100 || h.Cooldown() != 0 {
		t.Errorf("miss changed state: health %v cooldown %v", p.Health, h.Cooldown())
	}
}

func TestHazard_HealthFloorsAtZero(t *testing.T) {
	cfg := testConfig(t)
	h := NewHazardResolver(cfg.Hazard, cfg.Player.HitboxSize)
	p := components.NewPlayerState(cfg)
	p.Position = mgl64.Vec3{0, 20, 0}
	p.Health = 5

	_, dmg := h.Update(&p, []Hostile{sharkAt(mgl64.Vec3{0, 20, 0})}, dt)

	if p.Health != 0 || dmg != 5 {
		t.Errorf("expected health 0 and 5 damage, got %v / %v", p.Health, dmg)
	}
}

func TestAgentBounds_Rotated(t *testing.T) {
	body := components.Body{Scale: 1, HalfExtents: mgl64.Vec3{1, 1, 3}}
	pose := components.Pose{
		Position:    mgl64.Vec3{5, 10, 0},
		Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
	}

	b := AgentBounds(pose, body)

	// Long axis swings from Z onto X
	want := AABB{Min: mgl64.Vec3{2, 9, -1}, Max: mgl64.Vec3{8, 11, 1}}
	if !vecNear(b.Min, want.Min, 1e-9) || !vecNear(b.Max, want.Max, 1e-9) {
		t.Errorf("got %+v, want %+v", b, want)
	}
}
