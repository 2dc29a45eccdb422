package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
)

func TestFromPlayerLooksDownMinusZ(t *testing.T) {
	p := components.PlayerState{Position: mgl64.Vec3{1, 41, 2}}
	eye := FromPlayer(p, 75)

	want := mgl64.Vec3{1, 41, 1}
	if !vecNear(eye.Target, want, 1e-9) {
		t.Errorf("target = %v, want %v", eye.Target, want)
	}
	if !vecNear(eye.Up, mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("up = %v, want +Y", eye.Up)
	}
	if eye.FovY != 75 {
		t.Errorf("fov = %v, want 75", eye.FovY)
	}
}

func TestFromPlayerYawAndPitch(t *testing.T) {
	p := components.PlayerState{Yaw: math.Pi / 2}
	eye := FromPlayer(p, 75)
	// Quarter turn left about +Y takes -Z to -X
	if !vecNear(eye.Target, mgl64.Vec3{-1, 0, 0}, 1e-9) {
		t.Errorf("yawed target = %v, want -X", eye.Target)
	}

	p = components.PlayerState{Pitch: 0.5}
	eye = FromPlayer(p, 75)
	if eye.Target[1] <= 0 {
		t.Errorf("positive pitch should look up, target = %v", eye.Target)
	}
	if d := eye.Target.Sub(eye.Position).Dot(eye.Up); math.Abs(d) > 1e-9 {
		t.Errorf("up not orthogonal to view direction: dot = %v", d)
	}
}

func TestNewOverviewFitsArena(t *testing.T) {
	cam := NewOverview(800, 600, 200)

	if cam.X != 0 || cam.Z != 0 {
		t.Errorf("expected centre (0, 0), got (%v, %v)", cam.X, cam.Z)
	}
	// Limiting axis is 600 high over 200 units
	if math.Abs(cam.Zoom-3) > 1e-9 {
		t.Errorf("expected zoom 3, got %v", cam.Zoom)
	}
	minX, minZ, maxX, maxZ := cam.VisibleWorldBounds()
	if minZ != -100 || maxZ != 100 {
		t.Errorf("visible z = [%v, %v], want [-100, 100]", minZ, maxZ)
	}
	if minX > -100 || maxX < 100 {
		t.Errorf("visible x = [%v, %v] should cover the arena", minX, maxX)
	}
}

func TestOverviewRoundtrip(t *testing.T) {
	cam := NewOverview(1280, 720, 200)
	cam.SetZoom(10)
	cam.Follow(30, -20)

	for _, tc := range []struct{ sx, sy float64 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	} {
		x, z := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(x, z)
		if math.Abs(sx-tc.sx) > 1e-9 || math.Abs(sy-tc.sy) > 1e-9 {
			t.Errorf("roundtrip failed: (%v,%v) -> (%v,%v) -> (%v,%v)", tc.sx, tc.sy, x, z, sx, sy)
		}
	}
}

func TestOverviewCentreMapsToScreenCentre(t *testing.T) {
	cam := NewOverview(1280, 720, 200)
	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("expected (640, 360), got (%v, %v)", sx, sy)
	}
}

func TestFollowStaysInsideArena(t *testing.T) {
	cam := NewOverview(100, 100, 200)
	cam.SetZoom(2) // 50 world units visible on each axis

	cam.Follow(99, -99)
	if cam.X != 75 || cam.Z != -75 {
		t.Errorf("expected clamp to (75, -75), got (%v, %v)", cam.X, cam.Z)
	}

	cam.Pan(-1000, 1000)
	if cam.X != -75 || cam.Z != 75 {
		t.Errorf("pan should clamp to (-75, 75), got (%v, %v)", cam.X, cam.Z)
	}
}

func TestFollowCentresWhenViewWiderThanArena(t *testing.T) {
	cam := NewOverview(1280, 720, 200)
	cam.Follow(50, 0)
	// At fit zoom the horizontal span exceeds the arena
	if cam.X != 0 {
		t.Errorf("expected X pinned to 0, got %v", cam.X)
	}
}

func TestOverviewZoomClamp(t *testing.T) {
	cam := NewOverview(400, 400, 200)

	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %v, got %v", cam.MinZoom, cam.Zoom)
	}
	cam.SetZoom(1000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %v, got %v", cam.MaxZoom, cam.Zoom)
	}
}

func TestOverviewResizeRaisesZoom(t *testing.T) {
	cam := NewOverview(200, 200, 200)
	cam.Resize(400, 400)
	if cam.MinZoom != 2 || cam.Zoom < 2 {
		t.Errorf("after resize min=%v zoom=%v, want both >= 2", cam.MinZoom, cam.Zoom)
	}
}

func TestOverviewIsVisible(t *testing.T) {
	cam := NewOverview(100, 100, 200)
	cam.SetZoom(2)
	cam.Follow(0, 0)

	if !cam.IsVisible(0, 0, 1) {
		t.Error("centre should be visible")
	}
	if cam.IsVisible(90, 90, 1) {
		t.Error("far corner should not be visible")
	}
	if !cam.IsVisible(30, 0, 10) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestOverviewReset(t *testing.T) {
	cam := NewOverview(100, 100, 200)
	cam.SetZoom(4)
	cam.Follow(40, 40)

	cam.Reset()

	if cam.X != 0 || cam.Z != 0 || cam.Zoom != cam.MinZoom {
		t.Errorf("reset gave (%v, %v) zoom %v", cam.X, cam.Z, cam.Zoom)
	}
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
