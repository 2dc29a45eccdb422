package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	glassColor     = 0x66c0ff
	glassAlpha     = 102 // 0.4 opacity
	glassThickness = 0.5
	waterColor     = 0x66ccff
	waterAlpha     = 64 // 0.25 opacity
)

// drawGlass draws the four aquarium walls from the base to the glass height.
func (r *Renderer) drawGlass() {
	size := r.cfg.Arena.Size
	half := size / 2
	top := r.cfg.Arena.GlassHeight
	h := top - baseDepth
	cy := baseDepth + h/2
	t := glassThickness

	walls := []struct {
		pos  mgl64.Vec3
		size mgl64.Vec3
	}{
		{mgl64.Vec3{0, cy, half + t/2}, mgl64.Vec3{size + 2*t, h, t}},
		{mgl64.Vec3{0, cy, -half - t/2}, mgl64.Vec3{size + 2*t, h, t}},
		{mgl64.Vec3{half + t/2, cy, 0}, mgl64.Vec3{t, h, size + 2*t}},
		{mgl64.Vec3{-half - t/2, cy, 0}, mgl64.Vec3{t, h, size + 2*t}},
	}

	rl.DisableDepthMask()
	for _, w := range walls {
		rl.DrawCubeV(v3(w.pos), v3(w.size), color(glassColor, glassAlpha))
	}
	rl.EnableDepthMask()
}

// drawWater draws the surface plane, visible from above and below.
func (r *Renderer) drawWater() {
	size := float32(r.cfg.Arena.Size)
	y := float32(r.cfg.Arena.WaterSurface) - 0.5

	rl.DisableBackfaceCulling()
	rl.DisableDepthMask()
	rl.DrawPlane(rl.NewVector3(0, y, 0), rl.NewVector2(size, size), color(waterColor, waterAlpha))
	rl.EnableDepthMask()
	rl.EnableBackfaceCulling()
}
