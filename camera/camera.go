// Package camera derives the diver's eye view and a top-down overview of the
// aquarium floor plan.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
)

// Eye is a perspective view positioned at the diver.
type Eye struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FovY     float64 // Degrees
}

// FromPlayer places the eye at the diver looking along its yaw and pitch.
func FromPlayer(p components.PlayerState, fovY float64) Eye {
	q := p.Orientation()
	return Eye{
		Position: p.Position,
		Target:   p.Position.Add(q.Rotate(mgl64.Vec3{0, 0, -1})),
		Up:       q.Rotate(mgl64.Vec3{0, 1, 0}),
		FovY:     fovY,
	}
}

// Overview maps the XZ plane of the arena onto a 2D viewport.
// World X maps to screen X and world Z to screen Y.
type Overview struct {
	// Centre of the view in world coordinates
	X, Z float64

	// Zoom level in screen units per world unit
	Zoom float64

	ViewportW, ViewportH float64

	// Half the arena side; the view never leaves [-Half, Half]
	Half float64

	MinZoom, MaxZoom float64
}

// NewOverview creates a camera centred on the arena, zoomed to fit it.
func NewOverview(viewportW, viewportH, arenaSize float64) *Overview {
	c := &Overview{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Half:      arenaSize / 2,
		MaxZoom:   8 * math.Min(viewportW, viewportH) / arenaSize,
	}
	c.MinZoom = c.fitZoom()
	c.Zoom = c.MinZoom
	return c
}

// fitZoom is the zoom at which the whole arena fits the viewport.
func (c *Overview) fitZoom() float64 {
	return math.Min(c.ViewportW, c.ViewportH) / (2 * c.Half)
}

// WorldToScreen converts arena coordinates to screen coordinates.
func (c *Overview) WorldToScreen(x, z float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (x-c.X)*c.Zoom
	sy = c.ViewportH/2 + (z-c.Z)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Overview) ScreenToWorld(sx, sy float64) (x, z float64) {
	x = c.X + (sx-c.ViewportW/2)/c.Zoom
	z = c.Z + (sy-c.ViewportH/2)/c.Zoom
	return x, z
}

// IsVisible reports whether a circle at (x, z) could be on screen.
func (c *Overview) IsVisible(x, z, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return math.Abs(x-c.X) <= halfW && math.Abs(z-c.Z) <= halfH
}

// Resize updates the viewport and keeps the zoom within the new limits.
func (c *Overview) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	c.SetZoom(c.Zoom)
}

// Pan moves the view by a delta in screen units.
func (c *Overview) Pan(dx, dy float64) {
	c.Follow(c.X+dx/c.Zoom, c.Z+dy/c.Zoom)
}

// Follow centres the view on (x, z), held inside the arena.
func (c *Overview) Follow(x, z float64) {
	c.X = c.clampAxis(x, c.ViewportW)
	c.Z = c.clampAxis(z, c.ViewportH)
}

// clampAxis keeps the visible span on one axis inside the arena. When the
// span is wider than the arena the view centres on it.
func (c *Overview) clampAxis(v, viewport float64) float64 {
	span := viewport / (2 * c.Zoom)
	if span >= c.Half {
		return 0
	}
	return clamp(v, -c.Half+span, c.Half-span)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Overview) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.Follow(c.X, c.Z)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Overview) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the view to the whole arena.
func (c *Overview) Reset() {
	c.X, c.Z = 0, 0
	c.Zoom = c.MinZoom
}

// VisibleWorldBounds returns the arena-coordinate bounds of the visible area.
func (c *Overview) VisibleWorldBounds() (minX, minZ, maxX, maxZ float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Z - halfH, c.X + halfW, c.Z + halfH
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
