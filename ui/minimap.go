package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/reefdive/camera"
	"github.com/pthm-cable/reefdive/game"
)

// Minimap is a top-down inset of the tank in the top-right corner.
type Minimap struct {
	renderer *Renderer
	view     *camera.Overview
	size     int32
	x, y     int32
	colors   map[string]uint32
}

// NewMinimap creates a square minimap of the given pixel size.
func NewMinimap(size int32, arenaSize float64, colors map[string]uint32) *Minimap {
	return &Minimap{
		renderer: NewRenderer(),
		view:     camera.NewOverview(float64(size), float64(size), arenaSize),
		size:     size,
		colors:   colors,
	}
}

// Place anchors the minimap to the top-right of a screen.
func (m *Minimap) Place(screenW int32) {
	m.x = screenW - m.size - barMargin
	m.y = barMargin
}

// Draw renders the arena outline, agents, goal and player.
func (m *Minimap) Draw(s game.Snapshot) {
	m.renderer.DrawPanel(m.x, m.y, m.size, m.size)
	m.view.Reset()

	minX, minZ := m.view.WorldToScreen(-m.view.Half, -m.view.Half)
	maxX, maxZ := m.view.WorldToScreen(m.view.Half, m.view.Half)
	rl.DrawRectangleLines(m.x+int32(minX), m.y+int32(minZ), int32(maxX-minX), int32(maxZ-minZ), m.renderer.Theme.PanelBorder)

	for _, a := range s.Agents {
		if !m.view.IsVisible(a.Position[0], a.Position[2], 0) {
			continue
		}
		sx, sy := m.view.WorldToScreen(a.Position[0], a.Position[2])
		c := rl.LightGray
		if col, ok := m.colors[a.Species]; ok {
			c = rgb(col, 255)
		}
		r := float32(2)
		if a.Hostile {
			r = 4
			c = rl.Red
		}
		rl.DrawCircle(m.x+int32(sx), m.y+int32(sy), r, c)
	}

	gx, gy := m.view.WorldToScreen(s.Goal[0], s.Goal[2])
	rl.DrawCircleLines(m.x+int32(gx), m.y+int32(gy), 5, rl.Gold)

	px, py := m.view.WorldToScreen(s.PlayerPos[0], s.PlayerPos[2])
	cx, cy := float32(m.x)+float32(px), float32(m.y)+float32(py)
	// Forward is -Z rotated by yaw about +Y.
	fx := float32(-math.Sin(s.PlayerYaw))
	fz := float32(-math.Cos(s.PlayerYaw))
	center := rl.NewVector2(cx, cy)
	rl.DrawLineEx(center, rl.NewVector2(cx+fx*10, cy+fz*10), 2, rl.White)
	rl.DrawCircleV(center, 4, rl.White)
}
