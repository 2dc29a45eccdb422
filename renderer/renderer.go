// Package renderer draws the aquarium in 3D with raylib primitives.
package renderer

import (
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/assets"
	"github.com/pthm-cable/reefdive/camera"
	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
	"github.com/pthm-cable/reefdive/scenery"
)

// Renderer draws one snapshot per frame. Call Init after the window exists.
type Renderer struct {
	cfg     *config.Config
	layout  *scenery.Layout
	bubbles *scenery.Bubbles
	bundle  *assets.Bundle

	models      map[string]rl.Model
	colors      map[string]uint32 // species name -> body colour
	cam         rl.Camera3D
	eye         mgl64.Vec3
	atmo        game.Atmosphere
	initialized bool
}

// New creates a renderer for the given props.
func New(cfg *config.Config, layout *scenery.Layout, bubbles *scenery.Bubbles, bundle *assets.Bundle) *Renderer {
	r := &Renderer{
		cfg:     cfg,
		layout:  layout,
		bubbles: bubbles,
		bundle:  bundle,
		models:  make(map[string]rl.Model),
		colors:  make(map[string]uint32, len(cfg.Species)),
	}
	for _, sp := range cfg.Species {
		r.colors[sp.Name] = sp.Color
	}
	return r
}

// Init uploads any preloaded species models to the GPU.
func (r *Renderer) Init() {
	if r.initialized {
		return
	}
	for _, sp := range r.cfg.Species {
		a, ok := r.bundle.Get(assets.ModelName(sp.Name))
		if !ok {
			continue
		}
		m := rl.LoadModel(a.FullPath)
		if m.MeshCount == 0 {
			slog.Warn("model has no meshes, using primitives", "species", sp.Name, "path", a.FullPath)
			continue
		}
		r.models[sp.Name] = m
	}
	r.cam.Projection = rl.CameraPerspective
	r.initialized = true
}

// Draw renders the world as seen by the diver. The caller owns
// BeginDrawing/EndDrawing.
func (r *Renderer) Draw(s game.Snapshot) {
	if !r.initialized {
		r.Init()
	}

	view := components.PlayerState{Position: s.PlayerPos, Yaw: s.PlayerYaw, Pitch: s.PlayerPitch}
	eye := camera.FromPlayer(view, r.cfg.Screen.FOV)
	r.cam.Position = v3(eye.Position)
	r.cam.Target = v3(eye.Target)
	r.cam.Up = v3(eye.Up)
	r.cam.Fovy = float32(eye.FovY)
	r.eye = eye.Position
	r.atmo = s.Atmosphere

	rl.ClearBackground(color(s.Atmosphere.Color, 255))

	rl.BeginMode3D(r.cam)
	r.drawSeabed()
	r.drawRocks()
	r.drawPlants()
	r.drawTotem(s.Goal)
	r.drawAgents(s.Agents)
	r.drawBubbles()
	r.drawGlass()
	r.drawWater()
	rl.EndMode3D()
}

// SetScenery swaps the props after a restart rebuilt them.
func (r *Renderer) SetScenery(layout *scenery.Layout, bubbles *scenery.Bubbles) {
	r.layout = layout
	r.bubbles = bubbles
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	for name, m := range r.models {
		rl.UnloadModel(m)
		delete(r.models, name)
	}
	r.initialized = false
}

// fogged returns c as seen from the eye through the current fog.
func (r *Renderer) fogged(c uint32, at mgl64.Vec3, alpha uint8) rl.Color {
	f := scenery.FogFactor(r.atmo.Density, at.Sub(r.eye).Len())
	return color(scenery.Blend(c, r.atmo.Color, f), alpha)
}

func color(c uint32, alpha uint8) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), alpha)
}

func v3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

// axisAngle converts a rotation to the axis and degrees rlgl expects.
func axisAngle(q mgl64.Quat) (rl.Vector3, float32) {
	q = q.Normalize()
	w := math.Max(-1, math.Min(1, q.W))
	s := math.Sqrt(1 - w*w)
	if s < 1e-6 {
		return rl.NewVector3(0, 1, 0), 0
	}
	axis := q.V.Mul(1 / s)
	return v3(axis), float32(mgl64.RadToDeg(2 * math.Acos(w)))
}
