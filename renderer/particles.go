package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

const bubbleColor = 0xcfefff

// drawBubbles renders the bubble field, fading each bubble as it rises.
func (r *Renderer) drawBubbles() {
	if r.bubbles == nil {
		return
	}
	rl.DisableDepthMask()
	for _, b := range r.bubbles.All() {
		if b.Alpha <= 0 || b.Radius <= 0 {
			continue
		}
		a := uint8(b.Alpha * 0.8 * 255)
		rl.DrawSphereEx(v3(b.Position), float32(b.Radius), 6, 6, r.fogged(bubbleColor, b.Position, a))
	}
	rl.EnableDepthMask()
}
