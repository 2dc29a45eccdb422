package ui

import (
	"fmt"
	"strings"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
	"github.com/pthm-cable/reefdive/telemetry"
)

// Meter bar geometry as fractions of the screen, plus pixel margins.
const (
	barWidthFrac  = 0.15
	barHeightFrac = 0.05
	barMargin     = 30
	barSpacing    = 15
)

// HUD renders the meters, species badges and end-of-run prompt.
type HUD struct {
	renderer *Renderer
	colors   map[string]uint32
	w, h     int32
}

// NewHUD creates a HUD that colours badges by species.
func NewHUD(cfg *config.Config) *HUD {
	colors := make(map[string]uint32, len(cfg.Species))
	for _, sp := range cfg.Species {
		colors[sp.Name] = sp.Color
	}
	return &HUD{renderer: NewRenderer(), colors: colors}
}

// Resize records the screen size used for layout.
func (h *HUD) Resize(w, ht int32) {
	h.w, h.h = w, ht
}

// Draw renders the HUD for one snapshot. It returns true when the prompt
// button was clicked this frame.
func (h *HUD) Draw(s game.Snapshot) bool {
	t := h.renderer.Theme
	bw := float32(h.w) * barWidthFrac
	bh := float32(h.h) * barHeightFrac

	// Bars stack upward from the bottom-left corner: boost, oxygen, health.
	y := float32(h.h) - barMargin - bh
	boostFill := t.BoostFill
	if !s.CanBoost {
		boostFill = t.BoostLocked
	}
	h.renderer.DrawMeter(rl.Rectangle{X: barMargin, Y: y, Width: bw, Height: bh}, "BOOST", float32(s.Boost), boostFill)
	y -= bh + barSpacing
	h.renderer.DrawMeter(rl.Rectangle{X: barMargin, Y: y, Width: bw, Height: bh}, "OXYGEN", float32(s.Oxygen), t.OxygenFill)
	y -= bh + barSpacing
	h.renderer.DrawMeter(rl.Rectangle{X: barMargin, Y: y, Width: bw, Height: bh}, "HEALTH", float32(s.Health), t.HealthFill)

	h.drawCollection(s)

	if s.Prompt == game.PromptNone {
		return false
	}
	return h.drawPrompt(s.Prompt)
}

func (h *HUD) drawCollection(s game.Snapshot) {
	t := h.renderer.Theme
	x := int32(barMargin)
	y := int32(barMargin)

	rl.DrawText(fmt.Sprintf("SPECIES %d/%d", len(s.Collected), s.Required), x, y, t.FontSize+4, t.LabelColor)
	rl.DrawText(fmt.Sprintf("caught %d", s.TotalCaught), x, y+t.LineHeight+4, t.FontSize, t.ValueColor)

	y += 2*t.LineHeight + 8
	for _, name := range s.Collected {
		c, ok := h.colors[name]
		if !ok {
			c = 0xb0b0b0
		}
		w := h.renderer.DrawBadge(x, y, name, rgb(c, 230))
		x += w + t.Padding/2
		if x > h.w/2 {
			x = barMargin
			y += t.FontSize + t.Padding + 4
		}
	}
}

func (h *HUD) drawPrompt(p game.Prompt) bool {
	t := h.renderer.Theme
	c := t.PromptDanger
	label := "RETRY"
	if p == game.PromptVictory {
		c = t.PromptWin
		label = "PLAY AGAIN"
	}

	rl.DrawRectangle(0, 0, h.w, h.h, rl.Color{R: 0, G: 0, B: 0, A: 120})
	h.renderer.DrawCentered(p.Text(), h.w/2, h.h/2-t.PromptSize, t.PromptSize, c)

	bw := float32(180)
	bounds := rl.Rectangle{X: float32(h.w)/2 - bw/2, Y: float32(h.h)/2 + float32(t.PromptSize), Width: bw, Height: 36}
	return gui.Button(bounds, label)
}

// PerfPanel lists average tick phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Draw renders the phase breakdown.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	phases := telemetry.Phases()
	height := int32(52 + 14*len(phases))
	p.renderer.DrawPanel(p.x-6, p.y-6, 250, height)

	x, y := p.x, p.y
	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20
	rl.DrawText(fmt.Sprintf("avg %s  max %s", stats.AvgTickDuration.Round(time.Microsecond), stats.MaxTickDuration.Round(time.Microsecond)), x, y, 12, rl.Yellow)
	y += 16

	for _, name := range phases {
		pct := stats.PhasePct[name]
		c := rl.LightGray
		if pct > 40 {
			c = rl.Red
		} else if pct > 20 {
			c = rl.Orange
		}
		line := fmt.Sprintf("%-10s %8s %5.1f%%", strings.ToLower(name), stats.PhaseAvg[name].Round(time.Microsecond), pct)
		rl.DrawText(line, x, y, 12, c)
		y += 14
	}
}

// DrawControls renders the control legend along the bottom edge.
func (h *HUD) DrawControls(controls string) {
	rl.DrawText(controls, h.w-rl.MeasureText(controls, 14)-10, h.h-24, 14, rl.Gray)
}
