package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawMeter draws a labelled meter for a ratio in [0,1]. raygui draws the
// frame and the fill is overdrawn in the meter's colour.
func (r *Renderer) DrawMeter(bounds rl.Rectangle, label string, ratio float32, fill rl.Color) {
	ratio = clamp01(ratio)
	gui.ProgressBar(bounds, "", "", ratio, 0, 1)

	inner := rl.Rectangle{X: bounds.X + 2, Y: bounds.Y + 2, Width: bounds.Width - 4, Height: bounds.Height - 4}
	rl.DrawRectangleRec(inner, r.Theme.BarBg)
	inner.Width *= ratio
	rl.DrawRectangleRec(inner, fill)

	size := r.Theme.FontSize
	tw := rl.MeasureText(label, size)
	tx := int32(bounds.X+bounds.Width/2) - tw/2
	ty := int32(bounds.Y+bounds.Height/2) - size/2
	rl.DrawText(label, tx, ty, size, rl.Black)
}

// DrawBadge draws a rounded species badge and returns its width.
func (r *Renderer) DrawBadge(x, y int32, text string, c rl.Color) int32 {
	size := r.Theme.FontSize
	w := rl.MeasureText(text, size) + 2*r.Theme.Padding
	h := size + r.Theme.Padding
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, 0.5, 6, c)
	rl.DrawText(text, x+r.Theme.Padding, y+r.Theme.Padding/2, size, rl.Black)
	return w
}

// DrawCentered draws multi-line text centred on (cx, cy).
func (r *Renderer) DrawCentered(text string, cx, cy, size int32, c rl.Color) {
	lines := strings.Split(text, "\n")
	lineH := size + size/4
	y := cy - int32(len(lines))*lineH/2
	for _, line := range lines {
		w := rl.MeasureText(line, size)
		rl.DrawText(line, cx-w/2, y, size, c)
		y += lineH
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
