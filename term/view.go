package term

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/reefdive/camera"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
)

// statusRows is the number of rows reserved under the map.
const statusRows = 4

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder  = styleDefault.Foreground(tcell.ColorDarkGray)
	stylePlayer  = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHostile = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGoal    = styleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleHealth  = styleDefault.Foreground(tcell.ColorRed)
	styleOxygen  = styleDefault.Foreground(tcell.NewHexColor(0x00aaff))
	styleBoost   = styleDefault.Foreground(tcell.ColorYellow)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
	stylePrompt  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite).Bold(true)
)

// View draws snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
	view   *camera.Overview
	styles map[string]tcell.Style
	glyphs map[string]rune
	arena  float64
}

// NewView creates a view of the arena on screen.
func NewView(screen tcell.Screen, cfg *config.Config) *View {
	v := &View{
		screen: screen,
		styles: make(map[string]tcell.Style, len(cfg.Species)),
		glyphs: make(map[string]rune, len(cfg.Species)),
		arena:  cfg.Arena.Size,
	}
	for _, sp := range cfg.Species {
		v.styles[sp.Name] = styleDefault.Foreground(tcell.NewHexColor(int32(sp.Color)))
		g := 'o'
		if sp.Name != "" {
			g = []rune(sp.Name)[0]
		}
		v.glyphs[sp.Name] = g
	}
	v.Resize()
	return v
}

// Resize refits the overview to the screen. A cell is about twice as tall
// as it is wide, so the map is laid out in half-rows.
func (v *View) Resize() {
	w, h := v.screen.Size()
	mapH := h - statusRows
	if mapH < 1 {
		mapH = 1
	}
	if v.view == nil {
		v.view = camera.NewOverview(float64(w), float64(mapH*2), v.arena)
		return
	}
	v.view.Resize(float64(w), float64(mapH*2))
}

// cell maps a world position to a screen cell.
func (v *View) cell(x, z float64) (int, int) {
	sx, sy := v.view.WorldToScreen(x, z)
	return int(sx), int(sy / 2)
}

// Draw renders one frame and shows it.
func (v *View) Draw(s game.Snapshot) {
	v.screen.Clear()
	w, h := v.screen.Size()
	v.view.Reset()

	x0, y0 := v.cell(-v.view.Half, -v.view.Half)
	x1, y1 := v.cell(v.view.Half, v.view.Half)
	v.box(x0, y0, x1, y1)

	gx, gy := v.cell(s.Goal[0], s.Goal[2])
	v.screen.SetContent(gx, gy, '*', nil, styleGoal)

	for _, a := range s.Agents {
		x, y := v.cell(a.Position[0], a.Position[2])
		if a.Hostile {
			v.screen.SetContent(x, y, 'X', nil, styleHostile)
			continue
		}
		st, ok := v.styles[a.Species]
		if !ok {
			st = styleDefault
		}
		v.screen.SetContent(x, y, v.glyphs[a.Species], nil, st)
	}

	px, py := v.cell(s.PlayerPos[0], s.PlayerPos[2])
	v.screen.SetContent(px, py, '@', nil, stylePlayer)

	row := h - statusRows
	col := v.meter(0, row, "HP", s.Health, styleHealth)
	col = v.meter(col+2, row, "O2", s.Oxygen, styleOxygen)
	boost := styleBoost
	if !s.CanBoost {
		boost = styleDim
	}
	v.meter(col+2, row, "BOOST", s.Boost, boost)

	depth := "surface"
	if s.Submerged {
		depth = "submerged"
	}
	v.text(0, row+1, fmt.Sprintf("depth %.1f  %s  species %d/%d  caught %d", s.PlayerPos[1], depth, len(s.Collected), s.Required, s.TotalCaught), styleDefault)
	v.text(0, row+2, strings.Join(s.Collected, " "), styleDim)
	v.text(0, row+3, "wasd move  e/q up/down  shift boost  arrows look  f catch  r retry  n new  esc quit", styleDim)

	if s.Prompt != game.PromptNone {
		lines := strings.Split(s.Prompt.Text(), "\n")
		for i, line := range lines {
			v.text((w-len(line))/2, h/2-len(lines)/2+i, line, stylePrompt)
		}
	}

	v.screen.Show()
}

// meter draws a ten-cell bar and returns the column after it.
func (v *View) meter(x, y int, label string, ratio float64, st tcell.Style) int {
	const cells = 10
	filled := int(ratio*cells + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > cells {
		filled = cells
	}
	x = v.text(x, y, label+" ", styleDefault)
	for i := 0; i < cells; i++ {
		r := '·'
		if i < filled {
			r = '█'
		}
		v.screen.SetContent(x+i, y, r, nil, st)
	}
	return x + cells
}

// text writes s at (x, y) and returns the column after it.
func (v *View) text(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

func (v *View) box(x0, y0, x1, y1 int) {
	for x := x0; x <= x1; x++ {
		v.screen.SetContent(x, y0, '─', nil, styleBorder)
		v.screen.SetContent(x, y1, '─', nil, styleBorder)
	}
	for y := y0; y <= y1; y++ {
		v.screen.SetContent(x0, y, '│', nil, styleBorder)
		v.screen.SetContent(x1, y, '│', nil, styleBorder)
	}
	v.screen.SetContent(x0, y0, '┌', nil, styleBorder)
	v.screen.SetContent(x1, y0, '┐', nil, styleBorder)
	v.screen.SetContent(x0, y1, '└', nil, styleBorder)
	v.screen.SetContent(x1, y1, '┘', nil, styleBorder)
}
