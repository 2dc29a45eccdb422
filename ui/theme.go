// Package ui draws the diver's HUD over the 3D view and reads raylib input.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg      rl.Color
	PanelBorder  rl.Color
	LabelColor   rl.Color
	ValueColor   rl.Color
	BarBg        rl.Color
	HealthFill   rl.Color
	OxygenFill   rl.Color
	BoostFill    rl.Color
	BoostLocked  rl.Color
	PromptDanger rl.Color
	PromptWin    rl.Color
	Padding      int32
	LineHeight   int32
	FontSize     int32
	PromptSize   int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:      rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:  rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:   rl.RayWhite,
		ValueColor:   rl.LightGray,
		BarBg:        rl.Color{R: 34, G: 34, B: 34, A: 255},
		HealthFill:   rl.Color{R: 255, G: 0, B: 0, A: 255},
		OxygenFill:   rl.Color{R: 0, G: 170, B: 255, A: 255},
		BoostFill:    rl.Color{R: 255, G: 255, B: 0, A: 255},
		BoostLocked:  rl.Color{R: 120, G: 120, B: 60, A: 255},
		PromptDanger: rl.Color{R: 255, G: 0, B: 0, A: 255},
		PromptWin:    rl.Color{R: 255, G: 215, B: 0, A: 255},
		Padding:      10,
		LineHeight:   18,
		FontSize:     14,
		PromptSize:   48,
	}
}

// rgb converts a 0xRRGGBB colour.
func rgb(c uint32, alpha uint8) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), alpha)
}
