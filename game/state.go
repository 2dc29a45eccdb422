package game

import "github.com/pthm-cable/reefdive/config"

// State is the game-level phase. Exactly one is active at a time.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}

// Prompt is the overlay message the HUD should show.
type Prompt uint8

const (
	PromptNone Prompt = iota
	PromptRetry
	PromptVictory
)

// Text returns the overlay text for the prompt.
func (p Prompt) Text() string {
	switch p {
	case PromptRetry:
		return "GAME OVER\nPRESS R TO RETRY"
	case PromptVictory:
		return "VICTORY!\nPRESS R TO RESTART"
	}
	return ""
}

// Atmosphere is the distance fog the renderer applies.
type Atmosphere struct {
	Color   uint32 // 0xRRGGBB
	Density float64
}

func surfaceAtmosphere(cfg config.AtmosphereConfig) Atmosphere {
	return Atmosphere{Color: cfg.SurfaceColor, Density: cfg.SurfaceDensity}
}

func underwaterAtmosphere(cfg config.AtmosphereConfig) Atmosphere {
	return Atmosphere{Color: cfg.UnderwaterColor, Density: cfg.UnderwaterDensity}
}

// RGB splits the fog colour into 8-bit channels.
func (a Atmosphere) RGB() (r, g, b uint8) {
	return uint8(a.Color >> 16), uint8(a.Color >> 8), uint8(a.Color)
}
