package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/reefdive/assets"
	"github.com/pthm-cable/reefdive/audio"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
	"github.com/pthm-cable/reefdive/renderer"
	"github.com/pthm-cable/reefdive/scenery"
	"github.com/pthm-cable/reefdive/ui"
)

// maxFrameDT caps the step after a stall so the diver cannot tunnel.
const maxFrameDT = 0.1

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driven by the autopilot")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot play in graphical mode")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	mute := flag.Bool("mute", false, "Disable sound")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks)
		return
	}
	runWindow(cfg, opts, *maxTicks, *autopilot, *mute)
}

// runHeadless plays the autopilot at the fixed step with no window or sound.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks int) {
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()
	pilot := game.NewAutopilot(g)

	slog.Info("starting headless run", "seed", opts.Seed, "max_ticks", maxTicks)

	for {
		g.Update(pilot.Poll(), game.DT)
		g.DrainEvents()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "state", g.State().String())
			return
		}
	}
}

func runWindow(cfg *config.Config, opts game.Options, maxTicks int, autopilot, mute bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Assets.TimeoutSec*float64(time.Second)))
	bundle, err := assets.Preload(ctx, cfg.Assets.Root, assets.Manifest(cfg, audio.CueNames()), cfg.Assets.Parallelism)
	cancel()
	if err != nil {
		slog.Error("failed to load assets", "error", err)
		os.Exit(1)
	}

	audioCfg := cfg.Audio
	if mute {
		audioCfg.Enabled = false
	}
	sound := audio.NewManager(audioCfg, bundle)
	if err := sound.Init(); err != nil {
		slog.Warn("audio unavailable, continuing muted", "error", err)
	}
	defer sound.Close()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Reef Dive")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(rl.KeyEscape)

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	seed := g.Seed()
	bubbles := scenery.NewBubbles(scenery.BubbleCount, g.Arena(), seed)
	rend := renderer.New(cfg, scenery.NewLayout(cfg, seed), bubbles, bundle)
	rend.Init()
	defer rend.Unload()

	hud := ui.NewHUD(cfg)
	colors := make(map[string]uint32, len(cfg.Species))
	for _, sp := range cfg.Species {
		colors[sp.Name] = sp.Color
	}
	minimap := ui.NewMinimap(160, cfg.Arena.Size, colors)
	perf := ui.NewPerfPanel(30, 200)

	input := ui.NewInput()
	var source game.InputSource = input
	if autopilot {
		source = game.NewAutopilot(g)
	}

	slog.Info("starting", "seed", seed, "autopilot", autopilot, "audio", sound.Enabled())

	for {
		in := source.Poll()
		if autopilot {
			// Keep the window controls live while the autopilot flies.
			if local := input.Poll(); local.Quit || local.Restart {
				in.Quit = local.Quit
				in.Restart = local.Restart
			}
		}
		if in.Quit {
			break
		}

		dt := float64(rl.GetFrameTime())
		if dt <= 0 || dt > maxFrameDT {
			dt = game.DT
		}
		g.Update(in, dt)
		sound.HandleEvents(g.DrainEvents())

		if g.Seed() != seed {
			seed = g.Seed()
			bubbles = scenery.NewBubbles(scenery.BubbleCount, g.Arena(), seed)
			rend.SetScenery(scenery.NewLayout(cfg, seed), bubbles)
		}

		s := g.Snapshot()
		if s.State == game.StatePlaying {
			bubbles.Update(dt)
		}
		input.AllowCapture(s.Prompt == game.PromptNone)

		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		hud.Resize(w, h)
		minimap.Place(w)

		rl.BeginDrawing()
		rend.Draw(s)
		minimap.Draw(s)
		if input.ShowPerf() {
			perf.Draw(g.PerfStats())
		}
		hud.DrawControls(ui.Controls)
		if hud.Draw(s) {
			input.PressReset()
		}
		rl.EndDrawing()

		g.RecordFrame()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}
}
