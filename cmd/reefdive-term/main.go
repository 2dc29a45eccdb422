// Command reefdive-term plays the dive in a terminal with a top-down map.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/reefdive/assets"
	"github.com/pthm-cable/reefdive/audio"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/game"
	"github.com/pthm-cable/reefdive/term"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logFile := flag.String("log-file", "", "Write JSON logs here (the screen owns stdout)")
	hold := flag.Duration("hold", term.DefaultHold, "How long a key counts as held after a press")
	mute := flag.Bool("mute", false, "Disable sound")

	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(out, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	sound := newSound(cfg, *mute)
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		os.Exit(1)
	}
	defer screen.Fini()

	g, err := game.NewGame(cfg, game.Options{Seed: rngSeed, OutputDir: *outputDir})
	if err != nil {
		screen.Fini()
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := term.NewRunner(screen, g, *hold)
	r.OnEvents = sound.HandleEvents
	if err := r.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("run failed", "error", err)
	}
}

// newSound loads only the optional cue overrides; models are not drawn here.
func newSound(cfg *config.Config, mute bool) *audio.Manager {
	var reqs []assets.Request
	for _, req := range assets.Manifest(cfg, audio.CueNames()) {
		if req.Kind == assets.KindSound {
			reqs = append(reqs, req)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Assets.TimeoutSec*float64(time.Second)))
	defer cancel()
	bundle, err := assets.Preload(ctx, cfg.Assets.Root, reqs, cfg.Assets.Parallelism)
	if err != nil {
		slog.Warn("sound overrides unavailable", "error", err)
	}

	audioCfg := cfg.Audio
	if mute {
		audioCfg.Enabled = false
	}
	m := audio.NewManager(audioCfg, bundle)
	if err := m.Init(); err != nil {
		slog.Warn("audio unavailable, continuing muted", "error", err)
	}
	return m
}
