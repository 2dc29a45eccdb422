// Package assets loads optional model and sound files behind a one-shot
// barrier before the first frame.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pthm-cable/reefdive/config"
)

// Kind tells consumers how to decode an asset.
type Kind uint8

const (
	KindModel Kind = iota
	KindSound
)

func (k Kind) String() string {
	switch k {
	case KindModel:
		return "model"
	case KindSound:
		return "sound"
	}
	return "unknown"
}

// Request names one file to load, relative to the asset root.
type Request struct {
	Name     string
	Path     string
	Kind     Kind
	Optional bool // Missing files are skipped instead of failing the barrier
}

// Asset is a loaded file.
type Asset struct {
	Request
	FullPath string
	Data     []byte
}

// Bundle holds everything the barrier loaded, keyed by request name.
type Bundle struct {
	root   string
	assets map[string]Asset
}

// Get returns a loaded asset by name.
func (b *Bundle) Get(name string) (Asset, bool) {
	if b == nil {
		return Asset{}, false
	}
	a, ok := b.assets[name]
	return a, ok
}

// Len returns the number of loaded assets.
func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.assets)
}

// Root returns the directory assets were loaded from.
func (b *Bundle) Root() string {
	if b == nil {
		return ""
	}
	return b.root
}

// ModelName is the bundle key of a species model.
func ModelName(species string) string { return "model/" + species }

// SoundName is the bundle key of a sound cue override.
func SoundName(cue string) string { return "sound/" + cue }

// Manifest lists the files a configuration asks for. Species models named in
// the config are required; sound overrides for the given cues are optional.
func Manifest(cfg *config.Config, cues []string) []Request {
	var reqs []Request
	for _, sp := range cfg.Species {
		if sp.Model == "" {
			continue
		}
		reqs = append(reqs, Request{Name: ModelName(sp.Name), Path: sp.Model, Kind: KindModel})
	}
	for _, cue := range cues {
		reqs = append(reqs, Request{
			Name:     SoundName(cue),
			Path:     filepath.Join("sounds", cue+".wav"),
			Kind:     KindSound,
			Optional: true,
		})
	}
	return reqs
}

// Preload reads every request under root with at most parallelism files in
// flight. The first failure cancels the rest and is returned.
// A parallelism of zero or less means no limit.
func Preload(ctx context.Context, root string, reqs []Request, parallelism int) (*Bundle, error) {
	start := time.Now()
	bundle := &Bundle{root: root, assets: make(map[string]Asset, len(reqs))}

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	var mu sync.Mutex
	for _, req := range reqs {
		req := req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			full := filepath.Join(root, req.Path)
			data, err := os.ReadFile(full)
			if err != nil {
				if req.Optional && errors.Is(err, fs.ErrNotExist) {
					slog.Debug("optional asset missing", "name", req.Name, "path", full)
					return nil
				}
				return fmt.Errorf("loading %s %s: %w", req.Kind, req.Name, err)
			}

			mu.Lock()
			bundle.assets[req.Name] = Asset{Request: req, FullPath: full, Data: data}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("assets loaded",
		"root", root,
		"requested", len(reqs),
		"loaded", bundle.Len(),
		"elapsed", time.Since(start),
	)
	return bundle, nil
}
