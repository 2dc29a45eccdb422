package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Derived.HalfSize != 100 {
		t.Errorf("HalfSize = %v, want 100", cfg.Derived.HalfSize)
	}
	if cfg.Derived.AgentLimit != 95 {
		t.Errorf("AgentLimit = %v, want 95", cfg.Derived.AgentLimit)
	}
	if cfg.Derived.PlayerLimit != 99 {
		t.Errorf("PlayerLimit = %v, want 99", cfg.Derived.PlayerLimit)
	}
	if cfg.Derived.Ceiling != 44 {
		t.Errorf("Ceiling = %v, want 44", cfg.Derived.Ceiling)
	}
	if cfg.Player.FrictionMode != FrictionPerTick {
		t.Errorf("FrictionMode = %q", cfg.Player.FrictionMode)
	}
	if len(cfg.Species) == 0 {
		t.Fatal("no species in defaults")
	}
	for i, sp := range cfg.Species {
		if got := cfg.Derived.SpeciesIndex[sp.Name]; got != i {
			t.Errorf("SpeciesIndex[%s] = %d, want %d", sp.Name, got, i)
		}
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeFile(t, "arena:\n  size: 100\nplayer:\n  speed: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Arena.Size != 100 || cfg.Derived.HalfSize != 50 {
		t.Errorf("size override not applied: size=%v half=%v", cfg.Arena.Size, cfg.Derived.HalfSize)
	}
	if cfg.Player.Speed != 3 {
		t.Errorf("Speed = %v, want 3", cfg.Player.Speed)
	}
	if cfg.Arena.GlassHeight != 45 {
		t.Errorf("GlassHeight = %v, default should survive", cfg.Arena.GlassHeight)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero arena", "arena:\n  size: 0\n", "arena.size"},
		{"inverted agent band", "arena:\n  agent_min_y: 30\n  agent_max_y: 10\n", "agent_min_y"},
		{"bad friction mode", "player:\n  friction_mode: sticky\n", "friction_mode"},
		{"zero max health", "meters:\n  max_health: 0\n", "meter maxima"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.Arena != cfg.Arena {
		t.Errorf("arena changed on round trip: %+v vs %+v", again.Arena, cfg.Arena)
	}
}
