// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Meters     MetersConfig     `yaml:"meters"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Steering   SteeringConfig   `yaml:"steering"`
	Objective  ObjectiveConfig  `yaml:"objective"`
	Atmosphere AtmosphereConfig `yaml:"atmosphere"`
	Species    []SpeciesConfig  `yaml:"species"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Audio      AudioConfig      `yaml:"audio"`
	Assets     AssetsConfig     `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	TargetFPS int     `yaml:"target_fps"`
	FOV       float64 `yaml:"fov"`
}

// ArenaConfig describes the aquarium volume.
type ArenaConfig struct {
	Size           float64    `yaml:"size"`            // Side length of the square seabed
	GlassHeight    float64    `yaml:"glass_height"`    // Top of the glass walls
	WaterSurface   float64    `yaml:"water_surface"`   // Below this the diver is submerged
	Spawn          [3]float64 `yaml:"spawn"`           // Player spawn / reset point
	AgentMargin    float64    `yaml:"agent_margin"`    // Agents turn back this far inside the walls
	PlayerMargin   float64    `yaml:"player_margin"`   // Player clamp distance from the walls
	CeilingMargin  float64    `yaml:"ceiling_margin"`  // Player clamp distance below the glass top
	FloorClearance float64    `yaml:"floor_clearance"` // Minimum player height above the seabed
	AgentMinY      float64    `yaml:"agent_min_y"`
	AgentMaxY      float64    `yaml:"agent_max_y"`
}

// PlayerConfig holds diver movement parameters.
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	BoostMultiplier  float64 `yaml:"boost_multiplier"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	PitchEpsilon     float64 `yaml:"pitch_epsilon"`
	Friction         float64 `yaml:"friction"`      // Velocity multiplier when no key is held
	FrictionMode     string  `yaml:"friction_mode"` // "per_tick" or "time_normalized"
	FrictionRefHz    float64 `yaml:"friction_ref_hz"`
	CollisionRadius  float64 `yaml:"collision_radius"` // Push-out distance from agents
	HitboxSize       float64 `yaml:"hitbox_size"`      // Edge of the player's damage box
}

// MetersConfig holds health/oxygen/boost economics (per second rates).
type MetersConfig struct {
	MaxHealth      float64 `yaml:"max_health"`
	MaxOxygen      float64 `yaml:"max_oxygen"`
	MaxBoost       float64 `yaml:"max_boost"`
	BoostConsume   float64 `yaml:"boost_consume"`
	BoostRecover   float64 `yaml:"boost_recover"`
	OxygenDrain    float64 `yaml:"oxygen_drain"`
	OxygenRefill   float64 `yaml:"oxygen_refill"`
	HealthLossRate float64 `yaml:"health_loss_rate"` // Health drain once oxygen is empty
}

// HazardConfig holds shark attack parameters.
type HazardConfig struct {
	Damage          float64 `yaml:"damage"`
	Cooldown        float64 `yaml:"cooldown"`
	AttackRadius    float64 `yaml:"attack_radius"`
	AttackSpeedMult float64 `yaml:"attack_speed_mult"`
	ChaseLerp       float64 `yaml:"chase_lerp"`
}

// SteeringConfig holds agent movement parameters.
type SteeringConfig struct {
	ReturnLerp     float64 `yaml:"return_lerp"`
	TurnFactor     float64 `yaml:"turn_factor"` // Slerp factor per unit of base speed
	BobAmplitude   float64 `yaml:"bob_amplitude"`
	BobFrequency   float64 `yaml:"bob_frequency"` // Per millisecond of elapsed time
	ChangeTimerMin float64 `yaml:"change_timer_min"`
	ChangeTimerMax float64 `yaml:"change_timer_max"`
	SpeedJitterMin float64 `yaml:"speed_jitter_min"`
	SpeedJitterMax float64 `yaml:"speed_jitter_max"`
	SpawnRadius    float64 `yaml:"spawn_radius"`
}

// ObjectiveConfig holds collection and victory parameters.
type ObjectiveConfig struct {
	PickupRadius    float64 `yaml:"pickup_radius"`
	TotemBaseOffset float64 `yaml:"totem_base_offset"`
	GoalHeight      float64 `yaml:"goal_height"`
	ReachDistance   float64 `yaml:"reach_distance"`
	RequiredSpecies int     `yaml:"required_species"`
}

// AtmosphereConfig holds fog presets. Colors are 0xRRGGBB.
type AtmosphereConfig struct {
	SurfaceColor      uint32  `yaml:"surface_color"`
	SurfaceDensity    float64 `yaml:"surface_density"`
	UnderwaterColor   uint32  `yaml:"underwater_color"`
	UnderwaterDensity float64 `yaml:"underwater_density"`
	GameOverColor     uint32  `yaml:"game_over_color"`
	GameOverDensity   float64 `yaml:"game_over_density"`
	VictoryColor      uint32  `yaml:"victory_color"`
	VictoryDensity    float64 `yaml:"victory_density"`
}

// SpeciesConfig describes one spawnable species.
type SpeciesConfig struct {
	Name        string     `yaml:"name"`
	Hostile     bool       `yaml:"hostile"`
	Count       int        `yaml:"count"`
	BaseSpeed   float64    `yaml:"base_speed"`
	ScaleMin    float64    `yaml:"scale_min"`
	ScaleMax    float64    `yaml:"scale_max"`
	ForwardAxis [3]float64 `yaml:"forward_axis"`
	BodySize    [3]float64 `yaml:"body_size"` // Model-space extents at scale 1
	Color       uint32     `yaml:"color"`
	Model       string     `yaml:"model"` // Optional model file, loaded behind the asset barrier
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds per session.csv row
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AudioConfig holds sound cue parameters.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
}

// AssetsConfig holds asset loading parameters.
type AssetsConfig struct {
	Root        string  `yaml:"root"`
	TimeoutSec  float64 `yaml:"timeout_sec"`
	Parallelism int     `yaml:"parallelism"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	HalfSize     float64        // Arena.Size / 2
	AgentLimit   float64        // HalfSize - AgentMargin
	PlayerLimit  float64        // HalfSize - PlayerMargin
	Ceiling      float64        // GlassHeight - CeilingMargin
	SpeciesIndex map[string]int // name -> index into Species
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Arena.Size <= 0 {
		return fmt.Errorf("arena.size must be positive, got %v", c.Arena.Size)
	}
	if c.Arena.AgentMinY > c.Arena.AgentMaxY {
		return fmt.Errorf("arena.agent_min_y (%v) above agent_max_y (%v)", c.Arena.AgentMinY, c.Arena.AgentMaxY)
	}
	if c.Meters.MaxHealth <= 0 || c.Meters.MaxOxygen <= 0 || c.Meters.MaxBoost <= 0 {
		return fmt.Errorf("meter maxima must be positive")
	}
	switch c.Player.FrictionMode {
	case "", FrictionPerTick, FrictionTimeNormalized:
	default:
		return fmt.Errorf("player.friction_mode %q is not %q or %q", c.Player.FrictionMode, FrictionPerTick, FrictionTimeNormalized)
	}
	seen := make(map[string]bool, len(c.Species))
	for i, sp := range c.Species {
		if sp.Name == "" {
			return fmt.Errorf("species[%d] has no name", i)
		}
		if seen[sp.Name] {
			return fmt.Errorf("species %q declared twice", sp.Name)
		}
		seen[sp.Name] = true
		if sp.ScaleMin > sp.ScaleMax {
			return fmt.Errorf("species %q: scale_min above scale_max", sp.Name)
		}
	}
	return nil
}

// Friction modes.
const (
	FrictionPerTick        = "per_tick"
	FrictionTimeNormalized = "time_normalized"
)

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Player.FrictionMode == "" {
		c.Player.FrictionMode = FrictionPerTick
	}
	if c.Player.FrictionRefHz == 0 {
		c.Player.FrictionRefHz = 60
	}

	half := c.Arena.Size / 2
	c.Derived.HalfSize = half
	c.Derived.AgentLimit = half - c.Arena.AgentMargin
	c.Derived.PlayerLimit = half - c.Arena.PlayerMargin
	c.Derived.Ceiling = c.Arena.GlassHeight - c.Arena.CeilingMargin

	// Species without a forward axis face +Z
	for i := range c.Species {
		sp := &c.Species[i]
		if sp.ForwardAxis == [3]float64{} {
			sp.ForwardAxis = [3]float64{0, 0, 1}
		}
		if sp.BodySize == [3]float64{} {
			sp.BodySize = [3]float64{1, 1, 1}
		}
	}

	c.Derived.SpeciesIndex = make(map[string]int, len(c.Species))
	for i, sp := range c.Species {
		c.Derived.SpeciesIndex[sp.Name] = i
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
