package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/config"
	"github.com/pthm-cable/reefdive/systems"
	"github.com/pthm-cable/reefdive/telemetry"
)

// TickRate is the fixed tick frequency in Hz.
const TickRate = 60

// DT is the fixed step used in headless runs.
const DT = 1.0 / TickRate

// Options configures a new game.
type Options struct {
	Seed      int64
	OutputDir string // Empty disables CSV output
	LogStats  bool   // Log window stats via slog
}

// Game holds the complete game state. One goroutine owns it.
type Game struct {
	cfg  *config.Config
	seed int64
	rng  *rand.Rand

	// ECS storage for agents
	world       *ecs.World
	agentMapper *ecs.Map4[components.Pose, components.Steering, components.Species, components.Body]
	agentFilter *ecs.Filter4[components.Pose, components.Steering, components.Species, components.Body]
	poseMap     *ecs.Map1[components.Pose]
	speciesMap  *ecs.Map1[components.Species]
	bodyMap     *ecs.Map1[components.Body]

	// Rosters in spawn order; updates, catches and bites follow this order
	benign  []ecs.Entity
	hostile []ecs.Entity

	player    components.PlayerState
	arena     systems.Arena
	hazard    *systems.HazardResolver
	collected *systems.CollectedSet
	goal      mgl64.Vec3

	state      State
	prompt     Prompt
	atmosphere Atmosphere
	savedAtmo  Atmosphere
	submerged  bool

	tick     int32
	simTime  float64
	restarts int

	// Per-tick parameters and scratch buffers
	playerParams systems.PlayerParams
	steerParams  systems.SteeringParams
	hostiles     []systems.Hostile
	candidates   []systems.CatchCandidate

	// Events since the last DrainEvents, and since the last CSV write
	events    []telemetry.Event
	unwritten []telemetry.Event

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	sinkWarned    map[string]bool
	logStats      bool
}

// NewGame creates a game with a freshly spawned world.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:           cfg,
		arena:         systems.NewArena(cfg),
		collected:     systems.NewCollectedSet(),
		goal:          systems.GoalPoint(cfg.Objective),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: om,
		sinkWarned:    make(map[string]bool),
		logStats:      opts.LogStats,
	}
	g.buildWorld(opts.Seed)

	slog.Info("game created",
		"seed", opts.Seed,
		"benign", len(g.benign),
		"hostile", len(g.hostile),
		"goal", g.goal,
	)
	return g, nil
}

// buildWorld discards any existing world and spawns a new one from seed.
func (g *Game) buildWorld(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))

	g.world = ecs.NewWorld()
	g.agentMapper = ecs.NewMap4[components.Pose, components.Steering, components.Species, components.Body](g.world)
	g.agentFilter = ecs.NewFilter4[components.Pose, components.Steering, components.Species, components.Body](g.world)
	g.poseMap = ecs.NewMap1[components.Pose](g.world)
	g.speciesMap = ecs.NewMap1[components.Species](g.world)
	g.bodyMap = ecs.NewMap1[components.Body](g.world)
	g.benign = g.benign[:0]
	g.hostile = g.hostile[:0]

	g.player = components.NewPlayerState(g.cfg)
	g.hazard = systems.NewHazardResolver(g.cfg.Hazard, g.cfg.Player.HitboxSize)
	g.collected.Clear()

	g.state = StatePlaying
	g.prompt = PromptNone
	g.submerged = g.arena.Submerged(g.player.Position[1])
	g.atmosphere = g.currentAtmosphere()
	g.savedAtmo = g.atmosphere

	g.playerParams = systems.PlayerParams{
		Arena:  g.arena,
		Player: g.cfg.Player,
		Meters: g.cfg.Meters,
	}
	g.steerParams = systems.SteeringParams{
		Arena:    g.arena,
		Steering: g.cfg.Steering,
		Hazard:   g.cfg.Hazard,
		Rng:      g.rng,
	}

	for i := range g.cfg.Species {
		sp := &g.cfg.Species[i]
		g.SpawnSpecies(sp, i, sp.Count)
	}
}

// SpawnSpecies creates count agents of a species with randomized placement,
// scale and speed, and returns their handles.
func (g *Game) SpawnSpecies(sp *config.SpeciesConfig, index, count int) []ecs.Entity {
	out := make([]ecs.Entity, 0, count)
	for n := 0; n < count; n++ {
		a := systems.PlanSpawn(sp, index, g.cfg, g.rng)
		e := g.agentMapper.NewEntity(&a.Pose, &a.Steering, &a.Species, &a.Body)
		if a.Species.Hostile() {
			g.hostile = append(g.hostile, e)
		} else {
			g.benign = append(g.benign, e)
		}
		out = append(out, e)
	}
	return out
}

// Update runs one tick: edge actions first, then, while playing, the player,
// agents, hazards, meters and objective in that order.
func (g *Game) Update(in Input, dt float64) {
	g.handleActions(in)
	if g.state != StatePlaying {
		return
	}

	g.tick++
	g.simTime += dt
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhasePlayer)
	g.updatePlayer(in, dt)

	g.perfCollector.StartPhase(telemetry.PhaseAgents)
	g.updateAgents(dt)
	g.separatePlayer()

	g.perfCollector.StartPhase(telemetry.PhaseHazard)
	g.updateHazard(dt)

	g.perfCollector.StartPhase(telemetry.PhaseMeters)
	g.updateMeters(dt)

	g.perfCollector.StartPhase(telemetry.PhaseObjective)
	if in.Catch {
		g.AttemptCatch()
	}
	g.checkTerminal()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry(dt)

	g.perfCollector.EndTick()
}

// handleActions applies the edge-triggered lifecycle actions.
func (g *Game) handleActions(in Input) {
	if in.Restart {
		g.Restart()
		return
	}
	if !in.Reset {
		return
	}
	switch g.state {
	case StateGameOver:
		g.Reset()
	case StateVictory:
		g.Restart()
	}
}

// gatherObstacles refreshes the agent positions the player collides with.
func (g *Game) gatherObstacles() {
	obstacles := g.playerParams.Obstacles[:0]
	for _, roster := range [][]ecs.Entity{g.benign, g.hostile} {
		for _, e := range roster {
			obstacles = append(obstacles, g.poseMap.Get(e).Position)
		}
	}
	g.playerParams.Obstacles = obstacles
}

// separatePlayer pushes the diver out of agents at their post-move poses,
// so no tick ends with the diver inside one.
func (g *Game) separatePlayer() {
	g.gatherObstacles()
	g.player.Position = systems.PushOut(g.player.Position, g.playerParams.Obstacles, g.cfg.Player.CollisionRadius)
}

func (g *Game) updatePlayer(in Input, dt float64) {
	g.gatherObstacles()

	if systems.UpdatePlayer(&g.player, in.intent(), &g.playerParams, dt) {
		g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventBoostDepleted))
	}
}

func (g *Game) updateAgents(dt float64) {
	g.steerParams.PlayerPos = g.player.Position
	g.steerParams.ElapsedMs = g.simTime * 1000

	for _, roster := range [][]ecs.Entity{g.benign, g.hostile} {
		for _, e := range roster {
			pose, st, sp, _ := g.agentMapper.Get(e)
			systems.UpdateAgent(pose, st, *sp, &g.steerParams, dt)
		}
	}
}

func (g *Game) updateHazard(dt float64) {
	g.hostiles = g.hostiles[:0]
	for _, e := range g.hostile {
		g.hostiles = append(g.hostiles, systems.Hostile{
			Pose: *g.poseMap.Get(e),
			Body: *g.bodyMap.Get(e),
		})
	}

	hit, dmg := g.hazard.Update(&g.player, g.hostiles, dt)
	if hit < 0 {
		return
	}
	sp := g.speciesMap.Get(g.hostile[hit])
	g.emit(telemetry.NewDamageEvent(g.tick, sp.Name, dmg))
}

func (g *Game) updateMeters(dt float64) {
	was := g.submerged
	g.submerged = g.arena.Submerged(g.player.Position[1])
	systems.UpdateOxygen(&g.player, g.submerged, g.cfg.Meters, dt)

	if was != g.submerged {
		if g.submerged {
			g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventSubmerged))
		} else {
			g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventSurfaced))
		}
	}
	g.atmosphere = g.currentAtmosphere()
}

func (g *Game) currentAtmosphere() Atmosphere {
	if g.submerged {
		return underwaterAtmosphere(g.cfg.Atmosphere)
	}
	return surfaceAtmosphere(g.cfg.Atmosphere)
}

// checkTerminal moves to GameOver or Victory. Death wins a tie.
func (g *Game) checkTerminal() {
	if g.player.Health <= 0 {
		g.enterGameOver()
		return
	}
	g.CheckObjective()
}

// AttemptCatch removes the last benign agent in the roster within pickup
// radius and records its species. At most one agent is caught per call.
func (g *Game) AttemptCatch() (string, bool) {
	if g.state != StatePlaying {
		return "", false
	}

	g.candidates = g.candidates[:0]
	for _, e := range g.benign {
		g.candidates = append(g.candidates, systems.CatchCandidate{
			Position: g.poseMap.Get(e).Position,
			Species:  g.speciesMap.Get(e).Name,
		})
	}

	i := systems.FindCatch(g.player.Position, g.candidates, g.cfg.Objective.PickupRadius)
	if i < 0 {
		return "", false
	}

	name := g.candidates[i].Species
	g.world.RemoveEntity(g.benign[i])
	g.benign = append(g.benign[:i], g.benign[i+1:]...)

	g.emit(telemetry.NewCatchEvent(g.tick, name))
	if g.collected.Add(name) {
		g.emit(telemetry.NewSpeciesEvent(g.tick, name))
		slog.Info("new species", "tick", g.tick, "species", name, "distinct", g.collected.Distinct())
	}
	return name, true
}

// CheckObjective enters Victory when the player reaches the goal with enough
// species. It reports whether the game is won; repeated calls have no effect.
func (g *Game) CheckObjective() bool {
	if g.state == StateVictory {
		return true
	}
	if g.state != StatePlaying || g.player.Health <= 0 {
		return false
	}
	if !systems.ObjectiveMet(g.player.Position, g.goal, g.collected, g.cfg.Objective) {
		return false
	}
	g.enterVictory()
	return true
}

func (g *Game) enterGameOver() {
	g.state = StateGameOver
	g.prompt = PromptRetry
	g.savedAtmo = g.atmosphere
	g.atmosphere = Atmosphere{Color: g.cfg.Atmosphere.GameOverColor, Density: g.cfg.Atmosphere.GameOverDensity}
	g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventGameOver))
	slog.Info("game over", "tick", g.tick, "state", g.state.String(), "species", g.collected.Distinct())
}

func (g *Game) enterVictory() {
	g.state = StateVictory
	g.prompt = PromptVictory
	g.savedAtmo = g.atmosphere
	g.atmosphere = Atmosphere{Color: g.cfg.Atmosphere.VictoryColor, Density: g.cfg.Atmosphere.VictoryDensity}
	g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventVictory))
	slog.Info("victory", "tick", g.tick, "state", g.state.String(), "species", g.collected.Species())
}

// Reset revives the diver after a game over. Caught species and agent
// positions carry over. It does nothing in any other state.
func (g *Game) Reset() bool {
	if g.state != StateGameOver {
		return false
	}
	g.player.Health = g.cfg.Meters.MaxHealth
	g.player.Oxygen = g.cfg.Meters.MaxOxygen
	g.player.Position = components.SpawnPoint(g.cfg)
	g.player.Velocity = mgl64.Vec3{}

	g.state = StatePlaying
	g.prompt = PromptNone
	g.atmosphere = g.savedAtmo
	g.submerged = g.arena.Submerged(g.player.Position[1])

	g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventReset))
	slog.Info("game reset", "tick", g.tick, "species", g.collected.Distinct())
	return true
}

// Restart rebuilds the world from the same configuration and a fresh seed.
// Caught species are cleared.
func (g *Game) Restart() {
	seed := g.rng.Int63()
	g.restarts++
	g.buildWorld(seed)
	g.emit(telemetry.NewStateEvent(g.tick, telemetry.EventRestart))
	slog.Info("game restarted", "tick", g.tick, "seed", seed, "restarts", g.restarts)
}

// emit queues an event for DrainEvents and the CSV log.
func (g *Game) emit(e telemetry.Event) {
	e.Time = g.simTime
	g.events = append(g.events, e)
	g.unwritten = append(g.unwritten, e)
	g.collector.RecordEvent(e)
}

// DrainEvents returns the events recorded since the previous call.
func (g *Game) DrainEvents() []telemetry.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := make([]telemetry.Event, len(g.events))
	copy(out, g.events)
	g.events = g.events[:0]
	return out
}

// RecordFrame records frame timing for graphics mode.
func (g *Game) RecordFrame() {
	g.perfCollector.RecordFrame()
}

// PerfStats returns timing over the recent tick window.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}

// Tick returns the number of playing ticks simulated.
func (g *Game) Tick() int32 { return g.tick }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns a copy of the diver state.
func (g *Game) Player() components.PlayerState { return g.player }

// Goal returns the victory point above the totem.
func (g *Game) Goal() mgl64.Vec3 { return g.goal }

// Arena returns the aquarium bounds.
func (g *Game) Arena() systems.Arena { return g.arena }

// Config returns the configuration the game was built from.
func (g *Game) Config() *config.Config { return g.cfg }

// Seed returns the seed of the current world.
func (g *Game) Seed() int64 { return g.seed }

// Unload flushes telemetry and closes output files.
func (g *Game) Unload() {
	g.warnOnce("events", g.outputManager.WriteEvents(g.unwritten))
	g.unwritten = g.unwritten[:0]
	if err := g.outputManager.Close(); err != nil {
		slog.Warn("failed to close output", "error", err)
	}
}
