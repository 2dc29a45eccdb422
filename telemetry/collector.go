package telemetry

// Sample is the per-tick player state the collector aggregates.
type Sample struct {
	Health    float64
	Oxygen    float64
	Boost     float64
	Depth     float64 // Metres below the water surface, 0 at or above it
	Submerged bool
	Boosting  bool
}

// Collector accumulates events and samples within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStart float64
	simTime     float64
	ticks       int

	// Samples for the current window
	health []float64
	oxygen []float64
	depth  []float64

	submergedTicks int
	boostingTicks  int

	// Event counters for current window
	bites         int
	damageTaken   float64
	catches       int
	newSpecies    int
	boostDepleted int
	surfacings    int
	gameOvers     int
	victories     int
	resets        int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 5
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// RecordTick adds one tick's sample.
func (c *Collector) RecordTick(s Sample, dt float64) {
	c.simTime += dt
	c.ticks++
	c.health = append(c.health, s.Health)
	c.oxygen = append(c.oxygen, s.Oxygen)
	c.depth = append(c.depth, s.Depth)
	if s.Submerged {
		c.submergedTicks++
	}
	if s.Boosting {
		c.boostingTicks++
	}
}

// RecordEvent counts an event in the current window.
func (c *Collector) RecordEvent(e Event) {
	switch e.Type {
	case EventDamage:
		c.bites++
		c.damageTaken += e.Amount
	case EventCatch:
		c.catches++
	case EventNewSpecies:
		c.newSpecies++
	case EventBoostDepleted:
		c.boostDepleted++
	case EventSurfaced:
		c.surfacings++
	case EventGameOver:
		c.gameOvers++
	case EventVictory:
		c.victories++
	case EventReset, EventRestart:
		c.resets++
	}
}

// ShouldFlush returns true if enough simulated time has passed to flush the window.
func (c *Collector) ShouldFlush() bool {
	return c.simTime-c.windowStart >= c.windowDurationSec
}

// SessionState is the end-of-window session summary supplied by the game.
type SessionState struct {
	Tick            int32
	State           string
	DistinctSpecies int
	TotalCaught     int
	AgentsLeft      int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(s SessionState) WindowStats {
	var submergedPct, boostPct float64
	if c.ticks > 0 {
		submergedPct = float64(c.submergedTicks) / float64(c.ticks)
		boostPct = float64(c.boostingTicks) / float64(c.ticks)
	}

	healthMean, healthMin := MeanMin(c.health)
	oxygenMean, oxygenMin := MeanMin(c.oxygen)
	depthMean, _ := MeanMin(c.depth)

	stats := WindowStats{
		WindowEndTick: s.Tick,
		SimTimeSec:    c.simTime,
		WindowSec:     c.simTime - c.windowStart,
		State:         s.State,

		HealthMean: healthMean,
		HealthMin:  healthMin,
		OxygenMean: oxygenMean,
		OxygenMin:  oxygenMin,
		DepthMean:  depthMean,
		DepthP90:   PercentileOf(c.depth, 0.9),

		SubmergedFrac: submergedPct,
		BoostingFrac:  boostPct,

		Bites:         c.bites,
		DamageTaken:   c.damageTaken,
		Catches:       c.catches,
		NewSpecies:    c.newSpecies,
		BoostDepleted: c.boostDepleted,
		Surfacings:    c.surfacings,
		GameOvers:     c.gameOvers,
		Victories:     c.victories,
		Resets:        c.resets,

		DistinctSpecies: s.DistinctSpecies,
		TotalCaught:     s.TotalCaught,
		AgentsLeft:      s.AgentsLeft,
	}

	// Reset for next window
	c.windowStart = c.simTime
	c.ticks = 0
	c.health = c.health[:0]
	c.oxygen = c.oxygen[:0]
	c.depth = c.depth[:0]
	c.submergedTicks = 0
	c.boostingTicks = 0
	c.bites = 0
	c.damageTaken = 0
	c.catches = 0
	c.newSpecies = 0
	c.boostDepleted = 0
	c.surfacings = 0
	c.gameOvers = 0
	c.victories = 0
	c.resets = 0

	return stats
}

// SimTime returns the simulated seconds recorded so far.
func (c *Collector) SimTime() float64 {
	return c.simTime
}
