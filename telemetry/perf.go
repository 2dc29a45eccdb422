package telemetry

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Tick phases, in execution order.
const (
	PhasePlayer    = "player"
	PhaseAgents    = "agents"
	PhaseHazard    = "hazard"
	PhaseMeters    = "meters"
	PhaseObjective = "objective"
	PhaseTelemetry = "telemetry"
)

var phaseOrder = []string{
	PhasePlayer, PhaseAgents, PhaseHazard,
	PhaseMeters, PhaseObjective, PhaseTelemetry,
}

// Phases returns the tick phases in execution order.
func Phases() []string {
	return append([]string(nil), phaseOrder...)
}

// tickSample is one tick's wall time split by phase.
type tickSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times ticks and their phases over a ring of recent ticks.
// A nil collector ignores every call.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	cur        tickSample
	tickStart  time.Time
	phase      string
	phaseStart time.Time

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector keeps the last window ticks. Non-positive windows use 60.
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{ring: make([]tickSample, window)}
}

// StartTick begins timing a tick.
func (p *PerfCollector) StartTick() {
	if p == nil {
		return
	}
	p.tickStart = time.Now()
	p.cur = tickSample{phases: make(map[string]time.Duration, len(phaseOrder))}
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens name.
func (p *PerfCollector) StartPhase(name string) {
	if p == nil {
		return
	}
	now := time.Now()
	p.closePhase(now)
	p.phase, p.phaseStart = name, now
}

// EndTick closes the last phase and stores the tick in the ring.
func (p *PerfCollector) EndTick() {
	if p == nil {
		return
	}
	now := time.Now()
	p.closePhase(now)
	p.phase = ""
	p.cur.total = now.Sub(p.tickStart)

	p.ring[p.next] = p.cur
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" && p.cur.phases != nil {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame marks a rendered frame. The gap since the previous call is
// the frame time.
func (p *PerfCollector) RecordFrame() {
	if p == nil {
		return
	}
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats summarises the ring.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	StdTickDuration time.Duration
	P95TickDuration time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average tick, 0-100

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the ticks currently in the ring. Frame timing is
// reported even before the first tick.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg: make(map[string]time.Duration),
		PhasePct: make(map[string]float64),
	}
	if p == nil {
		return s
	}
	s.FrameDuration = p.frame
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return s
	}

	ticks := make([]float64, p.count)
	phaseSum := make(map[string]time.Duration)
	for i, smp := range p.ring[:p.count] {
		ticks[i] = float64(smp.total)
		for name, d := range smp.phases {
			phaseSum[name] += d
		}
	}

	mean, std := stat.MeanStdDev(ticks, nil)
	if p.count < 2 {
		std = 0
	}
	sort.Float64s(ticks)

	s.AvgTickDuration = time.Duration(mean)
	s.MinTickDuration = time.Duration(ticks[0])
	s.MaxTickDuration = time.Duration(ticks[len(ticks)-1])
	s.StdTickDuration = time.Duration(std)
	s.P95TickDuration = time.Duration(stat.Quantile(0.95, stat.Empirical, ticks, nil))
	if mean > 0 {
		s.TicksPerSecond = float64(time.Second) / mean
	}

	for name, sum := range phaseSum {
		avg := sum / time.Duration(p.count)
		s.PhaseAvg[name] = avg
		if mean > 0 {
			s.PhasePct[name] = float64(avg) / mean * 100
		}
	}
	return s
}

// attrs flattens the stats for logging. Phases under 0.1% are left out.
func (s PerfStats) attrs() []slog.Attr {
	out := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("std_tick_us", s.StdTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", math.Round(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		out = append(out, slog.Float64("fps", math.Round(s.FPS)))
	}
	for _, name := range phaseOrder {
		if pct := s.PhasePct[name]; pct > 0.1 {
			out = append(out, slog.Float64(name+"_pct", math.Round(pct*10)/10))
		}
	}
	return out
}

// LogStats writes the stats as one "perf" record on the default logger.
func (s PerfStats) LogStats() {
	slog.LogAttrs(context.Background(), slog.LevelInfo, "perf", s.attrs()...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	return slog.GroupValue(s.attrs()...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	StdTickUS    int64   `csv:"std_tick_us"`
	P95TickUS    int64   `csv:"p95_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	PlayerPct    float64 `csv:"player_pct"`
	AgentsPct    float64 `csv:"agents_pct"`
	HazardPct    float64 `csv:"hazard_pct"`
	MetersPct    float64 `csv:"meters_pct"`
	ObjectivePct float64 `csv:"objective_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// phaseColumns binds each phase to its perf.csv column.
var phaseColumns = []struct {
	phase string
	col   func(*PerfStatsCSV) *float64
}{
	{PhasePlayer, func(r *PerfStatsCSV) *float64 { return &r.PlayerPct }},
	{PhaseAgents, func(r *PerfStatsCSV) *float64 { return &r.AgentsPct }},
	{PhaseHazard, func(r *PerfStatsCSV) *float64 { return &r.HazardPct }},
	{PhaseMeters, func(r *PerfStatsCSV) *float64 { return &r.MetersPct }},
	{PhaseObjective, func(r *PerfStatsCSV) *float64 { return &r.ObjectivePct }},
	{PhaseTelemetry, func(r *PerfStatsCSV) *float64 { return &r.TelemetryPct }},
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	r := PerfStatsCSV{
		WindowEnd:   windowEnd,
		AvgTickUS:   s.AvgTickDuration.Microseconds(),
		MinTickUS:   s.MinTickDuration.Microseconds(),
		MaxTickUS:   s.MaxTickDuration.Microseconds(),
		StdTickUS:   s.StdTickDuration.Microseconds(),
		P95TickUS:   s.P95TickDuration.Microseconds(),
		TicksPerSec: s.TicksPerSecond,
		FPS:         s.FPS,
	}
	for _, c := range phaseColumns {
		*c.col(&r) = s.PhasePct[c.phase]
	}
	return r
}
