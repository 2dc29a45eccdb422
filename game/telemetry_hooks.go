package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/reefdive/telemetry"
)

// recordTelemetry samples the tick and flushes the stats window when due.
func (g *Game) recordTelemetry(dt float64) {
	g.collector.RecordTick(telemetry.Sample{
		Health:    g.player.Health,
		Oxygen:    g.player.Oxygen,
		Boost:     g.player.Boost,
		Depth:     math.Max(0, g.arena.WaterSurface()-g.player.Position[1]),
		Submerged: g.submerged,
		Boosting:  g.player.BoostActive,
	}, dt)

	if g.collector.ShouldFlush() {
		g.flushTelemetry()
	}
}

// flushTelemetry writes the window stats, perf stats and pending events.
func (g *Game) flushTelemetry() {
	stats := g.collector.Flush(telemetry.SessionState{
		Tick:            g.tick,
		State:           g.state.String(),
		DistinctSpecies: g.collected.Distinct(),
		TotalCaught:     g.collected.Total(),
		AgentsLeft:      len(g.benign) + len(g.hostile),
	})
	perfStats := g.perfCollector.Stats()

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager == nil {
		g.unwritten = g.unwritten[:0]
		return
	}
	g.warnOnce("session", g.outputManager.WriteSession(stats))
	g.warnOnce("perf", g.outputManager.WritePerf(perfStats, stats.WindowEndTick))
	g.warnOnce("events", g.outputManager.WriteEvents(g.unwritten))
	g.unwritten = g.unwritten[:0]
}

// warnOnce logs the first failure of each sink; later failures are dropped.
func (g *Game) warnOnce(sink string, err error) {
	if err == nil || g.sinkWarned[sink] {
		return
	}
	g.sinkWarned[sink] = true
	slog.Warn("telemetry write failed", "sink", sink, "error", err)
}
