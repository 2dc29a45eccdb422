package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`
	WindowSec     float64 `csv:"window_sec"`
	State         string  `csv:"state"`

	// Meters sampled every tick
	HealthMean float64 `csv:"health_mean"`
	HealthMin  float64 `csv:"health_min"`
	OxygenMean float64 `csv:"oxygen_mean"`
	OxygenMin  float64 `csv:"oxygen_min"`
	DepthMean  float64 `csv:"depth_mean"`
	DepthP90   float64 `csv:"depth_p90"`

	SubmergedFrac float64 `csv:"submerged_frac"`
	BoostingFrac  float64 `csv:"boosting_frac"`

	// Events during window
	Bites         int     `csv:"bites"`
	DamageTaken   float64 `csv:"damage_taken"`
	Catches       int     `csv:"catches"`
	NewSpecies    int     `csv:"new_species"`
	BoostDepleted int     `csv:"boost_depleted"`
	Surfacings    int     `csv:"surfacings"`
	GameOvers     int     `csv:"game_overs"`
	Victories     int     `csv:"victories"`
	Resets        int     `csv:"resets"`

	// Session totals at window end
	DistinctSpecies int `csv:"distinct_species"`
	TotalCaught     int `csv:"total_caught"`
	AgentsLeft      int `csv:"agents_left"`
}

// MeanMin returns the mean and minimum of values, or zeros when empty.
func MeanMin(values []float64) (mean, minVal float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return stat.Mean(values, nil), floats.Min(values)
}

// Percentile calculates the p-th percentile of a sorted slice using linear interpolation.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// PercentileOf sorts a copy of values and returns its p-th percentile.
func PercentileOf(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return Percentile(sorted, p)
}

// LogStats logs the window summary.
func (s WindowStats) LogStats() {
	slog.Info("session",
		"tick", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"state", s.State,
		"health_mean", s.HealthMean,
		"oxygen_min", s.OxygenMin,
		"depth_mean", s.DepthMean,
		"bites", s.Bites,
		"catches", s.Catches,
		"species", s.DistinctSpecies,
	)
}
