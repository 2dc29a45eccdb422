package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileOf_DoesNotReorderInput(t *testing.T) {
	values := []float64{9, 1, 5}
	if got := PercentileOf(values, 0.5); got != 5 {
		t.Errorf("median = %v, want 5", got)
	}
	if values[0] != 9 {
		t.Error("input slice was sorted in place")
	}
}

func TestMeanMin(t *testing.T) {
	mean, minVal := MeanMin([]float64{100, 80, 60})
	if math.Abs(mean-80) > 1e-9 || minVal != 60 {
		t.Errorf("got mean=%v min=%v, want 80/60", mean, minVal)
	}

	mean, minVal = MeanMin(nil)
	if mean != 0 || minVal != 0 {
		t.Error("empty input should return zeros")
	}
}
