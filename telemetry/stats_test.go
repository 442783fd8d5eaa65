package telemetry

import (
	"math"
	"testing"
)

func TestComputePositionStats(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{10, 20, 30, 40, 50}

	ws := ComputePositionStats(120, 1.0/60.0, xs, ys)

	if ws.Tick != 120 {
		t.Errorf("tick = %d, want 120", ws.Tick)
	}
	if math.Abs(ws.SimTimeSec-2.0) > 1e-9 {
		t.Errorf("sim time = %v, want 2.0", ws.SimTimeSec)
	}
	if ws.Count != 5 {
		t.Errorf("count = %d, want 5", ws.Count)
	}
	if ws.MeanX != 3 || ws.MeanY != 30 {
		t.Errorf("means = (%v, %v), want (3, 30)", ws.MeanX, ws.MeanY)
	}
	if math.Abs(ws.StdX-math.Sqrt(2.5)) > 1e-9 {
		t.Errorf("std x = %v, want sqrt(2.5)", ws.StdX)
	}
	if ws.MinX != 1 || ws.MaxX != 5 || ws.MinY != 10 || ws.MaxY != 50 {
		t.Errorf("bounds = (%v..%v, %v..%v), want (1..5, 10..50)", ws.MinX, ws.MaxX, ws.MinY, ws.MaxY)
	}
}

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

func TestCollector_FlushComputesStepStats(t *testing.T) {
	c := NewCollector()
	for _, mag := range []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		c.RecordStep(mag)
	}
	if c.Pending() != 10 {
		t.Fatalf("pending = %d, want 10", c.Pending())
	}

	ws := c.Flush(60, 1.0/60.0, []float64{1, 2, 3}, []float64{4, 5, 6})

	if math.Abs(ws.MeanStep-5.5) > 1e-9 {
		t.Errorf("mean step = %v, want 5.5", ws.MeanStep)
	}
	if math.Abs(ws.StepP50-5.5) > 0.001 {
		t.Errorf("step p50 = %v, want 5.5", ws.StepP50)
	}
	if math.Abs(ws.StepP90-9.1) > 0.001 {
		t.Errorf("step p90 = %v, want 9.1", ws.StepP90)
	}

	// Position stats still come from the snapshot.
	if ws.MeanX != 2 || ws.MeanY != 5 {
		t.Errorf("means = (%v, %v), want (2, 5)", ws.MeanX, ws.MeanY)
	}

	// Flush starts the next window.
	if c.Pending() != 0 {
		t.Errorf("pending after flush = %d, want 0", c.Pending())
	}
}

func TestCollector_EmptyWindowHasZeroStepStats(t *testing.T) {
	c := NewCollector()
	ws := c.Flush(60, 1.0/60.0, []float64{1}, []float64{2})

	if ws.MeanStep != 0 || ws.StepP50 != 0 || ws.StepP90 != 0 {
		t.Errorf("step stats = (%v, %v, %v), want zeros for empty window", ws.MeanStep, ws.StepP50, ws.StepP90)
	}
}

func TestCollector_WindowsAreIndependent(t *testing.T) {
	c := NewCollector()

	c.RecordStep(2)
	c.RecordStep(2)
	first := c.Flush(60, 1.0/60.0, []float64{0}, []float64{0})

	c.RecordStep(4)
	c.RecordStep(4)
	second := c.Flush(120, 1.0/60.0, []float64{0}, []float64{0})

	if first.MeanStep != 2 {
		t.Errorf("first window mean step = %v, want 2", first.MeanStep)
	}
	if second.MeanStep != 4 {
		t.Errorf("second window mean step = %v, want 4 (first window leaked)", second.MeanStep)
	}
}

func TestComputePositionStats_Empty(t *testing.T) {
	ws := ComputePositionStats(10, 1.0/60.0, nil, nil)

	if ws.Count != 0 {
		t.Errorf("count = %d, want 0", ws.Count)
	}
	if ws.MeanX != 0 || ws.StdX != 0 || ws.MinX != 0 || ws.MaxX != 0 {
		t.Error("empty cloud should produce zero stats")
	}
}
