// Package telemetry computes and records statistics about the particle cloud.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	Tick       int32   `csv:"tick"`
	SimTimeSec float64 `csv:"sim_time"`
	Count      int     `csv:"count"`

	MeanX float64 `csv:"mean_x"`
	MeanY float64 `csv:"mean_y"`
	StdX  float64 `csv:"std_x"`
	StdY  float64 `csv:"std_y"`

	// Bounding box of the cloud. Entities walk unbounded, so these can
	// leave the screen.
	MinX float64 `csv:"min_x"`
	MaxX float64 `csv:"max_x"`
	MinY float64 `csv:"min_y"`
	MaxY float64 `csv:"max_y"`

	// Walk activity during the window, from per-entity per-tick
	// displacement magnitudes.
	MeanStep float64 `csv:"mean_step"`
	StepP50  float64 `csv:"step_p50"`
	StepP90  float64 `csv:"step_p90"`
}

// Collector accumulates per-tick walk measurements for the current stats
// window. Feed it one displacement magnitude per walking entity per tick;
// Flush folds them into WindowStats and starts the next window.
type Collector struct {
	steps []float64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordStep records the displacement magnitude of one entity for one tick.
func (c *Collector) RecordStep(mag float64) {
	c.steps = append(c.steps, mag)
}

// Pending returns the number of buffered step samples.
func (c *Collector) Pending() int {
	return len(c.steps)
}

// Flush computes window stats from the position samples and the buffered
// step magnitudes, then resets the step buffer for the next window.
func (c *Collector) Flush(tick int32, dt float64, xs, ys []float64) WindowStats {
	ws := ComputePositionStats(tick, dt, xs, ys)

	if len(c.steps) > 0 {
		ws.MeanStep = stat.Mean(c.steps, nil)

		sorted := make([]float64, len(c.steps))
		copy(sorted, c.steps)
		sort.Float64s(sorted)
		ws.StepP50 = Percentile(sorted, 0.50)
		ws.StepP90 = Percentile(sorted, 0.90)
	}

	c.steps = c.steps[:0]
	return ws
}

// ComputePositionStats builds WindowStats from position samples taken at the
// given tick. dt is the simulated seconds per tick. Returns zero stats for
// an empty cloud.
func ComputePositionStats(tick int32, dt float64, xs, ys []float64) WindowStats {
	ws := WindowStats{
		Tick:       tick,
		SimTimeSec: float64(tick) * dt,
		Count:      len(xs),
	}
	if len(xs) == 0 {
		return ws
	}

	ws.MeanX = stat.Mean(xs, nil)
	ws.MeanY = stat.Mean(ys, nil)
	ws.StdX = stat.StdDev(xs, nil)
	ws.StdY = stat.StdDev(ys, nil)
	ws.MinX = floats.Min(xs)
	ws.MaxX = floats.Max(xs)
	ws.MinY = floats.Min(ys)
	ws.MaxY = floats.Max(ys)

	return ws
}

// Percentile calculates the p-th percentile of a sorted slice.
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

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Log emits the window stats through slog.
func (ws WindowStats) Log() {
	slog.Info("window stats",
		"tick", ws.Tick,
		"sim_time", ws.SimTimeSec,
		"count", ws.Count,
		"mean_x", ws.MeanX,
		"mean_y", ws.MeanY,
		"std_x", ws.StdX,
		"std_y", ws.StdY,
		"mean_step", ws.MeanStep,
	)
}
