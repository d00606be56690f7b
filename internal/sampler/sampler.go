// Package sampler evaluates a noise field over a rectangular window of
// query points in parallel.
package sampler

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dgravesa/go-parallel/parallel"
)

// Field is the query surface the sampler needs; *latticenoise.NoiseField
// satisfies it. Noise must be safe for concurrent calls.
type Field interface {
	Noise(coordinates []float64) (float64, error)
}

// ProgressFunc is called after each completed row. It may be invoked
// from multiple goroutines concurrently.
type ProgressFunc func(completedRows, totalRows int)

// Grid describes a rectangular window of query points. Starting at
// Origin, AxisU varies across Width steps of StepU and AxisV varies
// across Height steps of StepV; every other axis stays at its Origin
// value. For 1-dimensional sweeps set Height to 1 and AxisV equal to
// AxisU.
type Grid struct {
	Origin []float64
	AxisU  int
	AxisV  int
	StepU  float64
	StepV  float64
	Width  int
	Height int

	// OnProgress, when set, is reported once per finished row.
	OnProgress ProgressFunc
}

func (g Grid) validate() error {
	if len(g.Origin) == 0 {
		return fmt.Errorf("sampler: origin must have at least one coordinate")
	}
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("sampler: window must be at least 1x1, got %dx%d", g.Width, g.Height)
	}
	if g.AxisU < 0 || g.AxisU >= len(g.Origin) {
		return fmt.Errorf("sampler: axis-u %d out of range for %d origin coordinates", g.AxisU, len(g.Origin))
	}
	if g.AxisV < 0 || g.AxisV >= len(g.Origin) {
		return fmt.Errorf("sampler: axis-v %d out of range for %d origin coordinates", g.AxisV, len(g.Origin))
	}
	if g.AxisU == g.AxisV && g.Height > 1 {
		return fmt.Errorf("sampler: axis-u and axis-v must differ when height > 1")
	}
	return nil
}

// Sample evaluates field at every window point and returns the values in
// row-major order, Height rows of Width columns. Rows are processed in
// parallel; the field's lattice is read-only, so no locking is needed.
func Sample(field Field, g Grid) ([]float64, error) {
	if field == nil {
		return nil, fmt.Errorf("sampler: nil field")
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	values := make([]float64, g.Width*g.Height)

	var (
		rows     atomic.Int64
		errOnce  sync.Once
		firstErr error
	)

	parallel.For(g.Height, func(v, _ int) {
		point := append([]float64(nil), g.Origin...)
		point[g.AxisV] = g.Origin[g.AxisV] + float64(v)*g.StepV
		for u := 0; u < g.Width; u++ {
			point[g.AxisU] = g.Origin[g.AxisU] + float64(u)*g.StepU
			value, err := field.Noise(point)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			values[v*g.Width+u] = value
		}
		if g.OnProgress != nil {
			g.OnProgress(int(rows.Add(1)), g.Height)
		}
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
