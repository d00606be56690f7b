// Package latticenoise generates continuous, seeded, band-limited
// pseudo-random scalar fields over 1- to 10-dimensional space using
// classic gradient noise: a precomputed lattice of pseudo-random
// gradients, per-cell dot products against the query offset, and
// smoothstepped multilinear interpolation. Values approximate [-1, 1],
// wrap seamlessly on every axis, and are deterministic per seed.
package latticenoise

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultGridSize is used when Config.GridSize is nil: a 3-dimensional
// field with 64 cells per axis. Returning a fresh slice keeps the
// package free of shared mutable state.
func defaultGridSize() []int { return []int{64, 64, 64} }

// Config configures a NoiseField.
type Config struct {
	// Seed drives the deterministic gradient stream. When nil, a seed is
	// drawn once from the process-wide random source.
	Seed *int64

	// GridSize lists the cell count per axis; its length fixes the
	// field's dimension (1 to 10 axes). When nil, defaultGridSize is
	// used.
	GridSize []int
}

// NoiseField answers noise queries against one immutable gradient
// lattice. All state is fixed at construction, so concurrent Noise calls
// against the same field are safe.
type NoiseField struct {
	dim      int
	gridSize []int
	seed     int64
	lattice  *Lattice
}

// New builds the gradient lattice for cfg and returns a ready field.
func New(cfg Config) (*NoiseField, error) {
	gridSize := cfg.GridSize
	if gridSize == nil {
		gridSize = defaultGridSize()
	}
	if len(gridSize) == 0 || len(gridSize) > MaxDimension {
		return nil, fmt.Errorf("%w: grid size must have between 1 and %d axes, got %d",
			ErrConfiguration, MaxDimension, len(gridSize))
	}

	seed := rand.Int63()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	lattice, err := BuildLattice(len(gridSize), gridSize, seed)
	if err != nil {
		return nil, err
	}

	return &NoiseField{
		dim:      len(gridSize),
		gridSize: append([]int(nil), gridSize...),
		seed:     seed,
		lattice:  lattice,
	}, nil
}

// Dimension returns the number of coordinates Noise expects.
func (f *NoiseField) Dimension() int { return f.dim }

// GridSize returns a copy of the per-axis cell counts.
func (f *NoiseField) GridSize() []int { return append([]int(nil), f.gridSize...) }

// Seed returns the seed the lattice was built with, whether configured
// or drawn at construction.
func (f *NoiseField) Seed() int64 { return f.seed }

// Lattice returns the field's gradient lattice for read-only inspection.
func (f *NoiseField) Lattice() *Lattice { return f.lattice }

// Noise returns the field value at the given coordinates. Each axis
// wraps modulo its grid size, so the field tiles seamlessly and any real
// input is valid. The result is nominally within [-1, 1] but is not
// clamped.
func (f *NoiseField) Noise(coordinates []float64) (float64, error) {
	if len(coordinates) != f.dim {
		return 0, fmt.Errorf("%w: got %d coordinates, field has %d dimensions",
			ErrDimensionMismatch, len(coordinates), f.dim)
	}

	wrapped := make([]float64, f.dim)
	for i, c := range coordinates {
		size := float64(f.gridSize[i])
		// Double mod keeps negatives in [0, size) and folds a rounded-up
		// size back to 0.
		wrapped[i] = math.Mod(math.Mod(c, size)+size, size)
	}

	scalars, err := CornerScalars(f.lattice, wrapped)
	if err != nil {
		return 0, err
	}
	return Interpolate(scalars, wrapped)
}
