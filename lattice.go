package latticenoise

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// MaxDimension is the highest dimension count a lattice supports.
const MaxDimension = 10

// Gradient is the pseudo-random vector stored at one lattice
// intersection. For dimension 1 it holds a single slope in [-1, 1]; for
// higher dimensions it is a unit-length vector.
type Gradient []float64

// latticeKey is a fixed-size, value-comparable coordinate tuple. Axes
// beyond the lattice dimension stay zero. int32 components keep every
// materializable axis length exact.
type latticeKey [MaxDimension]int32

func keyFor(coords []int) latticeKey {
	var k latticeKey
	for i, c := range coords {
		k[i] = int32(c)
	}
	return k
}

// Lattice maps integer grid intersections to gradients. It is built once
// by BuildLattice and never mutated afterwards, so concurrent reads are
// safe without locking.
type Lattice struct {
	dim   int
	shape []int
	grads map[latticeKey]Gradient
}

// BuildLattice generates a gradient for every integer coordinate in
// [0, gridShape[0]] × … × [0, gridShape[dimension-1]]. Gradients are
// drawn from a stream seeded only by seed, in a fixed row-major
// traversal order, so the same (dimension, gridShape, seed) triple
// always yields a bit-for-bit identical lattice.
func BuildLattice(dimension int, gridShape []int, seed int64) (*Lattice, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: dimension must be positive, got %d", ErrConfiguration, dimension)
	}
	if dimension > MaxDimension {
		return nil, fmt.Errorf("%w: dimension %d exceeds the maximum of %d", ErrConfiguration, dimension, MaxDimension)
	}
	if len(gridShape) != dimension {
		return nil, fmt.Errorf("%w: grid shape has %d axes, want %d", ErrConfiguration, len(gridShape), dimension)
	}
	for i, cells := range gridShape {
		if cells < 1 {
			return nil, fmt.Errorf("%w: axis %d needs a positive cell count, got %d", ErrConfiguration, i, cells)
		}
	}

	size := 1
	for _, cells := range gridShape {
		size *= cells + 1
	}

	lat := &Lattice{
		dim:   dimension,
		shape: append([]int(nil), gridShape...),
		grads: make(map[latticeKey]Gradient, size),
	}

	// The stream is local to this build; nothing else may advance it.
	rng := rand.New(rand.NewSource(seed))

	coords := make([]int, dimension)
	for {
		lat.grads[keyFor(coords)] = drawGradient(rng, dimension)

		// Row-major odometer advance, last axis fastest.
		axis := dimension - 1
		for axis >= 0 {
			coords[axis]++
			if coords[axis] <= gridShape[axis] {
				break
			}
			coords[axis] = 0
			axis--
		}
		if axis < 0 {
			break
		}
	}

	return lat, nil
}

// drawGradient draws one gradient of the given dimension. Components are
// uniform in [-1, 1); vectors of dimension 2 and up are normalized to
// unit length, except an exactly-zero draw which is stored as-is.
func drawGradient(rng *rand.Rand, dimension int) Gradient {
	g := make(Gradient, dimension)
	for i := range g {
		g[i] = rng.Float64()*2 - 1
	}
	if dimension == 1 {
		// A 1-D gradient is a plain slope; normalizing would collapse
		// every draw to ±1.
		return g
	}
	if norm := floats.Norm(g, 2); norm != 0 {
		floats.Scale(1/norm, g)
	}
	return g
}

// Dimension returns the number of axes the lattice spans.
func (l *Lattice) Dimension() int { return l.dim }

// GridShape returns a copy of the per-axis cell counts.
func (l *Lattice) GridShape() []int { return append([]int(nil), l.shape...) }

// Size returns the number of stored gradients, ∏(gridShape[i]+1).
func (l *Lattice) Size() int { return len(l.grads) }

// LookupGradient returns the gradient at the given integer coordinates.
// The second result is false when the tuple lies outside the lattice;
// probing callers can treat absence as a non-error.
func (l *Lattice) LookupGradient(coords []int) (Gradient, bool) {
	if len(coords) != l.dim {
		return nil, false
	}
	for i, c := range coords {
		if c < 0 || c > l.shape[i] {
			return nil, false
		}
	}
	g, ok := l.grads[keyFor(coords)]
	return g, ok
}
