package latticenoise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CornerScalars locates the lattice cell enclosing point and returns one
// scalar per cell corner: the dot product of the corner's gradient with
// the offset vector from the corner to the point. Corner i offsets axis
// d by (i >> d) & 1 and the result keeps that ordering; Interpolate
// depends on it to pair corners with the right axis weights.
func CornerScalars(lat *Lattice, point []float64) ([]float64, error) {
	if lat == nil {
		return nil, fmt.Errorf("%w: nil lattice", ErrConfiguration)
	}
	if len(point) != lat.dim {
		return nil, fmt.Errorf("%w: point has %d coordinates, lattice spans %d axes",
			ErrDimensionMismatch, len(point), lat.dim)
	}

	dim := lat.dim
	cell := make([]int, dim)
	for d, c := range point {
		cell[d] = int(math.Floor(c))
	}

	scalars := make([]float64, 1<<dim)
	corner := make([]int, dim)
	offset := make([]float64, dim)
	for i := range scalars {
		for d := 0; d < dim; d++ {
			corner[d] = cell[d] + (i>>d)&1
			offset[d] = point[d] - float64(corner[d])
		}
		grad, ok := lat.LookupGradient(corner)
		if !ok {
			return nil, fmt.Errorf("%w: no gradient at %v", ErrLatticeBounds, corner)
		}
		scalars[i] = floats.Dot(grad, offset)
	}
	return scalars, nil
}
