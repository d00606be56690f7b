package latticenoise

import (
	"fmt"
	"math"
)

// Smoothstep maps t to t²(3 − 2t) after clamping t to [0, 1]. The curve
// passes through (0, 0), (0.5, 0.5) and (1, 1) with zero derivative at
// both endpoints, so blended cells meet smoothly at lattice coordinates.
func Smoothstep(t float64) float64 {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// Fractional returns the per-axis position of point inside its cell:
// point[i] − floor(point[i]), each component in [0, 1).
func Fractional(point []float64) []float64 {
	frac := make([]float64, len(point))
	for i, c := range point {
		frac[i] = c - math.Floor(c)
	}
	return frac
}

// Interpolate blends 2^n corner scalars down to a single value using the
// point's fractional coordinates as smoothstepped blend weights. The
// corner ordering must match CornerScalars: corner i offsets axis d by
// (i >> d) & 1. Every blend weight stays in [0, 1], so the result is
// bounded by the minimum and maximum of cornerScalars.
func Interpolate(cornerScalars []float64, point []float64) (float64, error) {
	if len(cornerScalars) != 1<<len(point) {
		return 0, fmt.Errorf("%w: got %d corner scalars for %d axes, want %d",
			ErrConfiguration, len(cornerScalars), len(point), 1<<len(point))
	}
	return reduce(cornerScalars, Fractional(point)), nil
}

// reduce halves the scalar list one axis at a time. With the (i >> d) & 1
// corner layout, contiguous halves differ exactly in the highest
// remaining axis bit, so each level blends that axis with its own
// fractional coordinate.
func reduce(scalars []float64, fracs []float64) float64 {
	if len(scalars) == 1 {
		return scalars[0]
	}
	axis := len(fracs) - 1
	half := len(scalars) / 2
	lower := reduce(scalars[:half], fracs[:axis])
	upper := reduce(scalars[half:], fracs[:axis])
	s := Smoothstep(fracs[axis])
	return lower + s*(upper-lower)
}

// ScaleValue linearly rescales a noise value by factor. A factor of 1
// returns the value unchanged.
func ScaleValue(value, factor float64) float64 {
	return value * factor
}
