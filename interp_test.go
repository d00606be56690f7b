package latticenoise

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothstepEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0))
	assert.Equal(t, 1.0, Smoothstep(1))
	assert.InDelta(t, 0.5, Smoothstep(0.5), 1e-15)
}

func TestSmoothstepClamps(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(-3.7))
	assert.Equal(t, 1.0, Smoothstep(1.5))
}

func TestSmoothstepSymmetry(t *testing.T) {
	for i := 0; i <= 100; i++ {
		u := float64(i) / 100
		assert.InDelta(t, 1.0, Smoothstep(u)+Smoothstep(1-u), 1e-12, "t=%v", u)
	}
}

func TestSmoothstepMonotone(t *testing.T) {
	prev := Smoothstep(0)
	for i := 1; i <= 1000; i++ {
		u := float64(i) / 1000
		s := Smoothstep(u)
		if s < prev {
			t.Fatalf("smoothstep decreased at t=%v: %v < %v", u, s, prev)
		}
		prev = s
	}
}

func TestFractional(t *testing.T) {
	frac := Fractional([]float64{1.3, -0.25, 5.0})
	require.Len(t, frac, 3)
	assert.InDelta(t, 0.3, frac[0], 1e-12)
	assert.InDelta(t, 0.75, frac[1], 1e-12)
	assert.InDelta(t, 0.0, frac[2], 1e-12)
}

func TestInterpolateCornerCount(t *testing.T) {
	tests := []struct {
		name    string
		corners int
		axes    int
		wantErr bool
	}{
		{"1d ok", 2, 1, false},
		{"2d ok", 4, 2, false},
		{"3d ok", 8, 3, false},
		{"too few", 3, 2, true},
		{"too many", 5, 2, true},
		{"empty", 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corners := make([]float64, tt.corners)
			point := make([]float64, tt.axes)
			_, err := Interpolate(corners, point)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrConfiguration), "want ErrConfiguration, got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInterpolate1DClosedForm(t *testing.T) {
	corners := []float64{2, -4}
	got, err := Interpolate(corners, []float64{0.3})
	require.NoError(t, err)

	want := 2 + Smoothstep(0.3)*(-4-2)
	assert.InDelta(t, want, got, 1e-12)
}

func TestInterpolateCellCenterIsAverage(t *testing.T) {
	// At t=0.5 every blend weight is exactly 0.5, so the result is the
	// plain average of the corners.
	corners := []float64{1, 2, 3, 4}
	got, err := Interpolate(corners, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)
}

func TestInterpolateExactNodeSelectsCornerZero(t *testing.T) {
	corners := []float64{7, -1, 3, 9}
	got, err := Interpolate(corners, []float64{2.0, 5.0})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got, "zero fractional coordinates must select corner 0 unblended")
}

func TestInterpolateBilinearPairing(t *testing.T) {
	// Corner i offsets axis d by (i >> d) & 1, so moving only along axis
	// 0 must blend corner 0 toward corner 1, and moving only along axis
	// 1 must blend corner 0 toward corner 2.
	corners := []float64{10, 20, 30, 40}

	alongX, err := Interpolate(corners, []float64{0.25, 0.0})
	require.NoError(t, err)
	assert.InDelta(t, 10+Smoothstep(0.25)*(20-10), alongX, 1e-12)

	alongY, err := Interpolate(corners, []float64{0.0, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 10+Smoothstep(0.25)*(30-10), alongY, 1e-12)
}

func TestInterpolateBoundedByCorners(t *testing.T) {
	rng := rand.New(rand.NewSource(77))

	for trial := 0; trial < 200; trial++ {
		dim := 1 + rng.Intn(4)
		corners := make([]float64, 1<<dim)
		lo, hi := corners[0], corners[0]
		for i := range corners {
			corners[i] = rng.Float64()*4 - 2
			if i == 0 || corners[i] < lo {
				lo = corners[i]
			}
			if i == 0 || corners[i] > hi {
				hi = corners[i]
			}
		}
		point := make([]float64, dim)
		for d := range point {
			point[d] = rng.Float64()
		}

		got, err := Interpolate(corners, point)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, lo-1e-12)
		assert.LessOrEqual(t, got, hi+1e-12)
	}
}

func TestScaleValue(t *testing.T) {
	assert.Equal(t, 1.0, ScaleValue(0.5, 2))
	assert.Equal(t, 0.5, ScaleValue(0.5, 1))
	assert.Equal(t, 0.0, ScaleValue(0.5, 0))
	assert.Equal(t, -0.25, ScaleValue(0.5, -0.5))
}
