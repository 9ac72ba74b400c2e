package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallestPositiveRoot(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    float64
		ok      bool
	}{
		{"two positive roots", 1, -5, 6, 2, true},
		{"one positive one negative", 1, 1, -6, 2, true},
		{"both negative", 1, 5, 6, 0, false},
		{"complex roots", 1, 0, 1, 0, false},
		{"pure square", 4, 0, -1, 0.5, true},
		{"linear", 0, 2, -3, 1.5, true},
		{"degenerate", 0, 0, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SmallestPositiveRoot(tt.a, tt.b, tt.c)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-12)
			} else {
				assert.True(t, math.IsNaN(got))
			}
		})
	}
}

func TestBisect(t *testing.T) {
	x, ok := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, x, 1e-10)

	_, ok = Bisect(func(x float64) float64 { return x*x + 1 }, -1, 1, 1e-12)
	assert.False(t, ok)
}

func TestGoldenSection(t *testing.T) {
	m := GoldenSection(func(x float64) float64 { return (x - 3.3) * (x - 3.3) }, 2, 50, 1e-10)
	assert.True(t, m.Converged)
	assert.InDelta(t, 3.3, m.X, 1e-6)

	// Minimum on the lower bound
	m = GoldenSection(func(x float64) float64 { return x }, 2, 10, 1e-10)
	assert.Equal(t, 2.0, m.X)
}

func TestWaveNumber(t *testing.T) {
	g := 9.80665

	// Deep water limit
	k, ok := WaveNumber(10, 5000, g)
	require.True(t, ok)
	omega := 2 * math.Pi / 10
	assert.InEpsilon(t, omega*omega/g, k, 1e-9)

	// Finite depth satisfies the dispersion relation
	k, ok = WaveNumber(12, 200, g)
	require.True(t, ok)
	omega = 2 * math.Pi / 12
	assert.InEpsilon(t, omega*omega, g*k*math.Tanh(k*200), 1e-9)

	k, ok = WaveNumber(0, 200, g)
	assert.True(t, ok)
	assert.Zero(t, k)
}

func TestGoldenSectionIterationCap(t *testing.T) {
	// A negative tolerance can never be met
	m := GoldenSection(func(x float64) float64 { return (x - 3.3) * (x - 3.3) }, 2, 50, -1)
	assert.False(t, m.Converged)
	assert.Equal(t, MaxIterations, m.Iterations)
	assert.InDelta(t, 3.3, m.X, 1e-6)
}
