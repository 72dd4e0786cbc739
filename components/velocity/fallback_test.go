package velocity

import (
	"math"
	"testing"

	"github.com/igra9/sot-tools/math3d"
	"github.com/igra9/sot-tools/powerlaw"
	"github.com/igra9/sot-tools/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestClamp(t *testing.T) {
	type eg struct {
		in  powerlaw.Command
		out powerlaw.Command
	}

	examples := []eg{
		{powerlaw.Command{VX: 0, VY: 0, VW: 0}, powerlaw.Command{VX: Floor, VY: Floor, VW: Floor}},
		{powerlaw.Command{VX: 1, VY: -1, VW: 0.5}, powerlaw.Command{VX: 1, VY: -1, VW: 0.5}},
		{powerlaw.Command{VX: -0.00005, VY: 0.00009, VW: -0.0001}, powerlaw.Command{VX: Floor, VY: Floor, VW: -0.0001}},
		{powerlaw.Command{VX: 0.0001, VY: -0.2, VW: 1e-12}, powerlaw.Command{VX: 0.0001, VY: -0.2, VW: Floor}},
	}

	for i, x := range examples {
		assert.Equal(t, x.out, Clamp(x.in), "example %d", i+1)
	}
}

func TestSafeEvaluate(t *testing.T) {
	m := powerlaw.New(walking)
	c, err := SafeEvaluate(m, 100, DefaultPeriod, waist(0), foot("lf", 0.1, 0.05), foot("rf", 0.1, -0.05))
	require.NoError(t, err)

	want := Clamp(m.Evaluate(powerlaw.Sample{
		Tick:       100,
		Time:       0.5,
		LeftFootX:  0.1,
		LeftFootY:  0.05,
		RightFootX: 0.1,
		RightFootY: -0.05,
	}))
	assert.Equal(t, want, c)
	assert.Greater(t, c.VX, 0.0)
	assert.True(t, aboveFloor(c))
}

func TestSafeEvaluatePeriod(t *testing.T) {
	m := powerlaw.New(walking)

	// At the center, the direction depends on time, so the period matters.
	a, err := SafeEvaluate(m, 100, 0.005, waist(0), foot("lf", 0, 0.05), foot("rf", 0, -0.05))
	require.NoError(t, err)
	b, err := SafeEvaluate(m, 100, 0.01, waist(0), foot("lf", 0, 0.05), foot("rf", 0, -0.05))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSafeEvaluateFallback(t *testing.T) {
	m := powerlaw.New(walking)
	good := foot("good", 0.1, 0.05)

	type eg struct {
		name  string
		waist signal.Signal[mat.Vector]
		left  signal.Signal[mat.Matrix]
		right signal.Signal[mat.Matrix]
	}

	examples := []eg{
		{"left offline", waist(0), brokenFoot("lf"), good},
		{"right offline", waist(0), good, brokenFoot("rf")},
		{"waist unplugged", signal.NewInput[mat.Vector]("waist"), good, good},
		{"short waist", signal.NewConst[mat.Vector]("waist", mat.NewVecDense(3, nil)), good, good},
		{"nil waist value", signal.NewConst[mat.Vector]("waist", nil), good, good},
		{"3x3 foot", waist(0), signal.NewConst[mat.Matrix]("lf", mat.NewDense(3, 3, nil)), good},
		{"nil input", waist(0), nil, good},
	}

	for _, x := range examples {
		c, err := SafeEvaluate(m, 7, DefaultPeriod, x.waist, x.left, x.right)
		assert.ErrorIs(t, err, ErrUpstreamUnavailable, x.name)
		assert.Equal(t, powerlaw.Command{VX: 0.0001, VY: Floor, VW: Floor}, c, x.name)
		assert.True(t, aboveFloor(c), x.name)
	}
}

// A matrix which claims to be 4x4, but panics when read.
type liar struct {
	mat.Matrix
}

func (liar) Dims() (int, int)    { return 4, 4 }
func (liar) At(i, j int) float64 { panic("liar") }
func (l liar) T() mat.Matrix     { return l }

func TestSafeEvaluateRecoversUpstreamPanic(t *testing.T) {
	m := powerlaw.New(walking)
	lf := signal.NewConst[mat.Matrix]("lf", liar{})

	c, err := SafeEvaluate(m, 1, DefaultPeriod, waist(0), lf, foot("rf", 0, 0))
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, Clamp(Fallback), c)
}

func TestSafeEvaluateDegenerate(t *testing.T) {
	examples := []*powerlaw.Model{
		nil,
		powerlaw.New(powerlaw.Parameters{}),
		powerlaw.New(powerlaw.Parameters{RadiusX: 0, RadiusY: 0.2, Gamma: 1, Beta: 1, ZeroCurvatureRadius: 2}),
		powerlaw.New(powerlaw.Parameters{RadiusX: 0.3, RadiusY: 0.2, Gamma: math.Inf(1), Beta: 1, ZeroCurvatureRadius: 2}),
	}

	for i, m := range examples {
		c, err := SafeEvaluate(m, 100, DefaultPeriod, waist(0), foot("lf", 0.1, 0.05), foot("rf", 0.1, -0.05))
		assert.ErrorIs(t, err, ErrNumericDegeneracy, "example %d", i+1)
		assert.Equal(t, Clamp(Fallback), c, "example %d", i+1)
	}
}

func TestSafeEvaluateAlwaysAboveFloor(t *testing.T) {
	m := powerlaw.New(walking)

	for _, x := range []float64{-1, -0.3, 0, 0.3, 1} {
		for _, y := range []float64{-1, -0.2, 0, 0.2, 1} {
			for _, h := range []float64{-math.Pi, 0, 0.5, math.Pi} {
				lf := signal.NewConst[mat.Matrix]("lf", math3d.Homogeneous(x, y+0.05, 0, h))
				rf := signal.NewConst[mat.Matrix]("rf", math3d.Homogeneous(x, y-0.05, 0, h))
				c, err := SafeEvaluate(m, 42, DefaultPeriod, waist(h), lf, rf)
				require.NoError(t, err)
				assert.True(t, aboveFloor(c), "%s below floor at x=%.2f y=%.2f h=%.2f", c, x, y, h)
			}
		}
	}
}
