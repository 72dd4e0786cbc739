package velocity

import (
	"errors"
	"fmt"
	"math"

	"github.com/igra9/sot-tools/math3d"
	"github.com/igra9/sot-tools/powerlaw"
	"github.com/igra9/sot-tools/signal"
	"gonum.org/v1/gonum/mat"
)

const (

	// Smallest magnitude any component of the output may have. Anything
	// smaller is replaced by this (positive) value, so that a zero can never
	// be mistaken for an uncomputed output downstream.
	Floor = 0.0001
)

var (
	// ErrUpstreamUnavailable means that one of the inputs could not be read
	// or did not have the expected shape.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNumericDegeneracy means that the vector field could not produce a
	// finite velocity.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

// Fallback is the command substituted whenever the vector field can't be
// evaluated: a nudge forwards.
var Fallback = powerlaw.Command{VX: Floor, VY: 0.0, VW: 0.0}

// Clamp replaces every component whose magnitude is below the floor with the
// positive floor. The sign of tiny negative values is not preserved.
func Clamp(c powerlaw.Command) powerlaw.Command {
	clamp := func(v float64) float64 {
		if math.Abs(v) < Floor {
			return Floor
		}
		return v
	}

	return powerlaw.Command{
		VX: clamp(c.VX),
		VY: clamp(c.VY),
		VW: clamp(c.VW),
	}
}

// SafeEvaluate reads the inputs at tick t, evaluates the model, and clamps the
// result. It never fails: if anything goes wrong, the Fallback command is
// returned (clamped) along with an error describing what happened, which is
// only of diagnostic interest.
func SafeEvaluate(m *powerlaw.Model, t int, period float64, waist signal.Signal[mat.Vector], left, right signal.Signal[mat.Matrix]) (powerlaw.Command, error) {
	c, err := evaluate(m, t, period, waist, left, right)
	if err != nil {
		return Clamp(Fallback), err
	}

	return Clamp(c), nil
}

func evaluate(m *powerlaw.Model, t int, period float64, waist signal.Signal[mat.Vector], left, right signal.Signal[mat.Matrix]) (c powerlaw.Command, err error) {
	s, err := fetch(t, period, waist, left, right)
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	if m == nil {
		return c, fmt.Errorf("%w: no model", ErrNumericDegeneracy)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrNumericDegeneracy, r)
		}
	}()

	c = m.Evaluate(s)
	if !c.Finite() {
		return c, fmt.Errorf("%w: %s with %s", ErrNumericDegeneracy, c, m.Parameters())
	}

	return c, nil
}

// fetch reads the three inputs at tick t and extracts a sample from them. The
// gonum accessors panic on bad indices, so those are recovered too.
func fetch(t int, period float64, waist signal.Signal[mat.Vector], left, right signal.Signal[mat.Matrix]) (s powerlaw.Sample, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if waist == nil || left == nil || right == nil {
		return s, errors.New("missing input")
	}

	rf, err := right.Access(t)
	if err != nil {
		return s, err
	}

	lf, err := left.Access(t)
	if err != nil {
		return s, err
	}

	w, err := waist.Access(t)
	if err != nil {
		return s, err
	}

	s.Tick = t
	s.Time = float64(t) * period

	if s.WaistHeading, err = math3d.WaistHeading(w); err != nil {
		return s, fmt.Errorf("waist: %w", err)
	}

	if s.LeftFootX, s.LeftFootY, err = math3d.Translation(lf); err != nil {
		return s, fmt.Errorf("left foot: %w", err)
	}

	if s.RightFootX, s.RightFootY, err = math3d.Translation(rf); err != nil {
		return s, fmt.Errorf("right foot: %w", err)
	}

	return s, nil
}
