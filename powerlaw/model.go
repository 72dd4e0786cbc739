// Package powerlaw implements a velocity field whose integral curves converge
// onto an ellipse, traversed according to the two-thirds power law.
//
// The field is evaluated at the midpoint between the feet, in a frame centered
// on the nominal support region. Positions are first normalized by the ellipse
// half axes, so that the limit cycle becomes the unit circle; a Hopf-style
// radial term pulls the point onto it at a rate proportional to Gamma, while a
// tangential term advances it around the cycle at an angular rate of
// Beta·(κ/κ₀)^(2/3), where κ is the curvature of the ellipse at the current
// phase and κ₀ that of the circle of equal area. Far from the center (beyond
// ZeroCurvatureRadius) an extra curvature-weighted term pulls the point back.
//
// The planar result is expressed in the waist frame, and the third component
// turns the waist toward the direction of travel.
package powerlaw

import (
	"fmt"
	"math"

	"github.com/igra9/sot-tools/math3d"
)

const (

	// Exponent relating angular velocity to curvature.
	exponent = 2.0 / 3.0

	// Normalized radius below which the phase is considered undefined, and is
	// taken from time instead.
	minRadius = 1e-9
)

// Sample is the kinematic state of the biped at a single tick.
type Sample struct {
	Tick int

	// Time in seconds.
	Time float64

	WaistHeading float64
	LeftFootX    float64
	LeftFootY    float64
	RightFootX   float64
	RightFootY   float64
}

// Midpoint returns the planar point halfway between the feet.
func (s Sample) Midpoint() (float64, float64) {
	return (s.LeftFootX + s.RightFootX) / 2, (s.LeftFootY + s.RightFootY) / 2
}

// Command is a velocity: two planar components in the waist frame, and a
// rotation about the vertical axis.
type Command struct {
	VX float64
	VY float64
	VW float64
}

func (c Command) String() string {
	return fmt.Sprintf("&Vel{x=%+.4f y=%+.4f w=%+.4f}", c.VX, c.VY, c.VW)
}

// Array returns the components in order.
func (c Command) Array() [3]float64 {
	return [3]float64{c.VX, c.VY, c.VW}
}

// Finite returns true if no component is NaN or infinite.
func (c Command) Finite() bool {
	for _, v := range c.Array() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Model is a vector field bound to one set of parameters. It is never
// modified after construction; to change the parameters, build a new one.
type Model struct {
	p Parameters

	// Curvature of the circle with the same area as the ellipse.
	k0 float64
}

func New(p Parameters) *Model {
	return &Model{
		p:  p,
		k0: 1 / math.Sqrt(p.RadiusX*p.RadiusY),
	}
}

func (m *Model) Parameters() Parameters {
	return m.p
}

// Curvature returns the curvature of the ellipse at the point with the given
// (normalized) phase.
func (m *Model) Curvature(phase float64) float64 {
	s := math.Sin(phase)
	c := math.Cos(phase)
	rx := m.p.RadiusX
	ry := m.p.RadiusY
	d := (rx * rx * s * s) + (ry * ry * c * c)
	return (rx * ry) / math.Pow(d, 1.5)
}

// AngularRate returns the rate at which the phase advances around the cycle.
func (m *Model) AngularRate(phase float64) float64 {
	return m.p.Beta * math.Pow(m.Curvature(phase)/m.k0, exponent)
}

// Evaluate returns the velocity for the given sample. Degenerate parameters
// (e.g. zero radii) produce a non-finite command rather than an error; it's up
// to the caller to check.
func (m *Model) Evaluate(s Sample) Command {
	px, py := s.Midpoint()

	u := px / m.p.RadiusX
	v := py / m.p.RadiusY
	r := math.Hypot(u, v)

	var phase, du, dv float64
	if r < minRadius {

		// Sitting on the center, where every direction is as good as another.
		// Let the phase sweep with time, and push outwards along it.
		phase = m.p.Beta * s.Time
		du = m.p.Gamma * math.Cos(phase)
		dv = m.p.Gamma * math.Sin(phase)
	} else {

		// Radial convergence onto the unit circle, plus rotation around it.
		phase = math.Atan2(v, u)
		radial := m.p.Gamma * (1 - r*r)
		w := m.AngularRate(phase)
		du = (radial * u) - (w * v)
		dv = (radial * v) + (w * u)
	}

	// Back to meters.
	dx := m.p.RadiusX * du
	dy := m.p.RadiusY * dv

	// Pull back towards the center when far away, harder where the ellipse is
	// more curved. Nothing inside the zero curvature radius.
	d := math.Hypot(px, py)
	if d > m.p.ZeroCurvatureRadius {
		k := m.p.Gamma * m.Curvature(phase) * (d - m.p.ZeroCurvatureRadius) / d
		dx -= k * px
		dy -= k * py
	}

	// Turn towards the direction of travel.
	vw := m.p.Beta * math3d.WrapAngle(math.Atan2(dy, dx)-s.WaistHeading)

	// Rotate into the waist frame.
	ch := math.Cos(s.WaistHeading)
	sh := math.Sin(s.WaistHeading)

	return Command{
		VX: (ch * dx) + (sh * dy),
		VY: (-sh * dx) + (ch * dy),
		VW: vw,
	}
}
