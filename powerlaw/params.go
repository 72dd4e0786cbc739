package powerlaw

import (
	"errors"
	"fmt"
	"math"
)

// DefaultZeroCurvatureRadius is the zero-curvature radius used whenever the
// ellipse is reinitialized at runtime.
const DefaultZeroCurvatureRadius = 2.0

var ErrBadParameters = errors.New("powerlaw: degenerate parameters")

// Parameters describe the limit cycle: an ellipse with half axes RadiusX and
// RadiusY, traversed at a rate governed by the power law.
type Parameters struct {
	RadiusX float64 `yaml:"radius_x"`
	RadiusY float64 `yaml:"radius_y"`

	// Rate at which positions off the ellipse converge onto it.
	Gamma float64 `yaml:"gamma"`

	// Rate of angular progression along the ellipse.
	Beta float64 `yaml:"beta"`

	// Distance from the ellipse center (in meters) below which the curvature
	// correction is switched off.
	ZeroCurvatureRadius float64 `yaml:"zero_curvature_radius"`
}

func (p Parameters) String() string {
	return fmt.Sprintf("Params{rx=%.3f ry=%.3f γ=%.3f β=%.3f rz=%.3f}", p.RadiusX, p.RadiusY, p.Gamma, p.Beta, p.ZeroCurvatureRadius)
}

// Validate returns an error if the parameters can't produce a usable vector
// field. Models are built from invalid parameters anyway; this is only used to
// warn about them.
func (p Parameters) Validate() error {
	vals := map[string]float64{
		"radius_x":              p.RadiusX,
		"radius_y":              p.RadiusY,
		"gamma":                 p.Gamma,
		"beta":                  p.Beta,
		"zero_curvature_radius": p.ZeroCurvatureRadius,
	}
	for _, k := range []string{"radius_x", "radius_y", "gamma", "beta", "zero_curvature_radius"} {
		if v := vals[k]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrBadParameters, k, v)
		}
	}

	if p.RadiusX <= 0 || p.RadiusY <= 0 {
		return fmt.Errorf("%w: radii must be positive, got %.4f, %.4f", ErrBadParameters, p.RadiusX, p.RadiusY)
	}

	if p.ZeroCurvatureRadius <= 0 {
		return fmt.Errorf("%w: zero curvature radius must be positive, got %.4f", ErrBadParameters, p.ZeroCurvatureRadius)
	}

	return nil
}
