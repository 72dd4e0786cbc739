package velocity

import (
	"github.com/igra9/sot-tools/powerlaw"
)

// InitializePowerLaw replaces the ellipse parameters. The zero curvature
// radius is always reset to powerlaw.DefaultZeroCurvatureRadius. A new model
// is built and swapped in as a whole; the inputs, the output's dependencies and
// the cached value are left alone, so a tick which was already evaluated keeps
// its old value.
//
// Nothing is rejected. Degenerate parameters are logged, and the node will
// fall back on every tick until it's reinitialized with better ones.
func (n *Node) InitializePowerLaw(radiusX, radiusY, gamma, beta float64) {
	p := powerlaw.Parameters{
		RadiusX:             radiusX,
		RadiusY:             radiusY,
		Gamma:               gamma,
		Beta:                beta,
		ZeroCurvatureRadius: powerlaw.DefaultZeroCurvatureRadius,
	}

	if err := p.Validate(); err != nil {
		log.Warnf("%s: %s", n.name, err)
	}

	n.model.Store(powerlaw.New(p))
	log.Infof("%s: initialized %s", n.name, p)
}
