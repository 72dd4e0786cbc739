package velocity

import (
	"errors"

	"github.com/igra9/sot-tools/math3d"
	"github.com/igra9/sot-tools/powerlaw"
	"github.com/igra9/sot-tools/signal"
	"gonum.org/v1/gonum/mat"
)

var walking = powerlaw.Parameters{
	RadiusX:             0.3,
	RadiusY:             0.2,
	Gamma:               1.0,
	Beta:                1.0,
	ZeroCurvatureRadius: 2.0,
}

var errOffline = errors.New("offline")

func foot(name string, x, y float64) signal.Signal[mat.Matrix] {
	return signal.NewConst[mat.Matrix](name, math3d.Homogeneous(x, y, 0, 0))
}

func waist(heading float64) signal.Signal[mat.Vector] {
	return signal.NewConst[mat.Vector]("waist", math3d.Waist(0, 0, 0.8, 0, 0, heading))
}

func brokenFoot(name string) signal.Signal[mat.Matrix] {
	return signal.NewFunc(name, func(int) (mat.Matrix, error) {
		return nil, errOffline
	})
}

// plug connects the standard scenario to the node: feet either side of
// (0.1, 0), facing along X.
func plug(n *Node) {
	n.LeftFoot.Plug(foot("lf", 0.1, 0.05))
	n.RightFoot.Plug(foot("rf", 0.1, -0.05))
	n.Waist.Plug(waist(0))
}

func aboveFloor(c powerlaw.Command) bool {
	for _, v := range c.Array() {
		if v < 0 && -v < Floor {
			return false
		}
		if v >= 0 && v < Floor {
			return false
		}
	}
	return true
}
