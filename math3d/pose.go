package math3d

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Pose is a position plus a heading (in radians, about Z).
type Pose struct {
	Position Vector3
	Heading  float64
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.3f y=%+07.3f z=%+07.3f, r=%+07.3f}", p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}

// Add returns the pose pp (relative to p) in the frame p is relative to.
func (p Pose) Add(pp Pose) Pose {
	return Pose{
		Position: p.Position.Add(pp.Position.RotateZ(p.Heading)),
		Heading:  WrapAngle(p.Heading + pp.Heading),
	}
}

// Matrix returns the pose as a homogeneous transform.
func (p Pose) Matrix() *mat.Dense {
	return Homogeneous(p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}
