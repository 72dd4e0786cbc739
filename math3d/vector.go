package math3d

import (
	"fmt"
	"math"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.3f y=%0.3f z=%0.3f}", v.X, v.Y, v.Z)
}

// Add adds two vectors.
func (v Vector3) Add(vv Vector3) Vector3 {
	return Vector3{
		(v.X + vv.X),
		(v.Y + vv.Y),
		(v.Z + vv.Z),
	}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt((v.X * v.X) + (v.Y * v.Y) + (v.Z * v.Z))
}

// Distance calculates and returns the distance between this vector and another.
func (v Vector3) Distance(vv Vector3) float64 {
	return Vector3{v.X - vv.X, v.Y - vv.Y, v.Z - vv.Z}.Magnitude()
}

// RotateZ returns the vector rotated by the given angle (in radians) about
// the vertical axis.
func (v Vector3) RotateZ(rads float64) Vector3 {
	c := math.Cos(rads)
	s := math.Sin(rads)
	return Vector3{
		(c * v.X) - (s * v.Y),
		(s * v.X) + (c * v.Y),
		v.Z,
	}
}
