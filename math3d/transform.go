package math3d

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (

	// Index of the yaw (heading) angle in a waist position vector, which is
	// laid out as [x y z roll pitch yaw].
	WaistYaw = 5

	waistLen = 6
)

// ErrShape is returned when a matrix or vector does not have the dimensions
// expected of a homogeneous transform or waist vector.
var ErrShape = errors.New("math3d: bad shape")

// Homogeneous returns a 4x4 homogeneous transform with the given translation
// and a rotation of heading radians about the Z axis. The translation lives in
// the fourth column, so it is read back with At(0, 3) and At(1, 3).
func Homogeneous(x, y, z, heading float64) *mat.Dense {
	c := math.Cos(heading)
	s := math.Sin(heading)
	return mat.NewDense(4, 4, []float64{
		c, -s, 0, x,
		s, c, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	})
}

// Translation returns the planar (X, Y) translation of a homogeneous
// transform.
func Translation(m mat.Matrix) (float64, float64, error) {
	if m == nil {
		return 0, 0, fmt.Errorf("%w: nil transform", ErrShape)
	}

	r, c := m.Dims()
	if r != 4 || c != 4 {
		return 0, 0, fmt.Errorf("%w: transform is %dx%d, want 4x4", ErrShape, r, c)
	}

	return m.At(0, 3), m.At(1, 3), nil
}

// Heading returns the rotation about Z encoded in a homogeneous transform.
func Heading(m mat.Matrix) (float64, error) {
	if m == nil {
		return 0, fmt.Errorf("%w: nil transform", ErrShape)
	}

	r, c := m.Dims()
	if r < 2 || c < 2 {
		return 0, fmt.Errorf("%w: transform is %dx%d", ErrShape, r, c)
	}

	return math.Atan2(m.At(1, 0), m.At(0, 0)), nil
}

// Waist returns a waist position vector, [x y z roll pitch yaw].
func Waist(x, y, z, roll, pitch, yaw float64) *mat.VecDense {
	return mat.NewVecDense(waistLen, []float64{x, y, z, roll, pitch, yaw})
}

// WaistHeading returns the yaw component of a waist vector. The vector may be
// longer than six elements; anything after the yaw is ignored.
func WaistHeading(v mat.Vector) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil waist vector", ErrShape)
	}

	if n := v.Len(); n <= WaistYaw {
		return 0, fmt.Errorf("%w: waist vector has %d elements, want at least %d", ErrShape, n, waistLen)
	}

	return v.AtVec(WaistYaw), nil
}
