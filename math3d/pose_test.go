package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	type eg struct {
		recv Pose
		arg  Pose
		out  Pose
	}

	examples := []eg{
		{
			recv: Pose{Vector3{+0, +0, +0}, 0},
			arg:  Pose{Vector3{+0, +0, +0}, 0},
			out:  Pose{Vector3{+0, +0, +0}, 0},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, math.Pi / 2},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{+0, +1, +0}, math.Pi / 2},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, math.Pi},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{-1, +0, +0}, math.Pi},
		},
		{
			recv: Pose{Vector3{+0, +0, +0}, -math.Pi / 2},
			arg:  Pose{Vector3{+1, +0, +0}, 0},
			out:  Pose{Vector3{+0, -1, +0}, -math.Pi / 2},
		},
		{
			recv: Pose{Vector3{+9, +9, +1}, math.Pi / 2},
			arg:  Pose{Vector3{+1, +0, +0}, math.Pi / 2},
			out:  Pose{Vector3{+9, +10, +1}, math.Pi},
		},
	}

	for i, x := range examples {
		act := x.recv.Add(x.arg)
		assert.InDelta(t, x.out.Position.X, act.Position.X, 0.01, "expected example %d:X to be %0.2f, but was %0.2f", i+1, x.out.Position.X, act.Position.X)
		assert.InDelta(t, x.out.Position.Y, act.Position.Y, 0.01, "expected example %d:Y to be %0.2f, but was %0.2f", i+1, x.out.Position.Y, act.Position.Y)
		assert.InDelta(t, x.out.Position.Z, act.Position.Z, 0.01, "expected example %d:Z to be %0.2f, but was %0.2f", i+1, x.out.Position.Z, act.Position.Z)
		assert.InDelta(t, 0, WrapAngle(x.out.Heading-act.Heading), 0.01, "expected example %d:H to be %0.2f, but was %0.2f", i+1, x.out.Heading, act.Heading)
	}
}

func TestMatrix(t *testing.T) {
	p := Pose{Vector3{0.1, -0.05, 0}, 0.3}
	x, y, err := Translation(p.Matrix())
	assert.NoError(t, err)
	assert.Equal(t, 0.1, x)
	assert.Equal(t, -0.05, y)

	h, err := Heading(p.Matrix())
	assert.NoError(t, err)
	assert.InDelta(t, 0.3, h, 1e-12)
}
