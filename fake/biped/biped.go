package biped

import (
	"fmt"

	"github.com/igra9/sot-tools/math3d"
	"github.com/igra9/sot-tools/signal"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "biped",
})

// Height of the waist above the ground. Only used to fill in the waist vector.
const waistHeight = 0.8

// Biped is a purely kinematic stand-in for a walking robot. Every tick it
// reads a velocity command (in its own frame), and moves its waist and feet
// by exactly that much. There are no steps; the feet slide.
type Biped struct {
	period float64

	// Distance between the feet, which are placed either side of the waist.
	stanceWidth float64

	// World pose of the waist.
	Pose math3d.Pose

	Command *signal.Input[mat.Vector]

	LeftFoot  *signal.Func[mat.Matrix]
	RightFoot *signal.Func[mat.Matrix]
	Waist     *signal.Func[mat.Vector]
}

func New(name string, period, stanceWidth, x, y, heading float64) *Biped {
	b := &Biped{
		period:      period,
		stanceWidth: stanceWidth,
		Pose:        math3d.Pose{Position: math3d.Vector3{X: x, Y: y, Z: waistHeight}, Heading: heading},
		Command:     signal.NewInput[mat.Vector](fmt.Sprintf("Biped(%s)::input(vector)::velocity", name)),
	}

	b.LeftFoot = signal.NewFunc(fmt.Sprintf("Biped(%s)::output(homogeneousmatrix)::leftfoot", name), func(int) (mat.Matrix, error) {
		return b.foot(+1), nil
	})
	b.RightFoot = signal.NewFunc(fmt.Sprintf("Biped(%s)::output(homogeneousmatrix)::rightfoot", name), func(int) (mat.Matrix, error) {
		return b.foot(-1), nil
	})
	b.Waist = signal.NewFunc(fmt.Sprintf("Biped(%s)::output(vector)::waist", name), func(int) (mat.Vector, error) {
		p := b.Pose.Position
		return math3d.Waist(p.X, p.Y, p.Z, 0, 0, b.Pose.Heading), nil
	})

	return b
}

// foot returns the pose of the left (side=+1) or right (side=-1) foot.
func (b *Biped) foot(side float64) *mat.Dense {
	offset := math3d.Pose{Position: math3d.Vector3{X: 0, Y: side * b.stanceWidth / 2, Z: -waistHeight}}
	return b.Pose.Add(offset).Matrix()
}

func (b *Biped) Boot() error {
	if !b.Command.Plugged() {
		return fmt.Errorf("%s is not plugged", b.Command.Name())
	}

	return nil
}

// Tick reads the command for tick t and integrates it over one period.
func (b *Biped) Tick(t int) error {
	v, err := b.Command.Access(t)
	if err != nil {
		return err
	}

	if v.Len() < 3 {
		return fmt.Errorf("velocity has %d elements, want 3", v.Len())
	}

	vx := v.AtVec(0)
	vy := v.AtVec(1)
	vw := v.AtVec(2)

	// Command is in the waist frame, which is what Add expects.
	b.Pose = b.Pose.Add(math3d.Pose{
		Position: math3d.Vector3{X: vx * b.period, Y: vy * b.period},
		Heading:  vw * b.period,
	})

	log.Debugf("t=%d %s", t, b.Pose)
	return nil
}
