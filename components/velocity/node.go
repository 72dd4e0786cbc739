package velocity

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/igra9/sot-tools/powerlaw"
	"github.com/igra9/sot-tools/signal"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

const (

	// Class name under which the node is registered with the entity factory.
	ClassName = "VelocityFromPowerLaw"

	// Length of a control tick, in seconds.
	DefaultPeriod = 0.005
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "velocity",
})

// Stats count what the node has done so far.
type Stats struct {
	Evaluations int
	CacheHits   int
	Fallbacks   int
}

type cacheEntry struct {
	tick  int
	value powerlaw.Command
}

// Node converts the current positions of the feet and the orientation of the
// waist into a velocity which steers the robot onto an elliptical limit cycle.
//
// The output is evaluated at most once per tick; any further queries for the
// same tick are served from a single-slot cache. Ticks are expected to be
// queried in non-decreasing order.
type Node struct {
	name   string
	period float64

	LeftFoot  *signal.Input[mat.Matrix]
	RightFoot *signal.Input[mat.Matrix]
	Waist     *signal.Input[mat.Vector]
	Velocity  *signal.Output[mat.Vector]

	// Swapped wholesale by InitializePowerLaw, never modified in place.
	model atomic.Pointer[powerlaw.Model]

	// nil until the first evaluation.
	cache *cacheEntry

	lastErr error
	stats   Stats
}

type Option func(*Node)

// WithPeriod sets the length of a tick, in seconds.
func WithPeriod(seconds float64) Option {
	return func(n *Node) {
		n.period = seconds
	}
}

// New creates a node bound to the given parameters. If name is empty, a random
// one is generated.
func New(name string, p powerlaw.Parameters, opts ...Option) *Node {
	if name == "" {
		name = uuid.NewString()
	}

	n := &Node{
		name:   name,
		period: DefaultPeriod,
	}

	for _, opt := range opts {
		opt(n)
	}

	n.LeftFoot = signal.NewInput[mat.Matrix](n.signalName("input", "homogeneousmatrix", "leftfootcurrentpos"))
	n.RightFoot = signal.NewInput[mat.Matrix](n.signalName("input", "homogeneousmatrix", "rightfootcurrentpos"))
	n.Waist = signal.NewInput[mat.Vector](n.signalName("input", "vector", "waist"))
	n.Velocity = signal.NewOutput[mat.Vector](n.signalName("output", "vector", "velocity"), n.output)
	n.Velocity.AddDependency(n.LeftFoot, n.RightFoot, n.Waist)

	if err := p.Validate(); err != nil {
		log.Warnf("%s: %s", name, err)
	}
	n.model.Store(powerlaw.New(p))

	log.Debugf("created %s with %s, period=%.4fs", name, p, n.period)
	return n
}

// NewDefault creates a node with zeroed parameters. Until InitializePowerLaw
// is called, every tick will produce the fallback command.
func NewDefault(name string, opts ...Option) *Node {
	return New(name, powerlaw.Parameters{}, opts...)
}

func (n *Node) signalName(dir, kind, sig string) string {
	return fmt.Sprintf("%s(%s)::%s(%s)::%s", ClassName, n.name, dir, kind, sig)
}

func (n *Node) Name() string {
	return n.name
}

func (n *Node) Period() float64 {
	return n.period
}

// Parameters returns the parameters of the currently bound model.
func (n *Node) Parameters() powerlaw.Parameters {
	return n.model.Load().Parameters()
}

// Command returns the velocity at tick t, evaluating it unless it was already
// computed for that same tick.
func (n *Node) Command(t int) powerlaw.Command {
	if n.cache != nil && n.cache.tick == t {
		n.stats.CacheHits += 1
		return n.cache.value
	}

	// Load the model once, so a concurrent swap is seen either before or after
	// this evaluation, never halfway through.
	m := n.model.Load()

	v, err := SafeEvaluate(m, t, n.period, n.Waist, n.LeftFoot, n.RightFoot)
	n.stats.Evaluations += 1
	n.lastErr = err
	if err != nil {
		n.stats.Fallbacks += 1
		log.WithFields(logrus.Fields{
			"node": n.name,
			"tick": t,
		}).Debugf("fallback: %s", err)
	}

	n.cache = &cacheEntry{tick: t, value: v}
	return v
}

func (n *Node) output(t int) mat.Vector {
	c := n.Command(t).Array()
	return mat.NewVecDense(3, c[:])
}

// Cached returns the tick and value of the last evaluation, if any.
func (n *Node) Cached() (int, powerlaw.Command, bool) {
	if n.cache == nil {
		return 0, powerlaw.Command{}, false
	}
	return n.cache.tick, n.cache.value, true
}

// LastError returns the reason the most recent evaluation fell back, or nil if
// it didn't.
func (n *Node) LastError() error {
	return n.lastErr
}

func (n *Node) Stats() Stats {
	return n.stats
}

// Boot checks that every input has been plugged. Unplugged inputs are not
// fatal (the node falls back), but are almost certainly a mistake.
func (n *Node) Boot() error {
	for _, in := range []interface {
		Name() string
		Plugged() bool
	}{n.LeftFoot, n.RightFoot, n.Waist} {
		if !in.Plugged() {
			log.Warnf("%s is not plugged", in.Name())
		}
	}

	return nil
}

// Tick pulls the output for tick t, so that the node is evaluated every tick
// even when nothing downstream asks for it.
func (n *Node) Tick(t int) error {
	n.Command(t)
	return nil
}
