package tools

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "tools",
})

// Component is anything which wants to be ticked by the graph.
type Component interface {
	Boot() error
	Tick(t int) error
}

// Graph ticks a set of components, in the order they were added, once per
// control cycle. The tick counter only ever increases.
type Graph struct {
	Components []Component

	tick int
}

func NewGraph() *Graph {
	return &Graph{
		Components: []Component{},
	}
}

// Add registers a component to receive ticks every cycle.
func (g *Graph) Add(c Component) {
	g.Components = append(g.Components, c)
}

// Time returns the index of the last tick, or zero if the graph has never been
// ticked.
func (g *Graph) Time() int {
	return g.tick
}

// Boot calls Boot on each component.
func (g *Graph) Boot() error {
	for _, c := range g.Components {
		err := c.Boot()
		if err != nil {
			return err
		}
	}

	return nil
}

// Tick advances the tick counter, and calls Tick on each component. The first
// error aborts the cycle.
func (g *Graph) Tick() error {
	g.tick += 1

	for _, c := range g.Components {
		err := c.Tick(g.tick)
		if err != nil {
			return fmt.Errorf("tick %d: %w", g.tick, err)
		}
	}

	return nil
}

// Run ticks the graph n times.
func (g *Graph) Run(n int) error {
	log.Debugf("running %d ticks from %d", n, g.tick)

	for i := 0; i < n; i++ {
		err := g.Tick()
		if err != nil {
			return err
		}
	}

	return nil
}
