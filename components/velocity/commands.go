package velocity

import (
	tools "github.com/igra9/sot-tools"
)

const initializeDoc = `
    Set ellipse parameters
      Input:
        - a floating point number: the X half axe,
        - a floating point number: the Y half axe,
        - a floating point number: the gamma of the power law,
        - a floating point number: the beta of the power law,
`

func init() {
	tools.Register(ClassName, func(name string) tools.Entity {
		return NewDefault(name)
	})
}

// Commands returns the operations available to scripts.
func (n *Node) Commands() map[string]tools.Command {
	return map[string]tools.Command{
		"initializePowerLaw": {
			Doc:  initializeDoc,
			Args: 4,
			Exec: func(a []float64) {
				n.InitializePowerLaw(a[0], a[1], a[2], a[3])
			},
		},
	}
}
