package tools

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrUnknownClass   = errors.New("unknown entity class")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("bad arguments")
)

// Command is an operation exposed by an entity to the scripting layer. All
// arguments are floats; none return anything.
type Command struct {
	Doc  string
	Args int
	Exec func(args []float64)
}

// Call checks the number of arguments, then runs the command.
func (c Command) Call(args []float64) error {
	if len(args) != c.Args {
		return fmt.Errorf("%w: got %d, want %d", ErrBadArgs, len(args), c.Args)
	}

	c.Exec(args)
	return nil
}

// Entity is a named component of the graph which exposes commands.
type Entity interface {
	Component
	Name() string
	Commands() map[string]Command
}

// ExecLine runs a single line of script, like "initializePowerLaw 0.3 0.2 1 1",
// against the given entity.
func ExecLine(e Entity, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := e.Commands()[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownCommand, e.Name(), fields[0])
	}

	args := make([]float64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrBadArgs, fields[0], err)
		}
		args = append(args, v)
	}

	if err := cmd.Call(args); err != nil {
		return fmt.Errorf("%s.%s: %w", e.Name(), fields[0], err)
	}

	return nil
}

// Constructor creates an entity with the given name.
type Constructor func(name string) Entity

var (
	mu      sync.Mutex
	classes = map[string]Constructor{}
)

// Register makes an entity class available to Create. It's meant to be called
// from the init function of the package which implements the class.
func Register(class string, c Constructor) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := classes[class]; dup {
		panic("tools: Register called twice for class " + class)
	}
	classes[class] = c
}

// Create returns a new entity of the given class.
func Create(class, name string) (Entity, error) {
	mu.Lock()
	c, ok := classes[class]
	mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownClass, class)
	}

	return c(name), nil
}

// Classes returns the names of every registered class, sorted.
func Classes() []string {
	mu.Lock()
	defer mu.Unlock()

	names := make([]string, 0, len(classes))
	for k := range classes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
