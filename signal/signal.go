// Package signal is a small tick-indexed dataflow substrate. Signals are
// pulled by tick; inputs are plugged into other signals; outputs declare which
// signals they depend on.
package signal

import (
	"errors"
	"fmt"
)

// ErrNotPlugged is returned when an input is accessed before anything has
// been plugged into it.
var ErrNotPlugged = errors.New("signal: input not plugged")

// Named is anything with a signal name.
type Named interface {
	Name() string
}

// Signal is a value which can be read at a given tick.
type Signal[T any] interface {
	Named
	Access(t int) (T, error)
}

// Input is a plug point for a Signal owned by some other entity.
type Input[T any] struct {
	name string
	src  Signal[T]
}

func NewInput[T any](name string) *Input[T] {
	return &Input[T]{name: name}
}

func (in *Input[T]) Name() string {
	return in.name
}

// Plug connects the input to a source signal, replacing any previous one.
func (in *Input[T]) Plug(src Signal[T]) {
	in.src = src
}

func (in *Input[T]) Unplug() {
	in.src = nil
}

func (in *Input[T]) Plugged() bool {
	return in.src != nil
}

// Access reads the plugged signal at tick t.
func (in *Input[T]) Access(t int) (T, error) {
	if in.src == nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrNotPlugged, in.name)
	}

	return in.src.Access(t)
}

// Func is a signal backed by a function of the tick.
type Func[T any] struct {
	name string
	f    func(t int) (T, error)
}

func NewFunc[T any](name string, f func(t int) (T, error)) *Func[T] {
	return &Func[T]{name: name, f: f}
}

func (s *Func[T]) Name() string {
	return s.name
}

func (s *Func[T]) Access(t int) (T, error) {
	return s.f(t)
}

// Const is a signal with the same value at every tick.
type Const[T any] struct {
	name string
	val  T
}

func NewConst[T any](name string, val T) *Const[T] {
	return &Const[T]{name: name, val: val}
}

func (s *Const[T]) Name() string {
	return s.name
}

func (s *Const[T]) Access(t int) (T, error) {
	return s.val, nil
}

// Output is a computed signal. It records the signals its value depends on so
// that the surrounding graph knows when it goes stale; it does not cache.
type Output[T any] struct {
	name    string
	compute func(t int) T
	deps    []Named
}

func NewOutput[T any](name string, compute func(t int) T) *Output[T] {
	return &Output[T]{name: name, compute: compute}
}

func (o *Output[T]) Name() string {
	return o.name
}

// AddDependency declares that the output's value depends on the given signals.
func (o *Output[T]) AddDependency(deps ...Named) {
	o.deps = append(o.deps, deps...)
}

// Dependencies returns the names of the signals this output depends on, in
// the order they were added.
func (o *Output[T]) Dependencies() []string {
	names := make([]string, len(o.deps))
	for i, d := range o.deps {
		names[i] = d.Name()
	}
	return names
}

// Access computes the output at tick t. It never fails.
func (o *Output[T]) Access(t int) (T, error) {
	return o.compute(t), nil
}
