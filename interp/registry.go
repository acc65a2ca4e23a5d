// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Func is the body of one overload. Its arguments already have the kinds
// the overload declares.
type Func func(args []Value) (Value, error)

type overload struct {
	params []Kind
	fn     Func
}

// Registry maps command names to their overloads.
type Registry struct {
	cmds map[string][]overload
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string][]overload)}
}

// Register adds an overload of name taking params. Overloads are tried in
// registration order.
func (r *Registry) Register(name string, fn Func, params ...Kind) {
	r.cmds[name] = append(r.cmds[name], overload{params: params, fn: fn})
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.cmds[name]

	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.cmds)
	slices.Sort(names)

	return names
}

// Call runs the first overload of name the arguments fit.
// Returns ErrUnknownCommand for an unregistered name and ErrTypeMismatch if
// no overload fits.
func (r *Registry) Call(name string, args []Value) (Value, error) {
	ovs, ok := r.cmds[name]
	if !ok {
		return nil, interpErrorf(name, ErrUnknownCommand)
	}
	for _, ov := range ovs {
		in, ok := fit(ov.params, args)
		if !ok {
			continue
		}
		out, err := ov.fn(in)
		if err != nil {
			return nil, interpErrorf(name, err)
		}

		return out, nil
	}

	return nil, interpErrorf(name, fmt.Errorf("%w: no overload for (%s)", ErrTypeMismatch, kindList(args)))
}

func fit(params []Kind, args []Value) ([]Value, bool) {
	if len(params) != len(args) {
		return nil, false
	}
	in := make([]Value, len(args))
	for i, a := range args {
		v, ok := coerce(a, params[i])
		if !ok {
			return nil, false
		}
		in[i] = v
	}

	return in, true
}

func kindList(args []Value) string {
	ks := make([]string, len(args))
	for i, a := range args {
		ks[i] = a.Kind().String()
	}

	return strings.Join(ks, ", ")
}
