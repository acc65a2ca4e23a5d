// SPDX-License-Identifier: MIT

package interp

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Env holds variables. Set stores a deep copy, so two variables never share
// a cone.
type Env struct {
	vars map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]Value)}
}

// Get returns the stored value itself; commands that mutate a cone argument
// mutate the variable.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]

	return v, ok
}

// Set binds name to a copy of v.
func (e *Env) Set(name string, v Value) {
	e.vars[name] = Copy(v)
}

// Delete removes name.
func (e *Env) Delete(name string) {
	delete(e.vars, name)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []string {
	names := maps.Keys(e.vars)
	slices.Sort(names)

	return names
}
