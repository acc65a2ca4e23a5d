// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/polycone/zmatrix"
)

// Interpreter evaluates statements against an environment and a registry.
type Interpreter struct {
	env *Env
	reg *Registry
}

// New returns an interpreter over Builtins with an empty environment.
func New() *Interpreter {
	return NewWithRegistry(Builtins())
}

// NewWithRegistry returns an interpreter over reg.
func NewWithRegistry(reg *Registry) *Interpreter {
	return &Interpreter{env: NewEnv(), reg: reg}
}

// Env returns the variable environment.
func (in *Interpreter) Env() *Env { return in.env }

// Registry returns the command registry.
func (in *Interpreter) Registry() *Registry { return in.reg }

// Eval runs the statements of src in order and returns the value of the
// last one, None for an empty line. It stops at the first failing
// statement; statements before it keep their effect.
func (in *Interpreter) Eval(src string) (Value, error) {
	toks, err := lex(src)
	if err != nil {
		tracer().Errorf("interp: %v", err)

		return nil, err
	}
	stmts, err := parse(toks)
	if err != nil {
		tracer().Errorf("interp: %v", err)

		return nil, err
	}
	var out Value = None{}
	for _, s := range stmts {
		if out, err = s.eval(in); err != nil {
			tracer().Errorf("interp: %v", err)

			return nil, err
		}
	}

	return out, nil
}

func (n intLit) eval(*Interpreter) (Value, error) { return Int{X: n.x}, nil }
func (n strLit) eval(*Interpreter) (Value, error) { return String(n), nil }

func (n vecLit) eval(*Interpreter) (Value, error) {
	v, err := zmatrix.VectorFromBig(n)
	if err != nil {
		return nil, err
	}

	return Vector{V: v}, nil
}

func (n matLit) eval(*Interpreter) (Value, error) {
	m := zmatrix.Empty(n.cols)
	for _, row := range n.rows {
		v, err := zmatrix.VectorFromBig(row)
		if err != nil {
			return nil, err
		}
		if err = m.AppendRow(v); err != nil {
			return nil, err
		}
	}

	return Matrix{M: m}, nil
}

// List elements are copies so a list never aliases a variable.
func (n listLit) eval(in *Interpreter) (Value, error) {
	out := make(List, len(n))
	for i, e := range n {
		v, err := e.eval(in)
		if err != nil {
			return nil, err
		}
		out[i] = Copy(v)
	}

	return out, nil
}

func (n ident) eval(in *Interpreter) (Value, error) {
	v, ok := in.env.Get(string(n))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, string(n))
	}

	return v, nil
}

func (n call) eval(in *Interpreter) (Value, error) {
	args, err := evalAll(in, n.args)
	if err != nil {
		return nil, err
	}

	return in.reg.Call(n.name, args)
}

func (n binop) eval(in *Interpreter) (Value, error) {
	args, err := evalAll(in, []node{n.l, n.r})
	if err != nil {
		return nil, err
	}

	return in.reg.Call(n.op, args)
}

func (n assign) eval(in *Interpreter) (Value, error) {
	v, err := n.expr.eval(in)
	if err != nil {
		return nil, err
	}
	if v.Kind() == KindNone {
		return nil, fmt.Errorf("%w: cannot assign none to %s", ErrTypeMismatch, n.name)
	}
	in.env.Set(n.name, v)

	return None{}, nil
}

// eval binds name to cone(), cone(d) or a copy of a cone value.
func (n decl) eval(in *Interpreter) (Value, error) {
	var args []Value
	if n.expr != nil {
		v, err := n.expr.eval(in)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	v, err := in.reg.Call("cone", args)
	if err != nil {
		return nil, err
	}
	in.env.Set(n.name, v)

	return None{}, nil
}

func evalAll(in *Interpreter, nodes []node) ([]Value, error) {
	out := make([]Value, len(nodes))
	for i, e := range nodes {
		v, err := e.eval(in)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
