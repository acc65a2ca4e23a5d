// SPDX-License-Identifier: MIT

package ddm

import (
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/polycone/zmatrix"
)

const (
	opRays   = "Rays"
	opFacets = "Facets"
)

var (
	initOnce      sync.Once
	ready         atomic.Bool
	defaultEngine *Engine
)

// EnsureInitialized prepares the process-wide default engine. It is
// idempotent and safe to call from several goroutines.
func EnsureInitialized() {
	initOnce.Do(func() {
		defaultEngine = NewEngine()
		ready.Store(true)
		tracer().Infof("ddm: default engine initialized")
	})
}

// Initialized reports whether EnsureInitialized has completed.
func Initialized() bool { return ready.Load() }

// Rays runs the default engine; see Engine.Rays.
func Rays(ineq, eq zmatrix.ZMatrix) (rays, lin zmatrix.ZMatrix, err error) {
	if !ready.Load() {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opRays, ErrNotInitialized)
	}

	return defaultEngine.Rays(ineq, eq)
}

// Facets runs the default engine; see Engine.Facets.
func Facets(rays, lin zmatrix.ZMatrix) (facets, eq zmatrix.ZMatrix, err error) {
	if !ready.Load() {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opFacets, ErrNotInitialized)
	}

	return defaultEngine.Facets(rays, lin)
}

// Engine is a double description converter. It holds only options.
type Engine struct {
	opts Options
}

// NewEngine returns an engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Engine{opts: o}
}

// generator is a ray under construction with its zero set.
type generator struct {
	v    zmatrix.ZVector
	zero zeroSet
}

// Rays computes the extreme rays and a lineality basis of
// { x : ineq·x >= 0, eq·x = 0 }.
//
// Implementation:
//   - Stage 1: start from an integer basis of ker(eq), all of it lineality.
//   - Stage 2: insert inequalities one by one. If some line is not tight on
//     the new inequality a, orient it so a·ℓ > 0, turn it into a ray and
//     project the other generators onto a·x = 0 along ℓ. Otherwise split the
//     rays by the sign of a·r, keep the non-negative ones and add
//     (a·p)q - (a·q)p for every adjacent pair (p positive, q negative).
//   - Stage 3: canonicalize (echelon lineality, primitive reduced rays, sorted).
//
// Adjacency is the combinatorial test: p and q are adjacent iff no third
// ray vanishes on every inserted inequality on which both vanish.
//
// Complexity: worst case exponential in the number of inequalities (the
// output may be); each step is O(|R|³·m/64) for the adjacency scan.
func (e *Engine) Rays(ineq, eq zmatrix.ZMatrix) (rays, lin zmatrix.ZMatrix, err error) {
	n := ineq.Cols()
	if eq.Cols() != n {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opRays, ErrDimensionMismatch)
	}
	constraints := e.insertionOrder(ineq)
	words := (len(constraints) + 63) / 64

	kernel := eq.Kernel()
	lines := make([]zmatrix.ZVector, 0, kernel.Rows())
	for i := 0; i < kernel.Rows(); i++ {
		lines = append(lines, kernel.Row(i))
	}
	var current []generator

	for k, a := range constraints {
		if j, s := firstLoose(a, lines); j >= 0 {
			current, lines = absorbLine(a, k, j, s, lines, current, words)
			continue
		}
		current = e.cut(a, k, current)
		tracer().Debugf("ddm: after constraint %d: %d rays, %d lines", k, len(current), len(lines))
	}

	return canonical(n, current, lines)
}

// Facets computes the facet normals and a basis of the implied equations of
// cone(rays) + span(lin). It is Rays applied to the dual cone.
func (e *Engine) Facets(rays, lin zmatrix.ZMatrix) (facets, eq zmatrix.ZMatrix, err error) {
	if rays.Cols() != lin.Cols() {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opFacets, ErrDimensionMismatch)
	}

	return e.Rays(rays, lin)
}

// insertionOrder drops zero rows and applies the configured order.
func (e *Engine) insertionOrder(ineq zmatrix.ZMatrix) []zmatrix.ZVector {
	if e.opts.Order == OrderLexMin {
		ineq = ineq.SortedRows()
	}
	out := make([]zmatrix.ZVector, 0, ineq.Rows())
	for i := 0; i < ineq.Rows(); i++ {
		if r := ineq.Row(i); !r.IsZero() {
			out = append(out, r)
		}
	}

	return out
}

// firstLoose returns the first line not tight on a and a·ℓ, or -1.
func firstLoose(a zmatrix.ZVector, lines []zmatrix.ZVector) (int, *big.Int) {
	for i, l := range lines {
		if d := dotOf(a, l); d.Sign() != 0 {
			return i, d
		}
	}

	return -1, nil
}

// absorbLine turns line j into a ray strictly inside a·x > 0 and projects
// every other generator onto a·x = 0 along it.
func absorbLine(a zmatrix.ZVector, k, j int, s *big.Int, lines []zmatrix.ZVector, current []generator, words int) ([]generator, []zmatrix.ZVector) {
	l := lines[j]
	if s.Sign() < 0 {
		l = l.Neg()
		s = new(big.Int).Neg(s)
	}
	rest := make([]zmatrix.ZVector, 0, len(lines)-1)
	for i, o := range lines {
		if i == j {
			continue
		}
		if t := dotOf(a, o); t.Sign() != 0 {
			o = combineOf(s, o, t.Neg(t), l).Normalized()
		}
		rest = append(rest, o)
	}
	for i := range current {
		if t := dotOf(a, current[i].v); t.Sign() != 0 {
			current[i].v = combineOf(s, current[i].v, t.Neg(t), l).Normalized()
		}
		current[i].zero = current[i].zero.with(k)
	}
	current = append(current, generator{v: l.Normalized(), zero: prefix(k, words)})

	return current, rest
}

// cut intersects the pointed part with a·x >= 0.
func (e *Engine) cut(a zmatrix.ZVector, k int, current []generator) []generator {
	vals := make([]*big.Int, len(current))
	var pos, neg []int
	for i, g := range current {
		vals[i] = dotOf(a, g.v)
		switch vals[i].Sign() {
		case 1:
			pos = append(pos, i)
		case -1:
			neg = append(neg, i)
		}
	}
	if len(neg) == 0 {
		for i := range current {
			if vals[i].Sign() == 0 {
				current[i].zero = current[i].zero.with(k)
			}
		}

		return current
	}

	next := make([]generator, 0, len(current))
	for i, g := range current {
		switch vals[i].Sign() {
		case 1:
			next = append(next, g)
		case 0:
			next = append(next, generator{v: g.v, zero: g.zero.with(k)})
		}
	}
	for _, p := range pos {
		for _, q := range neg {
			common := current[p].zero.and(current[q].zero)
			if !adjacent(current, p, q, common) {
				continue
			}
			v := combineOf(vals[p], current[q].v, new(big.Int).Neg(vals[q]), current[p].v)
			next = append(next, generator{v: v.Normalized(), zero: common.with(k)})
		}
	}

	return next
}

// adjacent is the combinatorial adjacency test on zero sets.
func adjacent(current []generator, p, q int, common zeroSet) bool {
	for r := range current {
		if r == p || r == q {
			continue
		}
		if common.subsetOf(current[r].zero) {
			return false
		}
	}

	return true
}

// canonical builds the sorted, reduced output pair.
func canonical(n int, current []generator, lines []zmatrix.ZVector) (rays, lin zmatrix.ZMatrix, err error) {
	linAll, err := zmatrix.FromVectors(n, lines...)
	if err != nil {
		return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opRays, err)
	}
	lin = linAll.RowEchelon()

	seen := make(map[string]struct{}, len(current))
	out := zmatrix.Empty(n)
	for _, g := range current {
		r, err := zmatrix.ReduceModulo(g.v, lin)
		if err != nil {
			return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opRays, err)
		}
		if r.IsZero() {
			continue
		}
		if _, dup := seen[r.Key()]; dup {
			continue
		}
		seen[r.Key()] = struct{}{}
		if err := out.AppendRow(r); err != nil {
			return zmatrix.ZMatrix{}, zmatrix.ZMatrix{}, ddmErrorf(opRays, err)
		}
	}

	return out.SortedRows(), lin, nil
}

// dotOf is Dot on operands whose widths were validated on entry.
func dotOf(a, b zmatrix.ZVector) *big.Int {
	d, err := a.Dot(b)
	if err != nil {
		panic(err)
	}

	return d
}

// combineOf is Combine on operands whose widths were validated on entry.
func combineOf(x *big.Int, v zmatrix.ZVector, y *big.Int, w zmatrix.ZVector) zmatrix.ZVector {
	out, err := v.Combine(x, w, y)
	if err != nil {
		panic(err)
	}

	return out
}
