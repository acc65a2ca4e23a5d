// SPDX-License-Identifier: MIT

package ddm

// Ordering selects the order in which constraints are inserted.
type Ordering int

const (
	// OrderAsGiven inserts constraints in input order.
	OrderAsGiven Ordering = iota
	// OrderLexMin inserts constraints in ascending lexicographic order.
	OrderLexMin
)

// Options configures an Engine.
type Options struct {
	// Order is the constraint insertion order. The result does not depend
	// on it; intermediate sizes do.
	Order Ordering
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{Order: OrderAsGiven}
}

// WithOrder sets the insertion order. Panics on an unknown Ordering.
func WithOrder(o Ordering) Option {
	if o != OrderAsGiven && o != OrderLexMin {
		panic("ddm: WithOrder(unknown ordering)")
	}

	return func(opts *Options) { opts.Order = o }
}
