// SPDX-License-Identifier: MIT

package laplacian

// DefaultDirected controls whether FromEdges mirrors each edge.
// false ⇒ undirected: [u,v] and [v,u] both receive the weight.
const DefaultDirected = false

// DefaultWeight replaces a zero edge weight (unweighted edge lists).
const DefaultWeight = 1.0

// Option configures FromEdges.
type Option func(*options)

type options struct {
	directed bool
}

// WithDirected writes only A[From,To] for every edge.
func WithDirected() Option {
	return func(o *options) { o.directed = true }
}

// WithUndirected mirrors every edge (the default).
func WithUndirected() Option {
	return func(o *options) { o.directed = false }
}

func gatherOptions(opts ...Option) options {
	o := options{directed: DefaultDirected}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
