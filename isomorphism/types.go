// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: public contracts of the isomorphism package: the Graph collaborator
// interface, search modes, vertex orderings, options, sentinel errors, Stats.

package isomorphism

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lviso/core"
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when either input graph is nil.
	ErrGraphNil = errors.New("isomorphism: graph is nil")

	// ErrDirectionMismatch is returned when one graph is directed and the other is not.
	ErrDirectionMismatch = errors.New("isomorphism: directed and undirected graphs cannot be matched")

	// ErrSizeMismatch is returned under WithStrictSizes when the vertex or edge
	// counts make the requested mode impossible.
	ErrSizeMismatch = errors.New("isomorphism: graph sizes incompatible with mode")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("isomorphism: invalid option supplied")

	// ErrNoMoreMappings is returned by MappingCursor.Next once the search is exhausted.
	ErrNoMoreMappings = errors.New("isomorphism: no more mappings")
)

// Graph is the read-only view of a graph consumed by the search.
// *core.Graph satisfies it. Implementations must not change while an
// Inspector built on them is in use.
type Graph interface {
	// Vertices enumerates all vertex IDs.
	Vertices() []string
	// HasEdge reports adjacency from→to.
	HasEdge(from, to string) bool
	// EdgeBetween returns the edge joining from→to, used for edge predicates
	// and edge correspondence.
	EdgeBetween(from, to string) (*core.Edge, error)
	// VertexCount returns |V|.
	VertexCount() int
	// EdgeCount returns |E|.
	EdgeCount() int
	// Directed reports whether adjacency is one-way.
	Directed() bool
}

// Mode selects which correspondence the search establishes between the
// domain graph (g1) and the codomain graph (g2).
type Mode int

const (
	// ModeIsomorphism requires a bijection preserving adjacency and non-adjacency.
	ModeIsomorphism Mode = iota
	// ModeSubgraph requires an injection mapping every g1 edge onto a g2 edge
	// (monomorphism). Non-adjacent g1 pairs may map onto adjacent g2 pairs.
	ModeSubgraph
	// ModeInducedSubgraph requires an injection preserving adjacency and
	// non-adjacency, i.e. g1 is isomorphic to an induced subgraph of g2.
	ModeInducedSubgraph
)

// String returns the mode name used in logs and CLI flags.
func (m Mode) String() string {
	switch m {
	case ModeIsomorphism:
		return "isomorphism"
	case ModeSubgraph:
		return "subgraph"
	case ModeInducedSubgraph:
		return "induced"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Ordering selects the order in which domain vertices are assigned.
// The order fixes the shape of the search tree and therefore the order in
// which mappings are produced.
type Ordering int

const (
	// OrderDegree assigns vertices by descending total degree, ties by ID.
	OrderDegree Ordering = iota
	// OrderConnectivity starts at the highest-degree vertex and repeatedly
	// picks the vertex with most already-ordered neighbours (ties: degree,
	// then ID), so every level after the first is constrained by adjacency.
	OrderConnectivity
	// OrderNatural assigns vertices in ascending ID order.
	OrderNatural
)

// String returns the ordering name used in logs and CLI flags.
func (o Ordering) String() string {
	switch o {
	case OrderDegree:
		return "degree"
	case OrderConnectivity:
		return "connectivity"
	case OrderNatural:
		return "natural"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// Option configures an Inspector.
type Option func(*Options)

// Options holds the search configuration.
type Options struct {
	// Ctx allows cancellation; polled every ctxPollInterval search steps.
	Ctx context.Context

	// Mode selects full isomorphism or one of the subgraph variants.
	Mode Mode

	// Ordering selects the domain vertex ordering.
	Ordering Ordering

	// VertexCompatible, if non-nil, must accept (domain vertex, codomain vertex)
	// for the pair to be mapped.
	VertexCompatible func(u, c string) bool

	// EdgeCompatible, if non-nil, must accept every mapped (domain edge, codomain edge) pair.
	EdgeCompatible func(e1, e2 *core.Edge) bool

	// StrictSizes turns an impossible size relation into ErrSizeMismatch at
	// construction instead of an empty enumeration.
	StrictSizes bool

	// Logger receives Debug records about search lifecycle. Defaults to a discard logger.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - ModeIsomorphism, OrderDegree
//   - structural matching only (no predicates)
//   - empty enumeration on size mismatch
//   - a logger writing to io.Discard
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Mode:     ModeIsomorphism,
		Ordering: OrderDegree,
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the correspondence to search for.
// Unknown modes surface as ErrOptionViolation from NewInspector.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m < ModeIsomorphism || m > ModeInducedSubgraph {
			o.err = fmt.Errorf("isomorphism: WithMode(%d): %w", int(m), ErrOptionViolation)
			return
		}
		o.Mode = m
	}
}

// WithOrdering selects the domain vertex ordering.
// Unknown orderings surface as ErrOptionViolation from NewInspector.
func WithOrdering(ord Ordering) Option {
	return func(o *Options) {
		if ord < OrderDegree || ord > OrderNatural {
			o.err = fmt.Errorf("isomorphism: WithOrdering(%d): %w", int(ord), ErrOptionViolation)
			return
		}
		o.Ordering = ord
	}
}

// WithVertexCompatibility installs a vertex predicate. nil restores structural matching.
func WithVertexCompatibility(fn func(u, c string) bool) Option {
	return func(o *Options) { o.VertexCompatible = fn }
}

// WithEdgeCompatibility installs an edge predicate. nil restores structural matching.
func WithEdgeCompatibility(fn func(e1, e2 *core.Edge) bool) Option {
	return func(o *Options) { o.EdgeCompatible = fn }
}

// WithStrictSizes reports incompatible graph sizes as ErrSizeMismatch.
func WithStrictSizes() Option {
	return func(o *Options) { o.StrictSizes = true }
}

// WithLogger routes lifecycle Debug records to l. A nil l is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Stats reports the work done by one cursor.
type Stats struct {
	// Steps counts candidate evaluations (feasibility checks).
	Steps int
	// Commits counts candidates written into the partial mapping.
	Commits int
	// Backtracks counts commitments undone.
	Backtracks int
	// Mappings counts completed mappings reached.
	Mappings int
}
