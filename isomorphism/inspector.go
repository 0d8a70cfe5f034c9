// SPDX-License-Identifier: MIT
//
// File: inspector.go
// Role: Inspector facade: validation, snapshots, existence test and enumeration.

package isomorphism

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lviso/core"
)

// Inspector answers isomorphism queries between a domain graph g1 and a
// codomain graph g2. It snapshots both graphs at construction; afterwards it
// holds no mutable state, and every Mappings call starts an independent search.
type Inspector struct {
	g1, g2 Graph
	s1, s2 *snapshot
	order  []int
	opts   Options

	// infeasible short-circuits every search to an empty result
	infeasible bool
}

// NewInspector validates the inputs and prepares a search of g1 against g2.
//
// Errors:
//   - ErrGraphNil: g1 or g2 is nil.
//   - ErrDirectionMismatch: exactly one graph is directed.
//   - ErrOptionViolation: an option carried an invalid value.
//   - ErrSizeMismatch: only with WithStrictSizes, when the vertex or edge
//     counts rule out the requested mode.
//
// Complexity: O(V1² + V2²) for the adjacency snapshots.
func NewInspector(g1, g2 Graph, opts ...Option) (*Inspector, error) {
	if isNilGraph(g1) || isNilGraph(g2) {
		return nil, ErrGraphNil
	}
	if g1.Directed() != g2.Directed() {
		return nil, ErrDirectionMismatch
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	in := &Inspector{g1: g1, g2: g2, opts: o}
	if reason := sizeConflict(g1, g2, o.Mode); reason != "" {
		if o.StrictSizes {
			return nil, fmt.Errorf("isomorphism: %s: %w", reason, ErrSizeMismatch)
		}
		in.infeasible = true
	}

	in.s1 = newSnapshot(g1)
	in.s2 = newSnapshot(g2)
	in.order = orderVertices(in.s1, o.Ordering)

	return in, nil
}

// sizeConflict describes why the vertex/edge counts make mode impossible, or returns "".
func sizeConflict(g1, g2 Graph, mode Mode) string {
	v1, v2 := g1.VertexCount(), g2.VertexCount()
	e1, e2 := g1.EdgeCount(), g2.EdgeCount()
	if mode == ModeIsomorphism {
		if v1 != v2 {
			return fmt.Sprintf("vertex counts %d != %d", v1, v2)
		}
		if e1 != e2 {
			return fmt.Sprintf("edge counts %d != %d", e1, e2)
		}
		return ""
	}
	if v1 > v2 {
		return fmt.Sprintf("pattern has %d vertices, target %d", v1, v2)
	}
	if e1 > e2 {
		return fmt.Sprintf("pattern has %d edges, target %d", e1, e2)
	}

	return ""
}

// isNilGraph catches both a nil interface and a typed nil *core.Graph.
func isNilGraph(g Graph) bool {
	if g == nil {
		return true
	}
	cg, ok := g.(*core.Graph)

	return ok && cg == nil
}

// Mappings returns a fresh lazy cursor over all mappings from g1 to g2.
// Mappings are produced in a deterministic order fixed by the ordering option
// and ascending codomain IDs.
func (in *Inspector) Mappings() *MappingCursor {
	return &MappingCursor{m: newMatcher(in)}
}

// All is Mappings().All().
func (in *Inspector) All() iter.Seq[*GraphMapping] {
	return in.Mappings().All()
}

// IsomorphismExists reports whether at least one mapping exists. It runs a
// private cursor up to the first solution without materialising the mapping.
// The error is non-nil only if the search was cancelled.
func (in *Inspector) IsomorphismExists() (bool, error) {
	c := in.Mappings()
	ok := c.HasNext()

	return ok, c.Err()
}

// Count enumerates mappings and returns how many were found, stopping after
// limit mappings when limit > 0.
func (in *Inspector) Count(limit int) (int, error) {
	c := in.Mappings()
	n := 0
	for (limit <= 0 || n < limit) && c.HasNext() {
		if _, err := c.Next(); err != nil {
			return n, err
		}
		n++
	}

	return n, c.Err()
}

// Mode returns the configured search mode.
func (in *Inspector) Mode() Mode { return in.opts.Mode }
