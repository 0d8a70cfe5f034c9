// File: mapping.go
// Role: GraphMapping, the immutable result handed to callers.

package isomorphism

import (
	"iter"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lviso/core"
)

// GraphMapping is a completed correspondence from the domain graph g1 to the
// codomain graph g2. Forward lookups go g1→g2, backward lookups g2→g1.
// A GraphMapping never aliases search state and is safe to keep and share.
type GraphMapping struct {
	g1, g2   Graph
	domain   []string // domain vertex IDs, ascending
	forward  map[string]string
	backward map[string]string
}

func newGraphMapping(g1, g2 Graph, n int) *GraphMapping {
	return &GraphMapping{
		g1:       g1,
		g2:       g2,
		domain:   make([]string, 0, n),
		forward:  make(map[string]string, n),
		backward: make(map[string]string, n),
	}
}

// set records u↦c. Callers add domain vertices in ascending order.
func (gm *GraphMapping) set(u, c string) {
	gm.domain = append(gm.domain, u)
	gm.forward[u] = c
	gm.backward[c] = u
}

// VertexCorrespondence returns the partner of v: its image in g2 when forward
// is true, its preimage in g1 otherwise. ok is false if v has no partner
// (unknown vertex, or a g2 vertex outside the image of a subgraph mapping).
func (gm *GraphMapping) VertexCorrespondence(v string, forward bool) (string, bool) {
	var (
		p  string
		ok bool
	)
	if forward {
		p, ok = gm.forward[v]
	} else {
		p, ok = gm.backward[v]
	}

	return p, ok
}

// Forward is VertexCorrespondence(v, true).
func (gm *GraphMapping) Forward(v string) (string, bool) { return gm.VertexCorrespondence(v, true) }

// Backward is VertexCorrespondence(v, false).
func (gm *GraphMapping) Backward(v string) (string, bool) { return gm.VertexCorrespondence(v, false) }

// EdgeCorrespondence returns the edge of the other graph joining the partners
// of e's endpoints. ok is false when an endpoint has no partner or the partner
// pair is not adjacent (possible backward under ModeSubgraph).
func (gm *GraphMapping) EdgeCorrespondence(e *core.Edge, forward bool) (*core.Edge, bool) {
	if e == nil {
		return nil, false
	}
	from, ok := gm.VertexCorrespondence(e.From, forward)
	if !ok {
		return nil, false
	}
	to, ok := gm.VertexCorrespondence(e.To, forward)
	if !ok {
		return nil, false
	}

	target := gm.g2
	if !forward {
		target = gm.g1
	}
	img, err := target.EdgeBetween(from, to)
	if err != nil {
		return nil, false
	}

	return img, true
}

// Len returns the number of mapped domain vertices.
func (gm *GraphMapping) Len() int { return len(gm.domain) }

// Pairs iterates (domain vertex, image) in ascending domain ID order.
func (gm *GraphMapping) Pairs() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, u := range gm.domain {
			if !yield(u, gm.forward[u]) {
				return
			}
		}
	}
}

// Map returns a fresh copy of the forward correspondence.
func (gm *GraphMapping) Map() map[string]string {
	out := make(map[string]string, len(gm.forward))
	for u, c := range gm.forward {
		out[u] = c
	}

	return out
}

// Equal reports whether both mappings pair the same vertices.
func (gm *GraphMapping) Equal(other *GraphMapping) bool {
	if other == nil || len(gm.forward) != len(other.forward) {
		return false
	}
	for u, c := range gm.forward {
		if oc, ok := other.forward[u]; !ok || oc != c {
			return false
		}
	}

	return true
}

// Fingerprint hashes the vertex correspondence with xxhash. Equal mappings
// have equal fingerprints; use it as a set key alongside Equal.
func (gm *GraphMapping) Fingerprint() uint64 {
	h := xxhash.New()
	for _, u := range gm.domain {
		_, _ = h.WriteString(u)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(gm.forward[u])
		_, _ = h.Write([]byte{0})
	}

	return h.Sum64()
}

// String renders the mapping as "{a→x, b→y}" in domain order.
func (gm *GraphMapping) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, u := range gm.domain {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(u)
		sb.WriteString("→")
		sb.WriteString(gm.forward[u])
	}
	sb.WriteByte('}')

	return sb.String()
}

// Image returns the codomain vertices hit by the mapping, ascending.
func (gm *GraphMapping) Image() []string {
	out := make([]string, 0, len(gm.backward))
	for c := range gm.backward {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}
