// SPDX-License-Identifier: MIT
//
// File: matcher.go
// Role: the backtracking engine behind MappingCursor.
//
// State:
//   - core1[u] = codomain index mapped to domain index u, or unmapped; core2 is
//     its inverse. Together they form the injective partial mapping.
//   - pool is a permutation of [0, n2). pool[0:d] are the images of the first
//     d domain vertices (in order), pool[d:] are the unused codomain vertices,
//     kept in ascending order.
//   - stack holds one frame per assigned level plus the level being scanned.
//
// Commit at level d of the candidate found at pool position p rotates
// pool[d..p] right by one with two reversals, bringing the candidate to d and
// leaving pool[d+1:] ascending. Retreat replays the same two reversals in the
// opposite order, which restores pool exactly; the next candidate is then at p+1.
//
// The engine is iterative: next() returns at every solution with the stack
// intact and resumes from it on the following call.

package isomorphism

import (
	"fmt"

	"github.com/katalvlaran/lviso/arrayutil"
)

const (
	// unmapped marks a vertex with no partner in core1/core2.
	unmapped = -1

	// ctxPollInterval is the number of feasibility checks between context polls.
	ctxPollInterval = 1024
)

// searchState is the matcher lifecycle.
type searchState int

const (
	stateFresh     searchState = iota // nothing explored yet
	stateSearching                    // between solutions
	stateSolution                     // suspended on a complete mapping
	stateExhausted                    // terminal
)

// frame is one level of the search stack.
type frame struct {
	vertex    int  // domain vertex index assigned at this level
	pos       int  // pool position of the committed candidate, or the next one to scan
	committed bool // whether pool[level] currently holds this level's image
}

// matcher owns all mutable search state; it is never shared between cursors.
type matcher struct {
	in *Inspector

	d1, d2 *snapshot
	order  []int

	pool  []int
	core1 []int
	core2 []int
	stack []frame

	state searchState
	stats Stats
	err   error
}

// newMatcher allocates fresh search state over the inspector's snapshots.
func newMatcher(in *Inspector) *matcher {
	m := &matcher{
		in:    in,
		d1:    in.s1,
		d2:    in.s2,
		order: in.order,
		pool:  arrayutil.Seq(in.s2.n),
		core1: make([]int, in.s1.n),
		core2: make([]int, in.s2.n),
		stack: make([]frame, 0, in.s1.n),
	}
	for i := range m.core1 {
		m.core1[i] = unmapped
	}
	for i := range m.core2 {
		m.core2[i] = unmapped
	}

	return m
}

// next advances to the following complete mapping.
// It returns false once the search is exhausted or failed (see m.err).
func (m *matcher) next() bool {
	switch m.state {
	case stateExhausted:
		return false
	case stateFresh:
		m.state = stateSearching
		m.in.opts.Logger.Debug("search started",
			"mode", m.in.opts.Mode, "ordering", m.in.opts.Ordering,
			"domain", m.d1.n, "codomain", m.d2.n)
		if m.in.infeasible {
			m.finish()
			return false
		}
		if m.d1.n == 0 {
			// the empty correspondence is the only mapping
			return m.solution()
		}
		m.push()
	case stateSolution:
		m.state = stateSearching
		if len(m.stack) == 0 {
			m.finish()
			return false
		}
		if err := m.retract(); err != nil {
			return m.fail(err)
		}
	}

	for len(m.stack) > 0 {
		ok, err := m.extend()
		if err != nil {
			return m.fail(err)
		}
		if ok {
			if len(m.stack) == m.d1.n {
				return m.solution()
			}
			m.push()
			continue
		}
		m.stack = m.stack[:len(m.stack)-1]
		if len(m.stack) > 0 {
			if err = m.retract(); err != nil {
				return m.fail(err)
			}
		}
	}
	m.finish()

	return false
}

// push opens the frame for the next unassigned level.
func (m *matcher) push() {
	level := len(m.stack)
	m.stack = append(m.stack, frame{vertex: m.order[level], pos: level})
}

// extend scans the top frame's remaining candidates and commits the first
// feasible one. It returns false when the level is exhausted.
func (m *matcher) extend() (bool, error) {
	level := len(m.stack) - 1
	f := &m.stack[level]
	for p := f.pos; p < m.d2.n; p++ {
		if err := m.poll(); err != nil {
			return false, err
		}
		if !m.feasible(level, f.vertex, m.pool[p]) {
			continue
		}
		if err := m.rotate(level, p); err != nil {
			return false, err
		}
		c := m.pool[level]
		m.core1[f.vertex] = c
		m.core2[c] = f.vertex
		f.pos = p
		f.committed = true
		m.stats.Commits++

		return true, nil
	}

	return false, nil
}

// retract undoes the top frame's commitment and moves its scan to the next candidate.
func (m *matcher) retract() error {
	level := len(m.stack) - 1
	f := &m.stack[level]
	if !f.committed {
		return nil
	}
	c := m.pool[level]
	m.core1[f.vertex] = unmapped
	m.core2[c] = unmapped
	if err := m.unrotate(level, f.pos); err != nil {
		return err
	}
	f.committed = false
	f.pos++
	m.stats.Backtracks++

	return nil
}

// rotate moves pool[p] to position d, shifting pool[d..p-1] one step right.
func (m *matcher) rotate(d, p int) error {
	if p == d {
		return nil
	}
	if err := arrayutil.ReverseInts(m.pool, d, p); err != nil {
		return fmt.Errorf("isomorphism: commit level %d: %w", d, err)
	}
	if err := arrayutil.ReverseInts(m.pool, d+1, p); err != nil {
		return fmt.Errorf("isomorphism: commit level %d: %w", d, err)
	}

	return nil
}

// unrotate is the exact inverse of rotate(d, p).
func (m *matcher) unrotate(d, p int) error {
	if p == d {
		return nil
	}
	if err := arrayutil.ReverseInts(m.pool, d+1, p); err != nil {
		return fmt.Errorf("isomorphism: retreat level %d: %w", d, err)
	}
	if err := arrayutil.ReverseInts(m.pool, d, p); err != nil {
		return fmt.Errorf("isomorphism: retreat level %d: %w", d, err)
	}

	return nil
}

// poll counts a search step and checks the context every ctxPollInterval steps.
func (m *matcher) poll() error {
	m.stats.Steps++
	if m.stats.Steps%ctxPollInterval != 0 {
		return nil
	}

	return m.in.opts.Ctx.Err()
}

// solution suspends the matcher on a complete mapping.
func (m *matcher) solution() bool {
	m.state = stateSolution
	m.stats.Mappings++
	if m.stats.Mappings == 1 {
		m.in.opts.Logger.Debug("first mapping found", "steps", m.stats.Steps)
	}

	return true
}

// finish moves to the exhausted terminal state and drops the stack.
func (m *matcher) finish() {
	m.state = stateExhausted
	m.stack = nil
	m.in.opts.Logger.Debug("search exhausted",
		"mappings", m.stats.Mappings, "steps", m.stats.Steps,
		"commits", m.stats.Commits, "backtracks", m.stats.Backtracks)
}

// fail records err and terminates the search.
func (m *matcher) fail(err error) bool {
	m.err = err
	m.state = stateExhausted
	m.stack = nil
	m.in.opts.Logger.Debug("search aborted", "err", err, "steps", m.stats.Steps)

	return false
}

// feasible reports whether domain vertex u may be mapped to codomain vertex c
// at the given level, given the mappings of the levels below it.
// Structural checks run before the caller's predicates.
func (m *matcher) feasible(level, u, c int) bool {
	var (
		g1, g2  = m.d1, m.d2
		mode    = m.in.opts.Mode
		induced = mode != ModeSubgraph
	)

	// remaining codomain vertices must cover remaining domain vertices
	if g2.n-level < g1.n-level {
		return false
	}

	if mode == ModeIsomorphism {
		if g1.in[u] != g2.in[c] || g1.out[u] != g2.out[c] {
			return false
		}
	} else if g1.in[u] > g2.in[c] || g1.out[u] > g2.out[c] {
		return false
	}

	if !compatible(g1.has(u, u), g2.has(c, c), induced) {
		return false
	}

	var w, x, k int
	for k = 0; k < level; k++ {
		w = m.order[k]
		x = m.core1[w]
		if !compatible(g1.has(u, w), g2.has(c, x), induced) ||
			!compatible(g1.has(w, u), g2.has(x, c), induced) {
			return false
		}
	}

	if fn := m.in.opts.VertexCompatible; fn != nil && !fn(g1.ids[u], g2.ids[c]) {
		return false
	}
	if m.in.opts.EdgeCompatible != nil {
		return m.edgesCompatible(level, u, c)
	}

	return true
}

// compatible compares one adjacency bit of the domain with its image.
// Induced relations must agree; otherwise a domain edge needs an image edge.
func compatible(domain, image, induced bool) bool {
	if induced {
		return domain == image
	}

	return !domain || image
}

// edgesCompatible applies the edge predicate to every domain edge between u
// (including a loop) and the already mapped vertices. Structural checks have
// already guaranteed that each such edge has an image.
func (m *matcher) edgesCompatible(level, u, c int) bool {
	if !m.edgePairOK(u, u, c, c) {
		return false
	}
	directed := m.in.g1.Directed()
	var w, x int
	for k := 0; k < level; k++ {
		w = m.order[k]
		x = m.core1[w]
		if !m.edgePairOK(u, w, c, x) {
			return false
		}
		if directed && !m.edgePairOK(w, u, x, c) {
			return false
		}
	}

	return true
}

// edgePairOK compares domain edge a→b with codomain edge ia→ib when the domain edge exists.
func (m *matcher) edgePairOK(a, b, ia, ib int) bool {
	if !m.d1.has(a, b) {
		return true
	}
	e1, err := m.in.g1.EdgeBetween(m.d1.ids[a], m.d1.ids[b])
	if err != nil {
		return false
	}
	e2, err := m.in.g2.EdgeBetween(m.d2.ids[ia], m.d2.ids[ib])
	if err != nil {
		return false
	}

	return m.in.opts.EdgeCompatible(e1, e2)
}

// mapping copies the current complete assignment into a GraphMapping.
func (m *matcher) mapping() *GraphMapping {
	gm := newGraphMapping(m.in.g1, m.in.g2, m.d1.n)
	for u, c := range m.core1 {
		gm.set(m.d1.ids[u], m.d2.ids[c])
	}

	return gm
}
