// File: cursor.go
// Role: MappingCursor, the pull-based enumerator over one private matcher.

package isomorphism

import "iter"

// MappingCursor lazily enumerates mappings. Each HasNext/Next pair advances
// the search only as far as the next solution; nothing is computed ahead.
//
// A cursor is single-goroutine. Dropping it abandons the search: no goroutine
// or background work outlives the last call.
type MappingCursor struct {
	m       *matcher
	pending bool // matcher is suspended on a solution not yet returned by Next
	done    bool
}

// HasNext reports whether another mapping is available, running the search
// up to it if needed. Repeated calls without Next do no further work.
func (c *MappingCursor) HasNext() bool {
	if c.pending {
		return true
	}
	if c.done {
		return false
	}
	if !c.m.next() {
		c.done = true
		return false
	}
	c.pending = true

	return true
}

// Next returns the next mapping as an independent copy.
//
// Errors:
//   - ErrNoMoreMappings once the search is exhausted.
//   - the context error if the search was cancelled via WithContext.
func (c *MappingCursor) Next() (*GraphMapping, error) {
	if !c.HasNext() {
		if c.m.err != nil {
			return nil, c.m.err
		}
		return nil, ErrNoMoreMappings
	}
	c.pending = false

	return c.m.mapping(), nil
}

// Err returns the error that terminated the search, or nil.
// Exhaustion is not an error.
func (c *MappingCursor) Err() error { return c.m.err }

// Stats returns the work done so far.
func (c *MappingCursor) Stats() Stats { return c.m.stats }

// All adapts the cursor to range-over-func. Breaking out of the loop leaves
// the cursor positioned after the last yielded mapping; check Err afterwards.
func (c *MappingCursor) All() iter.Seq[*GraphMapping] {
	return func(yield func(*GraphMapping) bool) {
		for c.HasNext() {
			gm, err := c.Next()
			if err != nil || !yield(gm) {
				return
			}
		}
	}
}
