//go:build !clausepool

package sat

// alloc is the default, pool-free allocation strategy: each clause gets its
// own freshly copied literal slice. Build with -tags clausepool to switch to
// the sync.Pool-backed strategy in arena_pool.go instead.
func (a *clauseArena) alloc(literals []Literal, redundant bool) ClauseID {
	id := ClauseID(len(a.clauses))
	c := Clause{
		literals: append([]Literal(nil), literals...),
		prevPos:  2,
	}
	if redundant {
		c.status |= statusRedundant
	}
	a.clauses = append(a.clauses, c)
	return id
}

// tombstone marks a clause as deleted and releases its literal storage. The
// slot itself is kept so that dangling IDs can still be recognized as
// deleted rather than silently aliasing another clause.
func (a *clauseArena) tombstone(id ClauseID) {
	c := &a.clauses[id]
	c.status |= statusDeleted
	c.literals = nil
}
