//go:build clausepool

package sat

import "sync"

// This file replaces clauseArena.alloc's plain `append([]Literal(nil), ...)`
// with a size-bucketed sync.Pool, pooling the literal backing slices that
// live inside arena-allocated Clause values.

const nLiteralPools = 4
const lastPoolCapacity = 1 << nLiteralPools

var literalPools [nLiteralPools]sync.Pool

func init() {
	for i := 0; i < nLiteralPools; i++ {
		capa := 1 << (i + 1)
		literalPools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

func literalPoolID(capa int) int {
	if capa >= lastPoolCapacity {
		return nLiteralPools - 1
	}
	id := 0
	for (1 << (id + 1)) < capa {
		id++
	}
	return id
}

func allocLiteralSlice(n int) []Literal {
	ref := literalPools[literalPoolID(n)].Get().(*[]Literal)
	s := (*ref)[:0]
	if cap(s) < n {
		s = make([]Literal, 0, n)
	}
	return s
}

func freeLiteralSlice(s []Literal) {
	s = s[:0]
	literalPools[literalPoolID(cap(s))].Put(&s)
}

func (a *clauseArena) alloc(literals []Literal, redundant bool) ClauseID {
	id := ClauseID(len(a.clauses))
	buf := allocLiteralSlice(len(literals))
	buf = append(buf, literals...)
	c := Clause{
		literals: buf,
		prevPos:  2,
	}
	if redundant {
		c.status |= statusRedundant
	}
	a.clauses = append(a.clauses, c)
	return id
}

func (a *clauseArena) tombstone(id ClauseID) {
	c := &a.clauses[id]
	c.status |= statusDeleted
	if c.literals != nil {
		freeLiteralSlice(c.literals)
	}
	c.literals = nil
}
