/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package grammar

import (
	"sort"

	"github.com/nomenclatura/nomen/pkg/common/parse"
	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

// Candidate is one successful rule application. Its nodes live in the
// owning Match's arena at [First, Last).
type Candidate struct {
	Rule *Rule

	// Token range [Start, End) covered by the rule.
	Start int
	End   int

	First int
	Last  int
}

func (c Candidate) Coverage() int {
	return c.End - c.Start
}

// Match is the outcome of running every rule over a token stream.
// Candidates are ranked best first.
type Match struct {
	Tokens     []parse.Token
	Nodes      []Node
	Candidates []Candidate
}

// NodesOf returns the arena slice belonging to c.
func (m *Match) NodesOf(c Candidate) []Node {
	return m.Nodes[c.First:c.Last:c.Last]
}

// Best returns the highest ranked candidate, if any rule matched.
func (m *Match) Best() (Candidate, bool) {
	if len(m.Candidates) == 0 {
		return Candidate{}, false
	}
	return m.Candidates[0], true
}

// Match applies every rule, in priority order, at the leftmost position
// where at least one of them succeeds. Leading punctuation, quotes and
// unparseable tokens may be skipped to find that position; any other token
// must start the name.
func (g *Grammar) Match(tokens []parse.Token) *Match {
	m := newMatcher(g, tokens)
	result := &Match{Tokens: tokens}

	for start := 0; start < len(tokens); start++ {
		for i := range g.rules {
			rule := &g.rules[i]

			m.pos = start
			mark := len(m.nodes)
			// A rule has to consume something to count as a match.
			if !rule.match(m) || m.pos == start {
				m.nodes = m.nodes[:mark]
				continue
			}

			result.Candidates = append(result.Candidates, Candidate{
				Rule:  rule,
				Start: start,
				End:   m.pos,
				First: mark,
				Last:  len(m.nodes),
			})
		}

		if len(result.Candidates) > 0 || !skippable(tokens[start]) {
			break
		}
	}

	result.Nodes = m.nodes
	rank(result.Candidates)

	return result
}

// rank orders candidates by rule priority, then coverage, then start.
// Competing readings inside one rule are settled by its productions, so
// the order is total and the first candidate is the only answer.
func rank(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Rule.Priority != b.Rule.Priority {
			return a.Rule.Priority < b.Rule.Priority
		}
		if a.Coverage() != b.Coverage() {
			return a.Coverage() > b.Coverage()
		}
		return a.Start < b.Start
	})
}

func skippable(tok parse.Token) bool {
	switch tok.Type {
	case scanner.TOK_PUNCT, scanner.TOK_QUOTE, scanner.TOK_UNPARSEABLE:
		return true
	}
	return false
}

type production int

const (
	prodAuthorship production = iota
)

type memoKey struct {
	prod production
	pos  int
}

type memoEntry struct {
	ok    bool
	end   int
	nodes []Node
}

// state is a backtracking point: a token cursor and an arena length.
type state struct {
	pos   int
	nodes int
}

type matcher struct {
	g      *Grammar
	tokens []parse.Token

	pos   int
	nodes []Node
	memo  map[memoKey]memoEntry
}

func newMatcher(g *Grammar, tokens []parse.Token) *matcher {
	return &matcher{
		g:      g,
		tokens: tokens,
		nodes:  make([]Node, 0, len(tokens)*2),
		memo:   make(map[memoKey]memoEntry),
	}
}

func (m *matcher) save() state {
	return state{pos: m.pos, nodes: len(m.nodes)}
}

// restore rewinds the cursor and discards every node bound since s.
func (m *matcher) restore(s state) {
	m.pos = s.pos
	m.nodes = m.nodes[:s.nodes]
}

func (m *matcher) peek() (parse.Token, bool) {
	if m.pos >= len(m.tokens) {
		return parse.Token{}, false
	}
	return m.tokens[m.pos], true
}

// emit binds the current token to kind and advances.
func (m *matcher) emit(kind Kind) {
	m.nodes = append(m.nodes, Node{Kind: kind, Token: m.pos})
	m.pos++
}

// memoized runs f at most once per (production, position). Productions
// run through here must bind the same kinds regardless of their caller.
func (m *matcher) memoized(p production, f func() bool) bool {
	key := memoKey{prod: p, pos: m.pos}
	if e, ok := m.memo[key]; ok {
		if !e.ok {
			return false
		}
		m.nodes = append(m.nodes, e.nodes...)
		m.pos = e.end
		return true
	}

	start := m.save()
	if !f() {
		m.restore(start)
		m.memo[key] = memoEntry{}
		return false
	}

	nodes := make([]Node, len(m.nodes)-start.nodes)
	copy(nodes, m.nodes[start.nodes:])
	m.memo[key] = memoEntry{ok: true, end: m.pos, nodes: nodes}

	return true
}

func (m *matcher) hasKindSince(s state, kind Kind) bool {
	for _, n := range m.nodes[s.nodes:] {
		if n.Kind == kind {
			return true
		}
	}
	return false
}
