/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package grammar classifies scanned name tokens into scientific name
// constructs. A Grammar is immutable once built and can be shared by any
// number of goroutines; all per-call state lives in a matcher.
package grammar

import "sync"

// Kind is the role a single token plays in a matched name.
type Kind int

const (
	KindUninomial Kind = iota
	KindGenus
	KindInfragenericEpithet
	KindSpecificEpithet
	KindInfraspecificEpithet
	KindRankMarker
	KindHybridMarker
	KindAuthorWord
	KindYear
	KindCultivar
	KindApproximation
)

func (k Kind) String() string {
	switch k {
	case KindUninomial:
		return "uninomial"
	case KindGenus:
		return "genus"
	case KindInfragenericEpithet:
		return "infrageneric_epithet"
	case KindSpecificEpithet:
		return "specific_epithet"
	case KindInfraspecificEpithet:
		return "infraspecific_epithet"
	case KindRankMarker:
		return "rank_marker"
	case KindHybridMarker:
		return "hybrid_marker"
	case KindAuthorWord:
		return "author_word"
	case KindYear:
		return "year"
	case KindCultivar:
		return "cultivar"
	case KindApproximation:
		return "approximation"
	}
	return "unknown"
}

// Node binds one token, by index, to the role it plays.
type Node struct {
	Kind  Kind
	Token int
}

const (
	RuleHybridFormula = "hybrid_formula"
	RuleNamedHybrid   = "named_hybrid"
	RuleApproximation = "approximation"
	RuleInfraspecies  = "infraspecies"
	RuleSpecies       = "species"
	RuleUninomial     = "uninomial"
	RuleLooseGenus    = "loose_genus"
)

// Rule is a top level production. Lower Priority values win.
type Rule struct {
	Name     string
	Priority int
	// Loose rules are fallbacks whose matches carry less confidence.
	Loose bool

	match func(*matcher) bool
}

// Grammar holds the rule table and the word lists the productions consult.
type Grammar struct {
	rules []Rule

	particles      map[string]bool
	joiners        map[string]bool
	filius         map[string]bool
	approximations map[string]bool
	stopwords      map[string]bool
}

var (
	defaultGrammar *Grammar
	defaultOnce    sync.Once
)

// Default returns the process wide grammar, building it on first use.
func Default() *Grammar {
	defaultOnce.Do(func() {
		defaultGrammar = New()
	})
	return defaultGrammar
}

// New builds a grammar. Rules are listed from the most specific construct
// to the loosest fallback; that order is the priority used for ranking.
func New() *Grammar {
	g := &Grammar{
		particles: set(
			"de", "der", "den", "des", "del", "della", "dalla", "degli", "di", "da",
			"do", "dos", "du", "la", "le", "van", "von", "ter", "zu", "zur", "y", "bis",
		),
		joiners:        set("&", ",", "et", "and", "ex", "in", "apud", "emend."),
		filius:         set("f.", "fil.", "filius"),
		approximations: set("sp.", "sp", "spp.", "spp", "cf.", "cf", "aff.", "aff", "nr.", "near"),
	}

	g.stopwords = set("al", "non", "nec", "sensu", "auct", "nom", "nud", "comb", "nov", "stat")
	for _, words := range []map[string]bool{g.particles, g.joiners, g.approximations} {
		for w := range words {
			g.stopwords[w] = true
		}
	}

	g.rules = []Rule{
		{Name: RuleHybridFormula, match: (*matcher).hybridFormula},
		{Name: RuleNamedHybrid, match: (*matcher).namedHybrid},
		{Name: RuleApproximation, Loose: true, match: (*matcher).approximation},
		{Name: RuleInfraspecies, match: (*matcher).infraspeciesBody},
		{Name: RuleSpecies, match: (*matcher).speciesBody},
		{Name: RuleUninomial, match: (*matcher).uninomialBody},
		{Name: RuleLooseGenus, Loose: true, match: (*matcher).looseGenus},
	}
	for i := range g.rules {
		g.rules[i].Priority = i + 1
	}

	return g
}

// Rules returns the rule table in priority order.
func (g *Grammar) Rules() []Rule {
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)
	return rules
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
