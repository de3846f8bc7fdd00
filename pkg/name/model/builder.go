/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nomenclatura/nomen/pkg/common/parse"
	"github.com/nomenclatura/nomen/pkg/name/grammar"
)

// Options control what goes into the canonical name.
type Options struct {
	WithAuthors   bool
	WithCultivars bool
}

// Builder turns a grammar match into a Result. It holds no per-call state.
type Builder struct {
	Options Options
}

func NewBuilder(o Options) *Builder {
	return &Builder{Options: o}
}

// Build assembles the result for input from the best candidate of m. When
// nothing matched, or input is not valid UTF-8, every token is folded into
// one unparsed component.
func (b *Builder) Build(input string, m *grammar.Match) Result {
	r := Result{
		ID:         NameID(input),
		Verbatim:   input,
		Components: []Component{},
		Warnings:   []Warning{},
		Tokens:     m.Tokens,
	}

	valid := utf8.ValidString(input)
	if !valid {
		r.Warnings = append(r.Warnings, WarnInvalidUTF8)
	}

	best, ok := m.Best()
	if !ok || !valid {
		if len(m.Tokens) > 0 {
			r.Components = append(r.Components, fold(input, m.Tokens))
		}
		b.check(&r)
		return r
	}

	ws := warningSet{}

	r.Parsed = true
	r.Rule = best.Rule.Name

	if best.Start > 0 {
		r.Components = append(r.Components, fold(input, m.Tokens[:best.Start]))
		ws.add(WarnHeadUnparsed)
	}

	for _, n := range m.NodesOf(best) {
		tok := m.Tokens[n.Token]
		r.Components = append(r.Components, Component{
			Tag:   TagOf(n.Kind),
			Value: tok.Lexeme,
			Start: tok.Location.Start,
			End:   tok.Location.End,
		})
	}

	if best.End < len(m.Tokens) {
		r.Components = append(r.Components, fold(input, m.Tokens[best.End:]))
		ws.add(WarnTailUnparsed)
	}

	switch {
	case best.Rule.Name == grammar.RuleApproximation:
		ws.add(WarnApproximation)
	case best.Rule.Loose:
		ws.add(WarnLooseFallback)
	}

	componentWarnings(&r, ws)
	spaceWarnings(input, ws)

	r.Canonical = b.canonical(&r, ws)
	r.Warnings = ws.sorted()
	r.Quality = quality(&r)

	b.check(&r)
	return r
}

// check panics when a result breaks the component invariants; that is a
// bug in the grammar, never a property of the input.
func (b *Builder) check(r *Result) {
	if err := Validate(r); err != nil {
		panic(err)
	}
}

// fold covers a run of tokens with a single unparsed component.
func fold(input string, tokens []parse.Token) Component {
	start := tokens[0].Location.Start
	end := tokens[len(tokens)-1].Location.End
	return Component{
		Tag:   TagUnparsed,
		Value: input[start:end],
		Start: start,
		End:   end,
	}
}

func componentWarnings(r *Result, ws warningSet) {
	for i, c := range r.Components {
		switch c.Tag {
		case TagHybridMarker:
			if c.Value == "x" || c.Value == "X" {
				ws.add(WarnHybridCharX)
			}
		case TagGenus:
			if strings.HasSuffix(c.Value, ".") {
				ws.add(WarnGenusAbbreviated)
			}
		case TagYear:
			if i == 0 {
				ws.add(WarnYearWithoutAuthor)
				continue
			}
			if prev := r.Components[i-1].Tag; prev != TagAuthorWord && prev != TagYear {
				ws.add(WarnYearWithoutAuthor)
			}
		}
	}
}

func spaceWarnings(input string, ws warningSet) {
	trimmed := strings.TrimSpace(input)
	if trimmed != input {
		ws.add(WarnSurroundingSpace)
	}

	space := false
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			if space {
				ws.add(WarnMultipleSpaces)
				return
			}
			space = true
			continue
		}
		space = false
	}
}

// quality scores a parsed result from 1 (best) to 4. Every warning caps
// the score at its severity.
func quality(r *Result) int {
	if !r.Parsed {
		return 0
	}

	q := 2
	if r.HasAuthor() {
		q = 1
	}

	for _, w := range r.Warnings {
		if w.Severity() > q {
			q = w.Severity()
		}
	}
	return q
}
