/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

var ligatures = map[rune]string{
	'æ': "ae",
	'Æ': "Ae",
	'œ': "oe",
	'Œ': "Oe",
}

// FoldDiacritics strips combining marks and expands ligatures, so
// "Leptochloöpsis" becomes "Leptochloopsis" and "Cæsalpinia" "Caesalpinia".
func FoldDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if l, ok := ligatures[r]; ok {
			b.WriteString(l)
			continue
		}
		b.WriteRune(r)
	}

	return norm.NFC.String(b.String())
}

// canonical joins the taxonomically significant components with single
// spaces. Anything after an approximation marker is left out.
func (b *Builder) canonical(r *Result, ws warningSet) string {
	var parts []string
	comps := r.Components

	for i := 0; i < len(comps); i++ {
		c := comps[i]

		switch c.Tag {
		case TagApproximation:
			return strings.Join(parts, " ")
		case TagUnparsed, TagInfragenericEpithet:
		case TagUninomial, TagGenus, TagSpecificEpithet, TagInfraspecificEpithet:
			folded := FoldDiacritics(c.Value)
			if folded != c.Value {
				ws.add(WarnDiacritics)
			}
			parts = append(parts, folded)
		case TagRankMarker:
			parts = append(parts, scanner.NormalizeRank(c.Value))
		case TagHybridMarker:
			parts = append(parts, "×")
		case TagAuthorWord, TagYear:
			j := runEnd(comps, i, TagAuthorWord, TagYear)
			if b.Options.WithAuthors {
				parts = append(parts, authorship(r, comps[i:j]))
			}
			i = j - 1
		case TagCultivar:
			j := runEnd(comps, i, TagCultivar)
			if !b.Options.WithCultivars {
				ws.add(WarnCultivarIgnored)
			} else {
				words := make([]string, 0, j-i)
				for _, w := range comps[i:j] {
					words = append(words, w.Value)
				}
				parts = append(parts, "'"+strings.Join(words, " ")+"'")
			}
			i = j - 1
		}
	}

	return strings.Join(parts, " ")
}

// runEnd returns the index after the run of components starting at i
// whose tags are all in tags.
func runEnd(comps []Component, i int, tags ...Tag) int {
	j := i
	for ; j < len(comps); j++ {
		found := false
		for _, t := range tags {
			if comps[j].Tag == t {
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return j
}

// authorship returns the verbatim text of an authorship run with its
// whitespace collapsed, widened to take in an enclosing basionym's
// parentheses.
func authorship(r *Result, run []Component) string {
	start := run[0].Start
	end := run[len(run)-1].End

	for i, tok := range r.Tokens {
		if tok.Location.Start == start && i > 0 && r.Tokens[i-1].Lexeme == "(" {
			start = r.Tokens[i-1].Location.Start
			break
		}
	}

	text := r.Verbatim[start:end]
	if strings.Count(text, "(") > strings.Count(text, ")") {
		for i, tok := range r.Tokens {
			if tok.Location.End == end && i+1 < len(r.Tokens) && r.Tokens[i+1].Lexeme == ")" {
				end = r.Tokens[i+1].Location.End
				break
			}
		}
		text = r.Verbatim[start:end]
	}

	return strings.Join(strings.Fields(text), " ")
}
