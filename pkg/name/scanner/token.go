/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	TOK_WORD
	TOK_ABBREV
	TOK_PUNCT
	TOK_HYBRID
	TOK_RANK
	TOK_YEAR
	TOK_NUMBER
	TOK_QUOTE
	TOK_UNPARSEABLE
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_WORD:
		return "TOK_WORD"
	case TOK_ABBREV:
		return "TOK_ABBREV"
	case TOK_PUNCT:
		return "TOK_PUNCT"
	case TOK_HYBRID:
		return "TOK_HYBRID"
	case TOK_RANK:
		return "TOK_RANK"
	case TOK_YEAR:
		return "TOK_YEAR"
	case TOK_NUMBER:
		return "TOK_NUMBER"
	case TOK_QUOTE:
		return "TOK_QUOTE"
	case TOK_UNPARSEABLE:
		return "TOK_UNPARSEABLE"
	}
	return "TOK_UNKNOWN"
}

// Kind is the name used for the token type in rendered output.
func (t TokenType) Kind() string {
	switch t {
	case TOK_WORD:
		return "word"
	case TOK_ABBREV:
		return "abbreviation"
	case TOK_PUNCT:
		return "punctuation"
	case TOK_HYBRID:
		return "hybridMarker"
	case TOK_RANK:
		return "rankMarker"
	case TOK_YEAR:
		return "year"
	case TOK_NUMBER:
		return "number"
	case TOK_QUOTE:
		return "quote"
	case TOK_UNPARSEABLE:
		return "unparseable"
	}
	return "invalid"
}

// rankMarkers maps every recognized infraspecific rank spelling to its
// normalized form.
var rankMarkers = map[string]string{
	"subsp.":      "subsp.",
	"subsp":       "subsp.",
	"ssp.":        "subsp.",
	"ssp":         "subsp.",
	"nothosubsp.": "nothosubsp.",
	"nothosubsp":  "nothosubsp.",
	"var.":        "var.",
	"var":         "var.",
	"nothovar.":   "nothovar.",
	"nothovar":    "nothovar.",
	"subvar.":     "subvar.",
	"subvar":      "subvar.",
	"f.":          "f.",
	"fo.":         "f.",
	"forma":       "f.",
	"nothof.":     "nothof.",
	"subf.":       "subf.",
	"subfo.":      "subf.",
	"subforma":    "subf.",
	"cv.":         "cv.",
	"convar.":     "convar.",
	"convar":      "convar.",
	"morph.":      "morph.",
	"morpha":      "morph.",
	"ab.":         "ab.",
	"prol.":       "prol.",
	"proles":      "prol.",
	"race":        "race",
	"natio":       "natio",
	"lusus":       "lusus",
}

// IsRankMarker reports whether lexeme is a known rank spelling. Matching is
// case sensitive so that author initials such as "F." are not ranks.
func IsRankMarker(lexeme string) bool {
	_, ok := rankMarkers[lexeme]
	return ok
}

// NormalizeRank returns the normalized spelling of a rank marker, or the
// lexeme itself when it is not a known rank.
func NormalizeRank(lexeme string) string {
	if n, ok := rankMarkers[lexeme]; ok {
		return n
	}
	return lexeme
}
