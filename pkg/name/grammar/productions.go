/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nomenclatura/nomen/pkg/common/parse"
	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

// Every production either succeeds, leaving the cursor after what it
// consumed, or fails with the cursor and arena exactly as it found them.

// hybridFormula
//
// Grammar:
//
//	hybrid-formula  = name 1*( hybrid-char ( name / epithet-expr ) )
//
// The abbreviated second parent (epithet-expr) is only allowed when the
// first parent is at least a species.
func (m *matcher) hybridFormula() bool {
	s := m.save()
	if !m.name() {
		return false
	}
	firstIsSpecies := m.hasKindSince(s, KindSpecificEpithet)

	parents := 0
	for {
		h := m.save()
		if !m.hybridChar() {
			break
		}
		if m.name() {
			parents++
			continue
		}
		if firstIsSpecies && m.epithetExpr() {
			parents++
			continue
		}
		m.restore(h)
		break
	}

	if parents == 0 {
		m.restore(s)
		return false
	}
	return true
}

// namedHybrid
//
// Grammar:
//
//	named-hybrid    = hybrid-char name
func (m *matcher) namedHybrid() bool {
	s := m.save()
	if !m.hybridChar() {
		return false
	}
	if !m.name() {
		m.restore(s)
		return false
	}
	return true
}

// name
//
// Grammar:
//
//	name            = infraspecies / species / uninomial
func (m *matcher) name() bool {
	return m.infraspeciesBody() || m.speciesBody() || m.uninomialBody()
}

// epithetExpr
//
// Grammar:
//
//	epithet-expr    = epithet [ authorship ] *infraspecies
func (m *matcher) epithetExpr() bool {
	if !m.epithet(KindSpecificEpithet) {
		return false
	}
	m.authorship()
	for m.infraspecies() {
	}
	return true
}

// approximation
//
// Grammar:
//
//	approximation   = genus [ epithet [ authorship ] ] approx-marker [ epithet [ authorship ] ]
func (m *matcher) approximation() bool {
	s := m.save()
	if !m.genus() {
		return false
	}

	e := m.save()
	if m.epithet(KindSpecificEpithet) {
		m.authorship()
	}
	if !m.approxMarker() {
		m.restore(e)
		if !m.approxMarker() {
			m.restore(s)
			return false
		}
	}

	if m.epithet(KindSpecificEpithet) {
		m.authorship()
	}
	return true
}

// infraspeciesBody
//
// Grammar:
//
//	infraspecies-name = species 1*infraspecies [ cultivar ]
func (m *matcher) infraspeciesBody() bool {
	s := m.save()
	if !m.speciesCore() {
		return false
	}

	n := 0
	for m.infraspecies() {
		n++
	}
	if n == 0 {
		m.restore(s)
		return false
	}

	m.cultivar()
	return true
}

// infraspecies
//
// Grammar:
//
//	infraspecies    = [ rank [ "-" ] ] epithet [ authorship ]
func (m *matcher) infraspecies() bool {
	s := m.save()
	if m.rank() {
		m.punct("-")
	}
	if !m.epithet(KindInfraspecificEpithet) {
		m.restore(s)
		return false
	}
	m.authorship()
	return true
}

// speciesBody
//
// Grammar:
//
//	species-name    = species [ cultivar ]
func (m *matcher) speciesBody() bool {
	if !m.speciesCore() {
		return false
	}
	m.cultivar()
	return true
}

// speciesCore
//
// Grammar:
//
//	species         = genus [ subgenus ] [ hybrid-char ] epithet [ authorship ]
func (m *matcher) speciesCore() bool {
	s := m.save()
	if !m.genus() {
		return false
	}
	m.subgenus()
	m.hybridChar()
	if !m.epithet(KindSpecificEpithet) {
		m.restore(s)
		return false
	}
	m.authorship()
	return true
}

// uninomialBody
//
// Grammar:
//
//	uninomial-name  = uninomial [ authorship ]
func (m *matcher) uninomialBody() bool {
	tok, ok := m.peek()
	if !ok || !m.g.isGenusWord(tok) {
		return false
	}
	m.emit(KindUninomial)
	m.authorship()
	return true
}

// looseGenus accepts any capitalized word, e.g. a name typed in capitals.
//
// Grammar:
//
//	loose-genus     = UPPER *LETTER
func (m *matcher) looseGenus() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_WORD {
		return false
	}
	r, _ := utf8.DecodeRuneInString(tok.Lexeme)
	if !unicode.IsUpper(r) {
		return false
	}
	m.emit(KindUninomial)
	return true
}

// genus
//
// Grammar:
//
//	genus           = UPPER 1*LOWER / UPPER [ LOWER ] "."
func (m *matcher) genus() bool {
	tok, ok := m.peek()
	if !ok {
		return false
	}
	if m.g.isGenusWord(tok) || m.g.isAbbreviatedGenus(tok) {
		m.emit(KindGenus)
		return true
	}
	return false
}

// subgenus
//
// Grammar:
//
//	subgenus        = "(" UPPER 1*LOWER ")"
func (m *matcher) subgenus() bool {
	s := m.save()
	if !m.punct("(") {
		return false
	}
	tok, ok := m.peek()
	if !ok || !m.g.isGenusWord(tok) {
		m.restore(s)
		return false
	}
	m.emit(KindInfragenericEpithet)
	if !m.punct(")") {
		m.restore(s)
		return false
	}
	return true
}

func (m *matcher) epithet(kind Kind) bool {
	tok, ok := m.peek()
	if !ok || !m.g.isEpithetWord(tok) {
		return false
	}
	m.emit(kind)
	return true
}

// hybridChar
//
// Grammar:
//
//	hybrid-char     = "×" / "x" / "X"
func (m *matcher) hybridChar() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_HYBRID {
		return false
	}
	m.emit(KindHybridMarker)
	return true
}

func (m *matcher) rank() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_RANK || tok.Lexeme == "cv." {
		return false
	}
	m.emit(KindRankMarker)
	return true
}

func (m *matcher) approxMarker() bool {
	tok, ok := m.peek()
	if !ok || (tok.Type != scanner.TOK_WORD && tok.Type != scanner.TOK_ABBREV) {
		return false
	}
	if !m.g.approximations[tok.Lexeme] {
		return false
	}
	m.emit(KindApproximation)
	return true
}

// cultivar
//
// Grammar:
//
//	cultivar        = QUOTE 1*word QUOTE / "cv." 1*word
func (m *matcher) cultivar() bool {
	s := m.save()

	tok, ok := m.peek()
	if !ok {
		return false
	}

	switch {
	case tok.Type == scanner.TOK_QUOTE:
		m.pos++
		if m.cultivarWords() == 0 || !m.quote() {
			m.restore(s)
			return false
		}
		return true
	case tok.Type == scanner.TOK_RANK && tok.Lexeme == "cv.":
		m.pos++
		if m.cultivarWords() == 0 {
			m.restore(s)
			return false
		}
		return true
	}

	return false
}

func (m *matcher) cultivarWords() int {
	n := 0
	for {
		tok, ok := m.peek()
		if !ok || tok.Type != scanner.TOK_WORD {
			return n
		}
		m.emit(KindCultivar)
		n++
	}
}

// authorship
//
// Grammar:
//
//	authorship      = basionym [ combination ] / combination
func (m *matcher) authorship() bool {
	return m.memoized(prodAuthorship, func() bool {
		if m.basionym() {
			m.combination()
			return true
		}
		return m.combination()
	})
}

// basionym
//
// Grammar:
//
//	basionym        = "(" author-team [ [ "," ] year ] ")"
func (m *matcher) basionym() bool {
	s := m.save()
	if !m.punct("(") {
		return false
	}
	if !m.authorTeam() {
		m.restore(s)
		return false
	}

	y := m.save()
	m.punct(",")
	if !m.year() {
		m.restore(y)
	}

	if !m.punct(")") {
		m.restore(s)
		return false
	}
	return true
}

// combination
//
// Grammar:
//
//	combination     = author-team [ [ "," ] year-expr ] / year-expr
func (m *matcher) combination() bool {
	if m.authorTeam() {
		y := m.save()
		m.punct(",")
		if !m.yearExpr() {
			m.restore(y)
		}
		return true
	}
	return m.yearExpr()
}

// yearExpr
//
// Grammar:
//
//	year-expr       = year / "(" year ")" / "[" year "]"
func (m *matcher) yearExpr() bool {
	if m.year() {
		return true
	}

	s := m.save()
	for _, pair := range [][2]string{{"(", ")"}, {"[", "]"}} {
		if m.punct(pair[0]) && m.year() && m.punct(pair[1]) {
			return true
		}
		m.restore(s)
	}
	return false
}

func (m *matcher) year() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_YEAR {
		return false
	}
	m.emit(KindYear)
	return true
}

// authorTeam
//
// Grammar:
//
//	author-team     = author *( joiner author )
//	joiner          = "&" / "," / "et" / "and" / "ex" / "in" / "apud" / "emend."
func (m *matcher) authorTeam() bool {
	if !m.author() {
		return false
	}
	for {
		s := m.save()
		if !m.joiner() || !m.author() {
			m.restore(s)
			return true
		}
	}
}

// author
//
// Grammar:
//
//	author          = *particle author-name *( particle / author-name ) [ filius ]
//
// An author never ends on a particle.
func (m *matcher) author() bool {
	s := m.save()

	var last *state
	for {
		if m.authorName() {
			end := m.save()
			last = &end
			continue
		}
		if m.particle() {
			continue
		}
		break
	}

	if last == nil {
		m.restore(s)
		return false
	}
	m.restore(*last)
	m.filiusMarker()
	return true
}

func (m *matcher) authorName() bool {
	tok, ok := m.peek()
	if !ok || !m.g.isAuthorName(tok) {
		return false
	}
	m.emit(KindAuthorWord)
	return true
}

func (m *matcher) particle() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_WORD || !m.g.particles[tok.Lexeme] {
		return false
	}
	m.emit(KindAuthorWord)
	return true
}

func (m *matcher) filiusMarker() bool {
	tok, ok := m.peek()
	if !ok || !m.g.filius[tok.Lexeme] {
		return false
	}
	switch tok.Type {
	case scanner.TOK_RANK, scanner.TOK_ABBREV, scanner.TOK_WORD:
		m.emit(KindAuthorWord)
		return true
	}
	return false
}

func (m *matcher) joiner() bool {
	tok, ok := m.peek()
	if !ok {
		return false
	}
	switch tok.Type {
	case scanner.TOK_PUNCT, scanner.TOK_WORD, scanner.TOK_ABBREV:
		if m.g.joiners[tok.Lexeme] {
			m.pos++
			return true
		}
	}
	return false
}

func (m *matcher) punct(lexeme string) bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_PUNCT || tok.Lexeme != lexeme {
		return false
	}
	m.pos++
	return true
}

func (m *matcher) quote() bool {
	tok, ok := m.peek()
	if !ok || tok.Type != scanner.TOK_QUOTE {
		return false
	}
	m.pos++
	return true
}

// isGenusWord reports whether tok is a capitalized word whose remaining
// letters are lower case, e.g. "Homo".
func (g *Grammar) isGenusWord(tok parse.Token) bool {
	if tok.Type != scanner.TOK_WORD {
		return false
	}
	return isCapitalized(tok.Lexeme, 2)
}

// isAbbreviatedGenus matches "H." and "Ch." style genus abbreviations.
func (g *Grammar) isAbbreviatedGenus(tok parse.Token) bool {
	if tok.Type != scanner.TOK_ABBREV {
		return false
	}
	letters := strings.TrimSuffix(tok.Lexeme, ".")
	if utf8.RuneCountInString(letters) > 2 {
		return false
	}
	return isCapitalized(letters, 1)
}

// isEpithetWord reports whether tok is an all lower case word of at least
// two letters that is not an author particle or connector.
func (g *Grammar) isEpithetWord(tok parse.Token) bool {
	if tok.Type != scanner.TOK_WORD || g.stopwords[tok.Lexeme] {
		return false
	}
	if utf8.RuneCountInString(tok.Lexeme) < 2 {
		return false
	}
	for i, r := range tok.Lexeme {
		switch {
		case unicode.IsLower(r), unicode.Is(unicode.Mn, r):
		case i > 0 && (r == '-' || r == '\'' || r == '’'):
		default:
			return false
		}
	}
	return true
}

// isAuthorName matches capitalized words and abbreviations ("Smith",
// "L.", "DC."), apostrophe prefixed names ("d'Urville") and "al.".
func (g *Grammar) isAuthorName(tok parse.Token) bool {
	switch tok.Type {
	case scanner.TOK_WORD, scanner.TOK_ABBREV:
	default:
		return false
	}

	if tok.Lexeme == "al." {
		return true
	}

	r, _ := utf8.DecodeRuneInString(tok.Lexeme)
	if unicode.IsUpper(r) {
		return true
	}

	if i := strings.IndexAny(tok.Lexeme, "'’"); i > 0 && i <= 2 {
		rest := strings.TrimLeft(tok.Lexeme[i:], "'’")
		next, _ := utf8.DecodeRuneInString(rest)
		return unicode.IsUpper(next)
	}

	return false
}

// isCapitalized reports whether s starts with an upper case letter
// followed only by lower case letters, and has at least minLen runes.
func isCapitalized(s string, minLen int) bool {
	if utf8.RuneCountInString(s) < minLen {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLower(r) && !unicode.Is(unicode.Mn, r) && r != '-' {
			return false
		}
	}
	return true
}
