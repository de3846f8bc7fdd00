/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nomenclatura/nomen/pkg/common/parse"
)

const hybridSign = '×'

type Scanner struct {
	Input string
	Start int
	Pos   int
}

// Tokenize splits input into tokens, in input order. It never fails:
// anything it does not recognize becomes a TOK_UNPARSEABLE token.
func Tokenize(input string) []parse.Token {
	s := Scanner{Input: input}

	var tokens []parse.Token
	for {
		tok := s.Emit()
		if tok.Type == TOK_EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens
}

// MatchWord returns the length of the next token, assuming it is a word.
// Hyphens and apostrophes are part of a word when a letter follows them,
// unless the part before a hyphen is a rank marker ("var-alba").
//
// Grammar:
//
//	word            = LETTER *( LETTER / ( ( "-" / "'" ) LETTER ) )
func (s *Scanner) MatchWord() int {
	i := s.Pos
	size := 0

	for i < len(s.Input) {
		r, width := utf8.DecodeRuneInString(s.Input[i:])
		if isWordRune(r) {
			size += width
			i += width
			continue
		}

		if size > 0 && isJoiner(r) {
			next, nextWidth := utf8.DecodeRuneInString(s.Input[i+width:])
			if unicode.IsLetter(next) {
				if r == '-' && IsRankMarker(s.Input[s.Pos:i]) {
					break
				}
				size += width + nextWidth
				i += width + nextWidth
				continue
			}
		}

		break
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// number
//
// Grammar:
//
//	number          = 1*DIGIT
func (s *Scanner) MatchNumber() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for i := s.Pos; unicode.IsDigit(r); {
		size += width
		i += width
		r, width = utf8.DecodeRuneInString(s.Input[i:])
	}

	return size
}

// Emit the next Token found on Scanner.Input
func (s *Scanner) Emit() parse.Token {
	var t parse.Token

	for {
		if s.Pos >= len(s.Input) {
			s.Start = len(s.Input)
			s.Pos = len(s.Input)
			t.Type = TOK_EOF
			break
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		s.Start = s.Pos
		found := true
		skip := 0

		switch {
		case unicode.IsSpace(r):
			skip = width
			found = false
		case r == hybridSign:
			t.Type = TOK_HYBRID
			skip = width
		case isQuote(r):
			t.Type = TOK_QUOTE
			skip = width
		case isPunctuation(r):
			t.Type = TOK_PUNCT
			skip = width
		case unicode.IsDigit(r):
			skip = s.MatchNumber()
			t.Type = TOK_NUMBER
			if isYear(s.Input[s.Pos : s.Pos+skip]) {
				t.Type = TOK_YEAR
			}
		case unicode.IsLetter(r):
			skip = s.MatchWord()
			t.Type = s.classifyWord(&skip)
		default:
			t.Type = TOK_UNPARSEABLE
			skip = s.SkipToBoundary(isDelimiter)
		}

		if skip == 0 {
			skip = width
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	return t
}

// classifyWord decides the type of the word of length *size at s.Pos,
// extending it over a directly following period when it is abbreviated.
func (s *Scanner) classifyWord(size *int) TokenType {
	end := s.Pos + *size
	word := s.Input[s.Pos:end]

	if end < len(s.Input) && s.Input[end] == '.' {
		*size++
		if IsRankMarker(word + ".") {
			return TOK_RANK
		}
		return TOK_ABBREV
	}

	if word == "x" || word == "X" {
		return TOK_HYBRID
	}

	if IsRankMarker(word) {
		return TOK_RANK
	}

	return TOK_WORD
}

type boundaryFunc func(rune) bool

func isDelimiter(r rune) bool {
	return unicode.IsSpace(r) || isPunctuation(r) || isQuote(r) || r == hybridSign
}

// SkipToBoundary returns the number of bytes until the next delimiter.
// This is useful for skipping over invalid tokens.
func (s *Scanner) SkipToBoundary(boundary boundaryFunc) int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	size := 0

	for !boundary(r) && s.Pos+size < len(s.Input) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	return r == '-' || r == '\'' || r == '’'
}

func isQuote(r rune) bool {
	return r == '\'' || r == '‘' || r == '’'
}

func isPunctuation(r rune) bool {
	return strings.ContainsRune("()[],;:&\".?!/-+=", r)
}

func isYear(digits string) bool {
	if len(digits) != 4 {
		return false
	}
	return digits >= "1500" && digits <= "2099"
}
