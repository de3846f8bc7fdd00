/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import "sort"

// Warning is a problem noticed while parsing a name. Warnings are ordered
// from the most to the least severe.
type Warning int

const (
	WarnInvalidUTF8 Warning = iota
	WarnTailUnparsed
	WarnHeadUnparsed
	WarnLooseFallback
	WarnApproximation
	WarnGenusAbbreviated
	WarnYearWithoutAuthor
	WarnHybridCharX
	WarnDiacritics
	WarnMultipleSpaces
	WarnSurroundingSpace
	WarnCultivarIgnored
)

type warningInfo struct {
	code     string
	message  string
	severity int
}

var warnings = map[Warning]warningInfo{
	WarnInvalidUTF8:       {"invalid_utf8", "Input is not valid UTF-8; offsets count its bytes", 4},
	WarnTailUnparsed:      {"tail_unparsed", "Unparsed tail", 4},
	WarnHeadUnparsed:      {"head_unparsed", "Unparsed head", 4},
	WarnLooseFallback:     {"loose_fallback", "Matched only by a loose fallback rule", 3},
	WarnApproximation:     {"approximation", "Name is an approximation (sp., cf., aff.)", 3},
	WarnGenusAbbreviated:  {"genus_abbreviated", "Abbreviated genus", 2},
	WarnYearWithoutAuthor: {"year_without_author", "Year without an author", 2},
	WarnHybridCharX:       {"hybrid_char_x", "Hybrid marker written as a letter x", 2},
	WarnDiacritics:        {"diacritics", "Name contains diacritics", 2},
	WarnMultipleSpaces:    {"multiple_spaces", "Multiple adjacent spaces", 2},
	WarnSurroundingSpace:  {"surrounding_space", "Leading or trailing spaces", 2},
	WarnCultivarIgnored:   {"cultivar_ignored", "Cultivar left out of the canonical name", 1},
}

func (w Warning) Code() string {
	return warnings[w].code
}

func (w Warning) Message() string {
	return warnings[w].message
}

// Severity is the quality a result cannot be better than when it carries
// this warning.
func (w Warning) Severity() int {
	return warnings[w].severity
}

func (w Warning) String() string {
	return w.Code()
}

// warningSet collects warnings without duplicates.
type warningSet map[Warning]struct{}

func (s warningSet) add(w Warning) {
	s[w] = struct{}{}
}

// sorted returns the warnings most severe first. It never returns nil.
func (s warningSet) sorted() []Warning {
	list := make([]Warning, 0, len(s))
	for w := range s {
		list = append(list, w)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
