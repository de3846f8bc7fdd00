/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import "github.com/nomenclatura/nomen/pkg/name/grammar"

// Tag identifies the variant of a Component.
type Tag int

const (
	TagUnparsed Tag = iota
	TagUninomial
	TagGenus
	TagInfragenericEpithet
	TagSpecificEpithet
	TagInfraspecificEpithet
	TagRankMarker
	TagHybridMarker
	TagAuthorWord
	TagYear
	TagCultivar
	TagApproximation
)

var tagNames = map[Tag][2]string{
	TagUnparsed:             {"unparsed", "unparsed"},
	TagUninomial:            {"uninomial", "uninomial"},
	TagGenus:                {"genus", "genus"},
	TagInfragenericEpithet:  {"infrageneric_epithet", "infragenericEpithet"},
	TagSpecificEpithet:      {"specific_epithet", "specificEpithet"},
	TagInfraspecificEpithet: {"infraspecific_epithet", "infraspecificEpithet"},
	TagRankMarker:           {"rank_marker", "rankMarker"},
	TagHybridMarker:         {"hybrid_marker", "hybridMarker"},
	TagAuthorWord:           {"author_word", "authorWord"},
	TagYear:                 {"year", "year"},
	TagCultivar:             {"cultivar", "cultivar"},
	TagApproximation:        {"approximation", "approximation"},
}

// Snake returns the tag name used by the compact schema.
func (t Tag) Snake() string {
	if n, ok := tagNames[t]; ok {
		return n[0]
	}
	return "unknown"
}

// Camel returns the tag name used by the verbose schema.
func (t Tag) Camel() string {
	if n, ok := tagNames[t]; ok {
		return n[1]
	}
	return "unknown"
}

func (t Tag) String() string {
	return t.Snake()
}

var kindTags = map[grammar.Kind]Tag{
	grammar.KindUninomial:            TagUninomial,
	grammar.KindGenus:                TagGenus,
	grammar.KindInfragenericEpithet:  TagInfragenericEpithet,
	grammar.KindSpecificEpithet:      TagSpecificEpithet,
	grammar.KindInfraspecificEpithet: TagInfraspecificEpithet,
	grammar.KindRankMarker:           TagRankMarker,
	grammar.KindHybridMarker:         TagHybridMarker,
	grammar.KindAuthorWord:           TagAuthorWord,
	grammar.KindYear:                 TagYear,
	grammar.KindCultivar:             TagCultivar,
	grammar.KindApproximation:        TagApproximation,
}

// TagOf maps a grammar node kind onto its component tag.
func TagOf(k grammar.Kind) Tag {
	if t, ok := kindTags[k]; ok {
		return t
	}
	return TagUnparsed
}

// Component is one semantic unit of a name. Value is always exactly the
// slice [Start, End) of the verbatim input.
type Component struct {
	Tag   Tag
	Value string
	Start int
	End   int
}
