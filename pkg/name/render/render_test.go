/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomenclatura/nomen/pkg/name/grammar"
	"github.com/nomenclatura/nomen/pkg/name/model"
	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

func parse(input string) model.Result {
	b := model.NewBuilder(model.Options{})
	return b.Build(input, grammar.Default().Match(scanner.Tokenize(input)))
}

func TestCompactSpecies(t *testing.T) {
	out := Compact(parse("Homo sapiens L."))

	assert.Equal(t,
		`{"parsed":true,"positions":[["genus",0,4],["specific_epithet",5,12],["author_word",13,15]],"canonicalName":"Homo sapiens"}`,
		out)
}

func TestCompactEmpty(t *testing.T) {
	out := Compact(parse(""))

	assert.Equal(t, `{"parsed":false,"positions":[],"canonicalName":null}`, out)
}

func TestCompactGarbage(t *testing.T) {
	out := Compact(parse("###"))

	assert.Equal(t, `{"parsed":false,"positions":[["unparsed",0,3]],"canonicalName":null}`, out)
}

func TestVerboseSpecies(t *testing.T) {
	out := Verbose(parse("Homo sapiens L."), false)

	var decoded struct {
		Parsed    bool            `json:"parsed"`
		Quality   int             `json:"quality"`
		Positions [][]interface{} `json:"positions"`
		Warnings  []interface{}   `json:"warnings"`
		Details   []jsonDetail    `json:"details"`
		Tokens    []jsonToken     `json:"tokens"`
		Rule      string          `json:"rule"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.True(t, decoded.Parsed)
	assert.Equal(t, 1, decoded.Quality)
	assert.Equal(t, [][]interface{}{
		{"genus", 0.0, 4.0},
		{"specificEpithet", 5.0, 12.0},
		{"authorWord", 13.0, 15.0},
	}, decoded.Positions)
	assert.NotNil(t, decoded.Warnings)
	assert.Empty(t, decoded.Warnings)
	assert.Equal(t, grammar.RuleSpecies, decoded.Rule)

	require.Len(t, decoded.Tokens, 3)
	assert.Equal(t, jsonToken{Kind: "abbreviation", Text: "L.", Start: 13, End: 15}, decoded.Tokens[2])
	assert.Equal(t, jsonDetail{Tag: "specificEpithet", Value: "sapiens", Start: 5, End: 12}, decoded.Details[1])
}

func TestVerboseWarnings(t *testing.T) {
	out := Verbose(parse("Homo ###"), false)

	var decoded struct {
		Warnings []jsonWarning `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Len(t, decoded.Warnings, 1)
	assert.Equal(t, "tail_unparsed", decoded.Warnings[0].Code)
	assert.Equal(t, 4, decoded.Warnings[0].Quality)
}

func TestVerbosePretty(t *testing.T) {
	r := parse("Quercus robur subsp. pedunculiflora (K. Koch) Menitsky")

	compact := Verbose(r, false)
	pretty := Verbose(r, true)

	assert.NotContains(t, compact, "\n")
	assert.Contains(t, pretty, "\n  \"verbatim\"")

	var a, b interface{}
	require.NoError(t, json.Unmarshal([]byte(compact), &a))
	require.NoError(t, json.Unmarshal([]byte(pretty), &b))
	assert.Equal(t, a, b)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"Homo sapiens L.",
		"",
		"###",
		"Abies alba Mill. x Abies nordmanniana Spach",
		"Aus \"bus\" <cus>",
		"Homo \xff sapiens",
	}

	for _, input := range inputs {
		r := parse(input)

		var decoded struct {
			Parsed    bool            `json:"parsed"`
			Positions [][]interface{} `json:"positions"`
		}
		out := Compact(r)
		require.NoError(t, json.Unmarshal([]byte(out), &decoded), "input %q gave %s", input, out)

		assert.Equal(t, r.Parsed, decoded.Parsed, input)
		require.Len(t, decoded.Positions, len(r.Components), input)
		for i, c := range r.Components {
			assert.Equal(t, c.Tag.Snake(), decoded.Positions[i][0], input)
			assert.Equal(t, float64(c.Start), decoded.Positions[i][1], input)
			assert.Equal(t, float64(c.End), decoded.Positions[i][2], input)
		}

		assert.True(t, json.Valid([]byte(Verbose(r, true))), input)
	}
}

func TestNoHTMLEscaping(t *testing.T) {
	out := Verbose(parse("Aus bus Smith & Jones"), false)

	assert.True(t, strings.Contains(out, `"verbatim":"Aus bus Smith & Jones"`), out)
}
