/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nomen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomenclatura/nomen/pkg/metrics"
	"github.com/nomenclatura/nomen/pkg/name/model"
)

func TestCompactScenario(t *testing.T) {
	r := Instance().FromString("Homo sapiens L.")

	assert.True(t, r.Parsed)
	assert.Equal(t,
		`{"parsed":true,"positions":[["genus",0,4],["specific_epithet",5,12],["author_word",13,15]],"canonicalName":"Homo sapiens"}`,
		RenderCompactJSON(r))
}

func TestVerboseScenario(t *testing.T) {
	r := Instance().FromString("Homo sapiens L.")

	var decoded struct {
		Parsed    bool            `json:"parsed"`
		Positions [][]interface{} `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(RenderJSONString(r, false)), &decoded))

	assert.True(t, decoded.Parsed)
	assert.Equal(t, [][]interface{}{
		{"genus", 0.0, 4.0},
		{"specificEpithet", 5.0, 12.0},
		{"authorWord", 13.0, 15.0},
	}, decoded.Positions)
}

func TestEmptyScenario(t *testing.T) {
	r := Instance().FromString("")

	assert.False(t, r.Parsed)
	assert.Empty(t, r.Components)
	assert.Equal(t, `{"parsed":false,"positions":[],"canonicalName":null}`, RenderCompactJSON(r))
}

func TestGarbageScenario(t *testing.T) {
	r := Instance().FromString("###")

	assert.False(t, r.Parsed)
	require.Len(t, r.Components, 1)
	assert.Equal(t, model.TagUnparsed, r.Components[0].Tag)
	assert.Equal(t, 0, r.Components[0].Start)
	assert.Equal(t, 3, r.Components[0].End)
}

func TestInvalidUTF8Scenario(t *testing.T) {
	r := Instance().FromString("Homo sapiens \xff")

	assert.False(t, r.Parsed)
	assert.Equal(t, 0, r.Quality)
	assert.Equal(t, []model.Warning{model.WarnInvalidUTF8}, r.Warnings)
	assert.Equal(t, `{"parsed":false,"positions":[["unparsed",0,14]],"canonicalName":null}`, RenderCompactJSON(r))

	var decoded struct {
		Parsed   bool `json:"parsed"`
		Warnings []struct {
			Code string `json:"code"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(RenderJSONString(r, false)), &decoded))
	assert.False(t, decoded.Parsed)
	require.Len(t, decoded.Warnings, 1)
	assert.Equal(t, "invalid_utf8", decoded.Warnings[0].Code)
}

func TestTotality(t *testing.T) {
	inputs := []string{
		"", " ", "(", ")", "()", "×", "x", "'", "''", "&", ",,,", ".", "...",
		"\xff\xfe", "Homo \x00 sapiens", "1771", "var.", "Aus var-", "(Smith)",
		"Aus bus (", "Aus bus ((((", "A.", "×××", "Aus × ×", "cv. 'X'",
		strings.Repeat("Aus ", 200), strings.Repeat("x ", 300),
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			r := Instance().FromString(input)
			assert.NoError(t, model.Validate(&r), input)
			assert.True(t, json.Valid([]byte(RenderCompactJSON(r))), input)
			assert.True(t, json.Valid([]byte(RenderJSONString(r, true))), input)
		}, input)
	}
}

func TestIdempotence(t *testing.T) {
	p := New()
	for _, input := range []string{"Homo sapiens L.", "Abies alba Mill. x Abies nordmanniana Spach", "###"} {
		assert.Equal(t, p.FromString(input), p.FromString(input), input)
		assert.Equal(t, RenderJSONString(p.FromString(input), false), RenderJSONString(p.FromString(input), false))
	}
}

func TestConcurrentUse(t *testing.T) {
	want := RenderCompactJSON(Instance().FromString("Quercus robur subsp. pedunculiflora (K. Koch) Menitsky"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r := Instance().FromString("Quercus robur subsp. pedunculiflora (K. Koch) Menitsky")
				assert.Equal(t, want, RenderCompactJSON(r))
			}
		}()
	}
	wg.Wait()
}

func TestInstanceIsShared(t *testing.T) {
	assert.Same(t, Instance(), Instance())
}

func TestFromStrings(t *testing.T) {
	names := make([]string, 100)
	for i := range names {
		names[i] = fmt.Sprintf("Aus bus Smith, %d", 1800+i)
	}

	results := New(WithJobs(4)).FromStrings(names)

	require.Len(t, results, len(names))
	for i, r := range results {
		assert.Equal(t, names[i], r.Verbatim)
		assert.True(t, r.Parsed)
	}

	assert.Empty(t, New().FromStrings(nil))
}

func TestWithAuthors(t *testing.T) {
	r := New(WithAuthors(true)).FromString("Puma concolor (Linnaeus, 1771)")

	assert.Equal(t, "Puma concolor (Linnaeus, 1771)", r.Canonical)
}

func TestWithCultivars(t *testing.T) {
	r := New(WithCultivars(true)).FromString("Rosa gallica 'Versicolor'")

	assert.Equal(t, "Rosa gallica 'Versicolor'", r.Canonical)
}

func TestWithLogger(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.TraceLevel)

	New(WithLogger(log)).FromString("Homo sapiens")

	assert.Contains(t, buf.String(), `"rule":"species"`)
	assert.Contains(t, buf.String(), `"message":"parsed name"`)
}

func TestWithMetrics(t *testing.T) {
	ms := metrics.NewStore()
	p := New(WithMetrics(ms))

	p.FromString("Homo sapiens")
	p.FromString("Homo ###")

	count, err := testutil.GatherAndCount(ms.Registry(), "nomen_parses", "nomen_warnings")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
