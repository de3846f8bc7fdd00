/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package render serializes parse results into the compact and verbose
// JSON schemas. Both functions are pure and always produce valid JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nomenclatura/nomen/pkg/name/model"
)

type jsonPosition struct {
	Tag   string
	Start int
	End   int
}

// MarshalJSON writes a position as a [tag, start, end] triple.
func (p jsonPosition) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{p.Tag, p.Start, p.End})
}

type jsonCompact struct {
	Parsed        bool           `json:"parsed"`
	Positions     []jsonPosition `json:"positions"`
	CanonicalName *string        `json:"canonicalName"`
}

type jsonWarning struct {
	Quality int    `json:"quality"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonDetail struct {
	Tag   string `json:"tag"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type jsonVerbose struct {
	ID            string         `json:"id"`
	Verbatim      string         `json:"verbatim"`
	Parsed        bool           `json:"parsed"`
	Quality       int            `json:"quality"`
	CanonicalName *string        `json:"canonicalName"`
	Positions     []jsonPosition `json:"positions"`
	Warnings      []jsonWarning  `json:"warnings"`
	Rule          string         `json:"rule,omitempty"`
	Details       []jsonDetail   `json:"details"`
	Tokens        []jsonToken    `json:"tokens"`
}

// Compact renders the minified compact schema with snake_case tags.
func Compact(r model.Result) string {
	return encode(jsonCompact{
		Parsed:        r.Parsed,
		Positions:     positions(r, model.Tag.Snake),
		CanonicalName: canonical(r),
	}, false)
}

// Verbose renders the full schema with camelCase tags. pretty only changes
// whitespace.
func Verbose(r model.Result, pretty bool) string {
	v := jsonVerbose{
		ID:            r.ID,
		Verbatim:      r.Verbatim,
		Parsed:        r.Parsed,
		Quality:       r.Quality,
		CanonicalName: canonical(r),
		Positions:     positions(r, model.Tag.Camel),
		Warnings:      make([]jsonWarning, 0, len(r.Warnings)),
		Rule:          r.Rule,
		Details:       make([]jsonDetail, 0, len(r.Components)),
		Tokens:        make([]jsonToken, 0, len(r.Tokens)),
	}

	for _, w := range r.Warnings {
		v.Warnings = append(v.Warnings, jsonWarning{
			Quality: w.Severity(),
			Code:    w.Code(),
			Message: w.Message(),
		})
	}

	for _, c := range r.Components {
		v.Details = append(v.Details, jsonDetail{
			Tag:   c.Tag.Camel(),
			Value: c.Value,
			Start: c.Start,
			End:   c.End,
		})
	}

	for _, t := range r.Tokens {
		kind := "invalid"
		if k, ok := t.Type.(interface{ Kind() string }); ok {
			kind = k.Kind()
		}
		v.Tokens = append(v.Tokens, jsonToken{
			Kind:  kind,
			Text:  t.Lexeme,
			Start: t.Location.Start,
			End:   t.Location.End,
		})
	}

	return encode(v, pretty)
}

func positions(r model.Result, name func(model.Tag) string) []jsonPosition {
	p := make([]jsonPosition, 0, len(r.Components))
	for _, c := range r.Components {
		p = append(p, jsonPosition{Tag: name(c.Tag), Start: c.Start, End: c.End})
	}
	return p
}

func canonical(r model.Result) *string {
	if !r.Parsed || r.Canonical == "" {
		return nil
	}
	c := r.Canonical
	return &c
}

func encode(v interface{}, pretty bool) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}

	// Every field is a string, number, bool or slice of those.
	if err := enc.Encode(v); err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
