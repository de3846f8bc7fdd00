/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import (
	"github.com/google/uuid"

	"github.com/nomenclatura/nomen/pkg/common/parse"
)

// namespace is the UUIDv5 namespace for name strings, itself derived from
// the DNS namespace and "globalnames.org".
var namespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte("globalnames.org"))

// NameID returns the stable identifier of a verbatim name string.
func NameID(verbatim string) string {
	return uuid.NewSHA1(namespace, []byte(verbatim)).String()
}

// Result is the structured decomposition of one name string.
type Result struct {
	ID       string
	Verbatim string
	Parsed   bool

	// Canonical is empty when no name was recognized.
	Canonical string

	Components []Component
	Quality    int
	Warnings   []Warning

	// Rule is the winning grammar rule, empty when nothing matched.
	Rule string

	Tokens []parse.Token
}

// HasAuthor reports whether any author word was recognized.
func (r *Result) HasAuthor() bool {
	for _, c := range r.Components {
		if c.Tag == TagAuthorWord {
			return true
		}
	}
	return false
}

// Unparsed returns the locations of every unparsed component.
func (r *Result) Unparsed() []parse.Location {
	var locations []parse.Location
	for _, c := range r.Components {
		if c.Tag == TagUnparsed {
			locations = append(locations, parse.Location{Start: c.Start, End: c.End})
		}
	}
	return locations
}

// HasWarning reports whether w was raised for this result.
func (r *Result) HasWarning(w Warning) bool {
	for _, have := range r.Warnings {
		if have == w {
			return true
		}
	}
	return false
}
