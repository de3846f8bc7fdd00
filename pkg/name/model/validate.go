/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package model

import "fmt"

// InvariantError reports a result whose components are out of order,
// overlapping, or do not match the input they claim to cover.
type InvariantError struct {
	Verbatim string
	Index    int
	Reason   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated by component %d of %q: %s", e.Index, e.Verbatim, e.Reason)
}

// Validate checks that every component lies within the input, is non
// empty, carries the exact input slice as its value, and starts at or
// after the end of its predecessor.
func Validate(r *Result) error {
	last := 0

	for i, c := range r.Components {
		fail := func(format string, args ...interface{}) error {
			return &InvariantError{Verbatim: r.Verbatim, Index: i, Reason: fmt.Sprintf(format, args...)}
		}

		switch {
		case c.Start < 0 || c.End > len(r.Verbatim):
			return fail("span [%d, %d) outside input of length %d", c.Start, c.End, len(r.Verbatim))
		case c.End <= c.Start:
			return fail("empty span [%d, %d)", c.Start, c.End)
		case c.Start < last:
			return fail("starts at %d before previous end %d", c.Start, last)
		case r.Verbatim[c.Start:c.End] != c.Value:
			return fail("value %q does not match input %q", c.Value, r.Verbatim[c.Start:c.End])
		}

		last = c.End
	}

	return nil
}
