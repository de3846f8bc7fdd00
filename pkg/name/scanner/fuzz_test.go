/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import "testing"

func FuzzTokenize(f *testing.F) {
	f.Add("Homo sapiens L.")
	f.Add("")
	f.Add("###")
	f.Add("Salix ×capreola J. Kern. ex Andersson")
	f.Add("Puma concolor (Linnaeus, 1771)")
	f.Add("'Golden Delicious' var-alba \xff")

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Tokenize(input)

		last := 0
		for i, tok := range tokens {
			if tok.Location.Start < last {
				t.Errorf("token %d starts at %d before previous end %d", i, tok.Location.Start, last)
			}
			if tok.Location.End <= tok.Location.Start || tok.Location.End > len(input) {
				t.Errorf("invalid offsets: start=%d end=%d input_len=%d", tok.Location.Start, tok.Location.End, len(input))
			}
			if tok.Lexeme != input[tok.Location.Start:tok.Location.End] {
				t.Errorf("lexeme %q does not match input slice", tok.Lexeme)
			}
			last = tok.Location.End
		}
	})
}
