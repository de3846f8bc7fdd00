/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError points at a region of an input string. It is used to show
// which part of a name could not be understood.
type SyntaxError struct {
	Location Location
	Message  string
}

func NewSyntaxError(l Location, m string) SyntaxError {
	return SyntaxError{Location: l, Message: m}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s at [%d, %d)", s.Message, s.Location.Start, s.Location.End)
}

// FormatError prints input with the error's location underlined. Columns
// are counted in runes, while Location holds byte offsets.
func (s *SyntaxError) FormatError(input string) string {
	start := min(max(s.Location.Start, 0), len(input))
	end := min(max(s.Location.End, start), len(input))

	column := utf8.RuneCountInString(input[:start])
	repeat := 0
	if s.Location.Len() > 1 {
		repeat = max(utf8.RuneCountInString(input[start:end])-1, 0)
	}

	errorString := "Unparsed fragment found in name:\n"
	errorString += input
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", column), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}
