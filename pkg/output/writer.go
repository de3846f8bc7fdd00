/*
 * Copyright (c) 2023-2024, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"

	"github.com/nomenclatura/nomen/pkg/name/model"
	"github.com/nomenclatura/nomen/pkg/name/render"
)

const (
	FormatCompact = "compact"
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatText    = "text"
)

// Formats lists every format NewWriter understands.
var Formats = []string{FormatCompact, FormatJSON, FormatCSV, FormatText}

// Writer writes parse results in one output format. Flush must be called
// once all results are written.
type Writer interface {
	Write(r model.Result) error
	Flush() error
}

type CompactWriter struct {
	w io.Writer
}

type JSONWriter struct {
	w      io.Writer
	pretty bool
}

type CSVWriter struct {
	w      *csv.Writer
	header bool
}

type TextWriter struct {
	w    io.Writer
	rows [][]string
}

func NewWriter(w io.Writer, format string, pretty bool) Writer {
	switch format {
	case FormatJSON:
		return &JSONWriter{w, pretty}
	case FormatCSV:
		return &CSVWriter{w: csv.NewWriter(w)}
	case FormatText:
		return &TextWriter{w: w}
	}
	return &CompactWriter{w}
}

// IsFormat reports whether f names a known output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func (w *CompactWriter) Write(r model.Result) error {
	_, err := fmt.Fprintln(w.w, render.Compact(r))
	return errors.Wrap(err, "writing compact result")
}

func (w *CompactWriter) Flush() error {
	return nil
}

func (w *JSONWriter) Write(r model.Result) error {
	_, err := fmt.Fprintln(w.w, render.Verbose(r, w.pretty))
	return errors.Wrap(err, "writing json result")
}

func (w *JSONWriter) Flush() error {
	return nil
}

var csvHeader = []string{"Id", "Verbatim", "Canonical", "Quality", "Rule", "Warnings"}

func (w *CSVWriter) Write(r model.Result) error {
	if !w.header {
		if err := w.w.Write(csvHeader); err != nil {
			return errors.Wrap(err, "writing csv header")
		}
		w.header = true
	}

	return errors.Wrap(w.w.Write(row(r, true)), "writing csv row")
}

func (w *CSVWriter) Flush() error {
	w.w.Flush()
	return errors.Wrap(w.w.Error(), "flushing csv")
}

func (w *TextWriter) Write(r model.Result) error {
	w.rows = append(w.rows, row(r, false))
	return nil
}

// Flush renders every buffered row as one table.
func (w *TextWriter) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w.w)
	table.Header("Verbatim", "Canonical", "Quality", "Rule", "Warnings")
	if err := table.Bulk(w.rows); err != nil {
		return errors.Wrap(err, "building table")
	}
	w.rows = nil

	return errors.Wrap(table.Render(), "rendering table")
}

// WriteComponents renders the components of a single result as a table.
func WriteComponents(w io.Writer, r model.Result) error {
	rows := make([][]string, 0, len(r.Components))
	for _, c := range r.Components {
		rows = append(rows, []string{
			c.Tag.Camel(),
			c.Value,
			strconv.Itoa(c.Start),
			strconv.Itoa(c.End),
		})
	}

	table := tablewriter.NewWriter(w)
	table.Header("Component", "Value", "Start", "End")
	if err := table.Bulk(rows); err != nil {
		return errors.Wrap(err, "building table")
	}

	return errors.Wrap(table.Render(), "rendering table")
}

func row(r model.Result, withID bool) []string {
	codes := make([]string, 0, len(r.Warnings))
	for _, warning := range r.Warnings {
		codes = append(codes, warning.Code())
	}

	values := []string{
		r.Verbatim,
		r.Canonical,
		strconv.Itoa(r.Quality),
		r.Rule,
		strings.Join(codes, ","),
	}

	if withID {
		return append([]string{r.ID}, values...)
	}
	return values
}
