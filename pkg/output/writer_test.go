/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nomenclatura/nomen/pkg/name/grammar"
	"github.com/nomenclatura/nomen/pkg/name/model"
	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

func parse(input string) model.Result {
	b := model.NewBuilder(model.Options{})
	return b.Build(input, grammar.Default().Match(scanner.Tokenize(input)))
}

func writeAll(t *testing.T, format string, names ...string) string {
	var buf bytes.Buffer

	w := NewWriter(&buf, format, false)
	for _, name := range names {
		if err := w.Write(parse(name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestCompactWriter(t *testing.T) {
	out := writeAll(t, FormatCompact, "Homo sapiens", "###")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("wanted 2 lines, got %d", len(lines))
	}

	if lines[1] != `{"parsed":false,"positions":[["unparsed",0,3]],"canonicalName":null}` {
		t.Errorf("wanted compact unparsed result, got %s", lines[1])
	}
}

func TestJSONWriter(t *testing.T) {
	out := writeAll(t, FormatJSON, "Homo sapiens L.")

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded["verbatim"] != "Homo sapiens L." {
		t.Errorf("wanted verbatim 'Homo sapiens L.', got %v", decoded["verbatim"])
	}
}

func TestCSVWriter(t *testing.T) {
	out := writeAll(t, FormatCSV, "Homo sapiens", "Homo ###")

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 3 {
		t.Fatalf("wanted a header and 2 rows, got %d records", len(records))
	}

	if records[0][1] != "Verbatim" {
		t.Errorf("wanted header first, got %v", records[0])
	}

	if records[2][2] != "Homo" || records[2][5] != "tail_unparsed" {
		t.Errorf("wanted canonical and warnings for 'Homo ###', got %v", records[2])
	}
}

func TestTextWriter(t *testing.T) {
	out := writeAll(t, FormatText, "Homo sapiens", "Poaceae Barnhart")

	for _, want := range []string{"Homo sapiens", "Poaceae", "uninomial"} {
		if !strings.Contains(out, want) {
			t.Errorf("wanted table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTextWriterEmpty(t *testing.T) {
	if out := writeAll(t, FormatText); out != "" {
		t.Errorf("wanted no output, got %q", out)
	}
}

func TestWriteComponents(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteComponents(&buf, parse("Homo sapiens L.")); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"genus", "specificEpithet", "authorWord", "L."} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("wanted table to contain %q, got:\n%s", want, buf.String())
		}
	}
}

func TestIsFormat(t *testing.T) {
	if !IsFormat(FormatCSV) {
		t.Error("wanted csv to be a known format")
	}
	if IsFormat("yaml") {
		t.Error("wanted yaml to be unknown")
	}
}
