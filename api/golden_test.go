/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nomen

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andreyvit/diff"
)

func TestParseNames(t *testing.T) {
	testDirectory, err := filepath.Abs("../test/parsing/names")
	if err != nil {
		panic(err)
	}

	inputDirectory := path.Join(testDirectory, "input")
	expectationDirectory := path.Join(testDirectory, "expectations")

	tests, err := filepath.Glob(fmt.Sprintf("%s/*.txt", inputDirectory))
	if err != nil {
		t.Fatal(err)
	}
	if len(tests) == 0 {
		t.Fatalf("no golden inputs found in %s", inputDirectory)
	}

	for _, test := range tests {
		t.Run(filepath.Base(test), func(t *testing.T) {
			var expected string
			expectation := path.Join(expectationDirectory, filepath.Base(test))
			expectedBytes, err := os.ReadFile(expectation)
			if err == nil {
				expected = string(expectedBytes)
			}

			file, err := os.Open(test)
			if err != nil {
				t.Fatalf("Error opening test: %s", test)
			}
			defer file.Close()

			scanner := bufio.NewScanner(file)

			shouldPass := false
			scanner.Scan()
			if strings.ToUpper(scanner.Text()) == "PASS" {
				shouldPass = true
			}

			actual := ""
			for scanner.Scan() {
				r := Instance().FromString(scanner.Text())

				if shouldPass && !r.Parsed {
					t.Errorf("Expected name to parse: %s", scanner.Text())
				}
				if !shouldPass && r.Parsed {
					t.Errorf("Expected name to fail: %s", scanner.Text())
				}

				actual += RenderCompactJSON(r) + "\n"
			}

			if os.Getenv("SHOULD_REBASE") != "" {
				err := os.WriteFile(expectation, []byte(actual), 0666)
				if err != nil {
					t.Error(err)
				}
				expected = actual
			}

			if a, e := strings.TrimSpace(actual), strings.TrimSpace(expected); a != e {
				t.Errorf("Expectation not met:\n%s", diff.LineDiff(e, a))
			}
		})
	}
}
