/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	nomen "github.com/nomenclatura/nomen/api"
	"github.com/nomenclatura/nomen/pkg/common/parse"
	"github.com/nomenclatura/nomen/pkg/output"
)

var (
	Command = &cobra.Command{
		Use:   "repl",
		Short: "Interactive terminal for parsing names one at a time",

		Run: func(cmd *cobra.Command, args []string) {
			log := viper.Get("logger").(zerolog.Logger)

			s := &Session{
				Format:    viper.GetString("output.format"),
				Pretty:    viper.GetBool("output.pretty"),
				Authors:   viper.GetBool("parser.with-authors"),
				Cultivars: viper.GetBool("parser.with-cultivars"),
				log:       log,
			}
			// Tables read better than compact json at a prompt.
			if s.Format == output.FormatCompact {
				s.Format = output.FormatText
			}

			readlinePrompt(s)
		},
	}
)

// Session holds the settings of one interactive session.
type Session struct {
	Format    string
	Pretty    bool
	Authors   bool
	Cultivars bool

	log    zerolog.Logger
	parser *nomen.Parser
}

func (s *Session) Parser() *nomen.Parser {
	if s.parser == nil {
		s.parser = nomen.New(
			nomen.WithAuthors(s.Authors),
			nomen.WithCultivars(s.Cultivars),
			nomen.WithLogger(s.log),
		)
	}
	return s.parser
}

// Eval runs one line of input, writing anything it prints to w. It
// returns false when the session should end.
func (s *Session) Eval(line string, w io.Writer) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	if strings.HasPrefix(line, ":") {
		return s.command(line, w)
	}

	r := s.Parser().FromString(line)

	if s.Format == output.FormatText {
		if err := output.WriteComponents(w, r); err != nil {
			s.log.Error().Err(err).Send()
			return true
		}
		fmt.Fprintf(w, "canonical: %s  quality: %d  rule: %s\n", r.Canonical, r.Quality, r.Rule)
	} else {
		writer := output.NewWriter(w, s.Format, s.Pretty)
		if err := writer.Write(r); err != nil {
			s.log.Error().Err(err).Send()
			return true
		}
		if err := writer.Flush(); err != nil {
			s.log.Error().Err(err).Send()
			return true
		}
	}

	for _, loc := range r.Unparsed() {
		e := parse.NewSyntaxError(loc, "not understood")
		fmt.Fprint(w, e.FormatError(r.Verbatim))
	}

	return true
}

func (s *Session) command(line string, w io.Writer) bool {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":exit":
		return false
	case ":help":
		fmt.Fprintln(w, "usage:")
		fmt.Fprintln(w, completer.Tree("    "))
	case ":format":
		if len(fields) != 2 || !output.IsFormat(fields[1]) {
			fmt.Fprintf(w, "formats: %s\n", strings.Join(output.Formats, ", "))
			return true
		}
		s.Format = fields[1]
	case ":pretty":
		s.Pretty = !s.Pretty
		fmt.Fprintf(w, "pretty: %v\n", s.Pretty)
	case ":authors":
		s.Authors = !s.Authors
		s.parser = nil
		fmt.Fprintf(w, "authors: %v\n", s.Authors)
	case ":cultivars":
		s.Cultivars = !s.Cultivars
		s.parser = nil
		fmt.Fprintf(w, "cultivars: %v\n", s.Cultivars)
	default:
		fmt.Fprintf(w, "unknown command %s, try :help\n", fields[0])
	}

	return true
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem(":help"),
	readline.PcItem(":format", formatItems()...),
	readline.PcItem(":pretty"),
	readline.PcItem(":authors"),
	readline.PcItem(":cultivars"),
	readline.PcItem(":quit"),
)

func formatItems() []readline.PrefixCompleterInterface {
	ret := []readline.PrefixCompleterInterface{}
	for i := range output.Formats {
		ret = append(ret, readline.PcItem(output.Formats[i]))
	}
	return ret
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func readlinePrompt(s *Session) {
	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32mnomen>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		s.log.Fatal().Err(err).Msg("unable to start the terminal")
	}
	defer rl.Close()

	// Handle input
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			break
		}

		if !s.Eval(ln.Line, os.Stdout) {
			break
		}
	}
	rl.Clean()
}
