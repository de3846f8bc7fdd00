/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	nomen "github.com/nomenclatura/nomen/api"
	"github.com/nomenclatura/nomen/pkg/metrics"
	"github.com/nomenclatura/nomen/pkg/output"
)

var Command = &cobra.Command{
	Use:   "parse [name...]",
	Short: "Parse names given as arguments, in a file, or on stdin",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		ms := metrics.NewStore()
		p := nomen.New(
			nomen.WithAuthors(viper.GetBool("parser.with-authors")),
			nomen.WithCultivars(viper.GetBool("parser.with-cultivars")),
			nomen.WithJobs(viper.GetInt("parse.jobs")),
			nomen.WithLogger(log),
			nomen.WithMetrics(ms),
		)

		w := output.NewWriter(os.Stdout, viper.GetString("output.format"), viper.GetBool("output.pretty"))

		stats, err := run(p, w, args, viper.GetString("parse.input"), viper.GetInt("parse.batch-size"))
		if err != nil {
			log.Fatal().Err(err).Msg("parse failed")
		}

		log.Info().
			Str("names", humanize.Comma(int64(stats.Names))).
			Str("parsed", humanize.Comma(int64(stats.Parsed))).
			Str("rate", humanize.SIWithDigits(stats.Rate(), 1, "names/s")).
			Dur("elapsed", stats.Elapsed).
			Msg("finished parsing")

		if path := viper.GetString("metrics.file"); path != "" {
			if err := ms.WriteTextfile(path); err != nil {
				log.Error().Err(err).Send()
			}
		}
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("input", "i", "", "File with one name per line (default stdin)")
	Command.Flags().IntP("jobs", "j", 0, "Names parsed concurrently (default one per CPU)")
	Command.Flags().Int("batch-size", 10000, "Names read before a batch is parsed")
	Command.Flags().String("metrics-file", "", "Write parse metrics to this file when done")

	// Bind flags to viper
	viper.BindPFlag("parse.input", Command.Flags().Lookup("input"))
	viper.BindPFlag("parse.jobs", Command.Flags().Lookup("jobs"))
	viper.BindPFlag("parse.batch-size", Command.Flags().Lookup("batch-size"))
	viper.BindPFlag("metrics.file", Command.Flags().Lookup("metrics-file"))
}

// Stats summarizes a parse run.
type Stats struct {
	Names   int
	Parsed  int
	Elapsed time.Duration
}

// Rate is the number of names parsed per second.
func (s Stats) Rate() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Names) / s.Elapsed.Seconds()
}

// run parses args when given, otherwise the names in the file at input.
func run(p *nomen.Parser, w output.Writer, args []string, input string, batchSize int) (Stats, error) {
	if len(args) > 0 {
		return Names(p, w, args)
	}

	in, closer, err := openInput(input)
	if err != nil {
		return Stats{}, err
	}
	defer closer()

	return Stream(p, w, in, batchSize)
}

// Names parses names as one batch and writes every result to w.
func Names(p *nomen.Parser, w output.Writer, names []string) (Stats, error) {
	var stats Stats
	start := time.Now()

	if err := write(w, p.FromStrings(names), &stats); err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(start)

	return stats, errors.Wrap(w.Flush(), "flushing output")
}

// Stream parses one name per line from in, batchSize lines at a time.
// Line endings may be LF or CRLF. Blank lines are skipped.
func Stream(p *nomen.Parser, w output.Writer, in io.Reader, batchSize int) (Stats, error) {
	var stats Stats
	start := time.Now()

	if batchSize <= 0 {
		batchSize = 1
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	batch := make([]string, 0, batchSize)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		batch = append(batch, line)
		if len(batch) < batchSize {
			continue
		}

		if err := write(w, p.FromStrings(batch), &stats); err != nil {
			return stats, err
		}
		batch = batch[:0]
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrap(err, "reading names")
	}

	if err := write(w, p.FromStrings(batch), &stats); err != nil {
		return stats, err
	}
	stats.Elapsed = time.Since(start)

	return stats, errors.Wrap(w.Flush(), "flushing output")
}

func write(w output.Writer, results []nomen.Result, stats *Stats) error {
	for _, r := range results {
		stats.Names++
		if r.Parsed {
			stats.Parsed++
		}

		if err := w.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", path)
	}

	return f, func() { f.Close() }, nil
}
