/*
 * Copyright (c) 2022-2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package nomen

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"

	"github.com/nomenclatura/nomen/pkg/metrics"
	"github.com/nomenclatura/nomen/pkg/name/grammar"
	"github.com/nomenclatura/nomen/pkg/name/model"
	"github.com/nomenclatura/nomen/pkg/name/render"
	"github.com/nomenclatura/nomen/pkg/name/scanner"
)

const Version = "0.4.0"

type Result = model.Result

// Parser is the entry point for parsing scientific names. A Parser holds
// only immutable state and may be shared by any number of goroutines.
type Parser struct {
	grammar *grammar.Grammar
	builder *model.Builder
	options model.Options

	log     zerolog.Logger
	metrics metrics.Store
	jobs    int
}

type Option func(*Parser)

// WithAuthors includes authorship and years in canonical names.
func WithAuthors(on bool) Option {
	return func(p *Parser) {
		p.options.WithAuthors = on
	}
}

// WithCultivars includes quoted cultivar epithets in canonical names.
func WithCultivars(on bool) Option {
	return func(p *Parser) {
		p.options.WithCultivars = on
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

func WithMetrics(ms metrics.Store) Option {
	return func(p *Parser) {
		p.metrics = ms
	}
}

// WithJobs bounds the goroutines FromStrings uses. Zero or less means one
// per CPU.
func WithJobs(n int) Option {
	return func(p *Parser) {
		if n < 0 {
			n = 0
		}
		p.jobs = n
	}
}

func New(opts ...Option) *Parser {
	p := &Parser{
		grammar: grammar.Default(),
		log:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	p.builder = model.NewBuilder(p.options)

	return p
}

var (
	instance     *Parser
	instanceOnce sync.Once
)

// Instance returns a process wide Parser with default options.
func Instance() *Parser {
	instanceOnce.Do(func() {
		instance = New()
	})
	return instance
}

// FromString parses a single name. It returns a result for every input,
// including the empty string.
func (p *Parser) FromString(name string) Result {
	start := time.Now()

	tokens := scanner.Tokenize(name)
	match := p.grammar.Match(tokens)
	r := p.builder.Build(name, match)

	elapsed := time.Since(start)

	p.log.Trace().
		Str("name", name).
		Int("tokens", len(tokens)).
		Int("candidates", len(match.Candidates)).
		Str("rule", r.Rule).
		Int("quality", r.Quality).
		Dur("elapsed", elapsed).
		Msg("parsed name")

	if p.metrics != nil {
		p.metrics.IncParses(r.Rule, r.Quality)
		p.metrics.ObserveParseNS(r.Rule, elapsed.Nanoseconds())
		for _, w := range r.Warnings {
			p.metrics.IncWarnings(w.Code())
		}
	}

	return r
}

// FromStrings parses names concurrently. Results are in input order.
func (p *Parser) FromStrings(names []string) []Result {
	mapper := iter.Mapper[string, Result]{MaxGoroutines: p.jobs}
	return mapper.Map(names, func(name *string) Result {
		return p.FromString(*name)
	})
}

// RenderCompactJSON renders r using the compact schema.
func RenderCompactJSON(r Result) string {
	return render.Compact(r)
}

// RenderJSONString renders r using the verbose schema.
func RenderJSONString(r Result, pretty bool) string {
	return render.Verbose(r, pretty)
}
