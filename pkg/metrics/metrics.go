/*
 * Copyright (c) 2022-2024, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package metrics

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Store interface {
	Registry() *prometheus.Registry
	WriteTextfile(path string) error

	// Collection
	IncParses(rule string, quality int)
	IncWarnings(code string)
	ObserveParseNS(rule string, t int64)
}

type store struct {
	registry *prometheus.Registry
	Parses   *prometheus.CounterVec
	Warnings *prometheus.CounterVec
	ParseNS  *prometheus.HistogramVec
}

var (
	RuleLabel    = "rule"
	QualityLabel = "quality"
	CodeLabel    = "code"

	// NoRule labels parses where no grammar rule matched.
	NoRule = "none"
)

func NewStore() Store {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(5*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &store{
		registry: reg,
		Parses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nomen_parses",
			Help: "Names parsed, by winning rule and quality",
		}, []string{RuleLabel, QualityLabel}),
		Warnings: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nomen_warnings",
			Help: "Warnings raised while parsing names",
		}, []string{CodeLabel}),
		ParseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nomen_parse_ns",
			Help:    "Time spent parsing a single name",
			Buckets: buckets,
		}, []string{RuleLabel}),
	}
}

func (ms *store) Registry() *prometheus.Registry {
	return ms.registry
}

// WriteTextfile dumps every metric in the text exposition format, for
// pickup by a node exporter textfile collector.
func (ms *store) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, ms.registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}

func (ms *store) IncParses(rule string, quality int) {
	ms.Parses.With(prometheus.Labels{RuleLabel: label(rule), QualityLabel: strconv.Itoa(quality)}).Inc()
}

func (ms *store) IncWarnings(code string) {
	ms.Warnings.With(prometheus.Labels{CodeLabel: code}).Inc()
}

func (ms *store) ObserveParseNS(rule string, t int64) {
	ms.ParseNS.
		With(prometheus.Labels{RuleLabel: label(rule)}).
		Observe(float64(t))
}

func label(rule string) string {
	if rule == "" {
		return NoRule
	}
	return rule
}
