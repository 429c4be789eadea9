// Package metrics holds the prometheus collectors for parse and draft
// outcomes. Each Metrics owns its registry so several apps (or tests) can
// live in one process.
package metrics

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vk/samudra/internal/annotate"
	"github.com/vk/samudra/internal/lexicon"
)

const (
	samudraNamespace = "samudra"

	outcomeLabelName = "outcome"
	kindLabelName    = "kind"
	categoryLabel    = "category"

	OutcomeOK        = "ok"
	OutcomeMalformed = "malformed"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// Metrics is a set of collectors bound to a private registry. A nil
// *Metrics discards every observation.
type Metrics struct {
	registry *prometheus.Registry

	ParsesTotal   *prometheus.CounterVec
	ParseDuration prometheus.Histogram
	TokensTotal   *prometheus.CounterVec
	DraftsTotal   *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ParsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: samudraNamespace,
				Subsystem: "annotate",
				Name:      "parses_total",
				Help:      "count of parsed annotated texts by outcome and error kind",
			}, []string{outcomeLabelName, kindLabelName}),
		ParseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: samudraNamespace,
				Subsystem: "annotate",
				Name:      "parse_duration_seconds",
				Help:      "time spent parsing one annotated text",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			}),
		TokensTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: samudraNamespace,
				Subsystem: "annotate",
				Name:      "tokens_total",
				Help:      "count of tokens produced by successful parses, per category",
			}, []string{categoryLabel}),
		DraftsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: samudraNamespace,
				Subsystem: "lexicon",
				Name:      "drafts_total",
				Help:      "count of konsep drafts built by outcome",
			}, []string{outcomeLabelName}),
	}

	m.registry.MustRegister(
		m.ParsesTotal,
		m.ParseDuration,
		m.TokensTotal,
		m.DraftsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests. It is nil
// for a nil *Metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveParse records one call to the parser. text may be nil when err is
// set.
func (m *Metrics) ObserveParse(start time.Time, text *annotate.Text, err error) {
	if m == nil {
		return
	}
	m.ParseDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if mie, ok := annotate.AsMalformedInput(err); ok {
			m.ParsesTotal.WithLabelValues(OutcomeMalformed, string(mie.Kind)).Inc()
			return
		}
		m.ParsesTotal.WithLabelValues(OutcomeError, "").Inc()
		return
	}

	m.ParsesTotal.WithLabelValues(OutcomeOK, "").Inc()
	if text == nil {
		return
	}
	m.TokensTotal.WithLabelValues(string(annotate.CategoryContent)).Inc()
	m.TokensTotal.WithLabelValues(string(annotate.CategoryTag)).Add(float64(len(text.Tags)))
	fields := 0
	for _, subkeys := range text.Fields {
		for _, v := range subkeys {
			fields += len(v.Values())
		}
	}
	m.TokensTotal.WithLabelValues(string(annotate.CategoryField)).Add(float64(fields))
}

// ObserveDraft records one draft build.
func (m *Metrics) ObserveDraft(err error) {
	if m == nil {
		return
	}
	switch {
	case err == nil:
		m.DraftsTotal.WithLabelValues(OutcomeOK).Inc()
	case errors.Is(err, annotate.ErrMalformedInput):
		m.DraftsTotal.WithLabelValues(OutcomeMalformed).Inc()
	case errors.Is(err, lexicon.ErrInvalidDraft):
		m.DraftsTotal.WithLabelValues(OutcomeInvalid).Inc()
	default:
		m.DraftsTotal.WithLabelValues(OutcomeError).Inc()
	}
}
