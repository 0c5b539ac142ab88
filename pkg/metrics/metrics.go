// Package metrics defines the Prometheus collectors updated during ingestion
// and writes them out as a node_exporter textfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "biasbars"

// Kind labels which pipeline a record came from.
const (
	KindReview   = "review"
	KindLocation = "location"
)

// Metrics holds the ingestion collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	LinesRead        *prometheus.CounterVec
	RecordsIngested  *prometheus.CounterVec
	MalformedRecords *prometheus.CounterVec
	TokensIngested   prometheus.Counter
	VocabularySize   prometheus.Gauge
	LocationsLoaded  prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LinesRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lines_read_total",
				Help:      "Input lines read, including headers and blank lines.",
			},
			[]string{"kind"},
		),
		RecordsIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_ingested_total",
				Help:      "Records parsed and added to an aggregate.",
			},
			[]string{"kind"},
		),
		MalformedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "malformed_records_total",
				Help:      "Records that aborted ingestion.",
			},
			[]string{"kind"},
		),
		TokensIngested: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_ingested_total",
				Help:      "Review words added to the word data.",
			},
		),
		VocabularySize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "vocabulary_size",
				Help:      "Distinct words in the last loaded word data.",
			},
		),
		LocationsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "locations_loaded",
				Help:      "Distinct locations in the last loaded disease file.",
			},
		),
	}

	reg.MustRegister(
		m.LinesRead,
		m.RecordsIngested,
		m.MalformedRecords,
		m.TokensIngested,
		m.VocabularySize,
		m.LocationsLoaded,
	)
	return m
}

func (m *Metrics) LineRead(kind string) {
	if m == nil {
		return
	}
	m.LinesRead.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordIngested(kind string, tokens int) {
	if m == nil {
		return
	}
	m.RecordsIngested.WithLabelValues(kind).Inc()
	if tokens > 0 {
		m.TokensIngested.Add(float64(tokens))
	}
}

func (m *Metrics) RecordMalformed(kind string) {
	if m == nil {
		return
	}
	m.MalformedRecords.WithLabelValues(kind).Inc()
}

func (m *Metrics) SetVocabulary(n int) {
	if m == nil {
		return
	}
	m.VocabularySize.Set(float64(n))
}

func (m *Metrics) SetLocations(n int) {
	if m == nil {
		return
	}
	m.LocationsLoaded.Set(float64(n))
}

// WriteTextfile writes everything gathered by g to path in the Prometheus
// text format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
