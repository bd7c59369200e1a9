package app

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/esmanning/emmAMR/nlp/generator"
)

// Metrics of a batch run, written as a text file when the run is over.
type Metrics struct {
	registry *prometheus.Registry

	Generated   prometheus.Counter
	Skipped     prometheus.Counter
	Failed      prometheus.Counter
	OracleCalls prometheus.Counter
	Expansions  prometheus.Histogram
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	return &Metrics{
		registry: reg,
		Generated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emmamr_sentences_generated_total",
			Help: "Total number of sentences generated",
		}),
		Skipped: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emmamr_blocks_skipped_total",
			Help: "Total number of input blocks without a usable graph",
		}),
		Failed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emmamr_sentences_failed_total",
			Help: "Total number of graphs that could not be generated",
		}),
		OracleCalls: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "emmamr_oracle_calls_total",
			Help: "Total number of strings scored by the language model",
		}),
		Expansions: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "emmamr_cube_expansions",
			Help:    "Cube expansions per generated sentence",
			Buckets: prometheus.ExponentialBuckets(10, 4, 8),
		}),
	}
}

// Observe has the signature of generator.Batch.Observe.
func (m *Metrics) Observe(block int, result *generator.Result) {
	m.Expansions.Observe(float64(result.Stats.Expansions))
}

func (m *Metrics) Report(report *generator.Report, oracleCalls uint64) {
	m.Generated.Add(float64(report.Generated))
	m.Skipped.Add(float64(len(report.Skipped)))
	m.Failed.Add(float64(len(report.Failed)))
	m.OracleCalls.Add(float64(oracleCalls))
}

func (m *Metrics) WriteFile(filename string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(filename, m.registry), "writing metrics to %s", filename)
}
