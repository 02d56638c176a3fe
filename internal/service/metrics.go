package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts how model responses were normalized.
type Metrics struct {
	normalization   *prometheus.CounterVec
	verdictMismatch prometheus.Counter
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		normalization: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "response_normalization_total",
				Help: "Model responses by operation and the normalization strategy that decoded them.",
			},
			[]string{"operation", "strategy"},
		),
		verdictMismatch: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "comparison_verdict_schema_mismatch_total",
			Help: "Comparison verdicts returned with missing or mistyped fields.",
		}),
	}
	for _, c := range []prometheus.Collector{m.normalization, m.verdictMismatch} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observeNormalization(operation, strategy string) {
	if m == nil {
		return
	}
	m.normalization.WithLabelValues(operation, strategy).Inc()
}

func (m *Metrics) observeVerdictMismatch() {
	if m == nil {
		return
	}
	m.verdictMismatch.Inc()
}
