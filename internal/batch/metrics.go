package batch

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts per-invoice extraction outcomes.
type Metrics struct {
	rows *prometheus.CounterVec
}

// NewMetrics registers the extraction counters on the given registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		rows: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invoice_extractions_total",
				Help: "Total number of invoice images processed, by outcome.",
			},
			[]string{"outcome"},
		),
	}
	if err := reg.Register(m.rows); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(row Row) {
	if m == nil {
		return
	}
	switch {
	case row.Error != "":
		m.rows.WithLabelValues("failed").Inc()
	case row.Flagged:
		m.rows.WithLabelValues("flagged").Inc()
	default:
		m.rows.WithLabelValues("ok").Inc()
	}
}
