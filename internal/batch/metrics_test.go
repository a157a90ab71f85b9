package batch

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

func TestMetricsCountOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	extractor := &fakeExtractor{
		results: map[string]vision.Result{
			"ok.jpg":      {Parts: 10, Tax: vision.NumericTax(0), Confidence: constants.ConfidenceHigh},
			"flagged.jpg": {Parts: 5, Tax: vision.TextualTax("N/A"), Flagged: true, Confidence: constants.ConfidenceMedium},
		},
		errs: map[string]error{
			"broken.jpg": &vision.ExtractionError{Kind: vision.ErrKindUpstream, Message: "bad request"},
		},
	}
	agg := NewAggregator(extractor, nil).WithMetrics(m)

	agg.Process(context.Background(), []Image{
		{Filename: "ok.jpg"},
		{Filename: "flagged.jpg"},
		{Filename: "broken.jpg"},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.rows.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rows.WithLabelValues("flagged")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rows.WithLabelValues("failed")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.observe(Row{Flagged: true})
}
