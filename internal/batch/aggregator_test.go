package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// fakeExtractor returns a canned outcome per filename.
type fakeExtractor struct {
	results map[string]vision.Result
	errs    map[string]error
	order   []string
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, filename string) (vision.Result, error) {
	f.order = append(f.order, filename)
	if err, ok := f.errs[filename]; ok {
		return vision.Result{}, err
	}
	res := f.results[filename]
	res.Filename = filename
	return res, nil
}

func TestProcessMixedBatchScenario(t *testing.T) {
	fe := &fakeExtractor{
		results: map[string]vision.Result{
			"a.jpg": {Parts: 100, Labor: 0, Tax: vision.NumericTax(0), Flagged: false, Confidence: constants.ConfidenceHigh},
			"b.jpg": {Parts: 50, Labor: 20, Tax: vision.TextualTax("N/A"), Flagged: true, Confidence: constants.ConfidenceMedium},
		},
		errs: map[string]error{
			"c.jpg": &vision.ExtractionError{Kind: vision.ErrKindUpstream, Message: "vision status 401: bad api key"},
		},
	}
	agg := NewAggregator(fe, nil)

	images := []Image{
		{Data: []byte("a"), Filename: "a.jpg"},
		{Data: []byte("b"), Filename: "b.jpg"},
		{Data: []byte("c"), Filename: "c.jpg"},
	}
	rows, summary := agg.Process(context.Background(), images)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, fe.order)

	assert.Equal(t, 100.0, summary.TotalParts)
	assert.Equal(t, 0.0, summary.TotalLabor)
	assert.Equal(t, 0.0, summary.TotalTax)
	assert.Equal(t, 3, summary.TotalInvoices)
	assert.Equal(t, 2, summary.FlaggedCount)
	assert.Equal(t, 1, summary.ProcessedCount)

	// failed row degrades but keeps the batch going
	failed := rows[2]
	assert.True(t, failed.Flagged)
	assert.Equal(t, 0.0, failed.Parts)
	assert.Contains(t, failed.Error, "bad api key")
	assert.False(t, failed.QuotaExceeded)
}

func TestProcessPropagatesQuotaExceeded(t *testing.T) {
	fe := &fakeExtractor{
		errs: map[string]error{
			"q.jpg": &vision.ExtractionError{
				Kind:          vision.ErrKindQuota,
				Message:       "vision model quota or rate limit exceeded; try again later",
				QuotaExceeded: true,
			},
		},
	}
	agg := NewAggregator(fe, nil)

	rows, summary := agg.Process(context.Background(), []Image{{Data: []byte("q"), Filename: "q.jpg"}})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].QuotaExceeded)
	assert.True(t, rows[0].Flagged)
	assert.Equal(t, 1, summary.FlaggedCount)
	assert.Equal(t, 0, summary.ProcessedCount)
}

func TestProcessTotalsMatchNonFlaggedRows(t *testing.T) {
	fe := &fakeExtractor{
		results: map[string]vision.Result{
			"1.jpg": {Parts: 10.10, Labor: 5.55, Tax: vision.NumericTax(0)},
			"2.jpg": {Parts: 20.21, Labor: 1.01, Tax: vision.NumericTax(0)},
			"3.jpg": {Parts: 999, Labor: 999, Tax: vision.NumericTax(12), Flagged: true},
		},
	}
	agg := NewAggregator(fe, nil)

	images := []Image{
		{Filename: "1.jpg"}, {Filename: "2.jpg"}, {Filename: "3.jpg"},
	}
	rows, summary := agg.Process(context.Background(), images)

	var parts, labor, tax float64
	for _, r := range rows {
		if r.Flagged {
			continue
		}
		parts += r.Parts
		labor += r.Labor
		if r.Tax.IsNumeric() {
			tax += r.Tax.Amount()
		}
	}
	assert.Equal(t, Round2(parts), summary.TotalParts)
	assert.Equal(t, Round2(labor), summary.TotalLabor)
	assert.Equal(t, Round2(tax), summary.TotalTax)

	// flagged row excluded from totals, counted in the invoice count
	assert.Equal(t, 30.31, summary.TotalParts)
	assert.Equal(t, 6.56, summary.TotalLabor)
	assert.Equal(t, 0.0, summary.TotalTax)
	assert.Equal(t, 3, summary.TotalInvoices)
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 0.0, Round2(0))
	// 0.125 is exactly representable: a true tie, and it must round up
	assert.Equal(t, 0.13, Round2(0.125))
}
