package batch

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// Image is one uploaded invoice: raw bytes plus a display filename.
type Image struct {
	Data     []byte
	Filename string
}

// Row is the per-invoice outcome handed back to the caller. Failed extractions
// degrade to a flagged, zero-valued row with the error carried in-band.
type Row struct {
	Filename      string               `json:"filename"`
	Parts         float64              `json:"parts"`
	Labor         float64              `json:"labor"`
	Tax           vision.TaxValue      `json:"tax"`
	Flagged       bool                 `json:"flagged"`
	Confidence    constants.Confidence `json:"confidence"`
	RawText       string               `json:"raw_text,omitempty"`
	Error         string               `json:"error,omitempty"`
	QuotaExceeded bool                 `json:"quota_exceeded,omitempty"`
}

// Summary aggregates one batch. Totals cover non-flagged rows only and are
// rounded to 2 decimals; counts cover every row, flagged or not.
type Summary struct {
	TotalParts     float64 `json:"total_parts"`
	TotalLabor     float64 `json:"total_labor"`
	TotalTax       float64 `json:"total_tax"`
	TotalInvoices  int     `json:"total_invoices"`
	FlaggedCount   int     `json:"flagged_count"`
	ProcessedCount int     `json:"processed_count"`
}

// Aggregator runs the extraction client over a batch of images, one at a time.
type Aggregator struct {
	extractor vision.Extractor
	logger    *slog.Logger
	metrics   *Metrics
}

func NewAggregator(extractor vision.Extractor, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{extractor: extractor, logger: logger}
}

// WithMetrics attaches outcome counters; a nil Metrics is a no-op.
func (a *Aggregator) WithMetrics(m *Metrics) *Aggregator {
	a.metrics = m
	return a
}

// Process extracts every image sequentially, in input order. A per-image
// failure never aborts the batch; the row degrades and processing continues.
// Images are processed one at a time on purpose: the upstream model is
// rate-limited per account, and serializing avoids burst 429s.
func (a *Aggregator) Process(ctx context.Context, images []Image) ([]Row, Summary) {
	rows := make([]Row, 0, len(images))
	var parts, labor, tax float64
	flagged := 0

	for _, img := range images {
		res, err := a.extractor.Extract(ctx, img.Data, img.Filename)
		if err != nil {
			row := Row{
				Filename:   img.Filename,
				Tax:        vision.NumericTax(0),
				Flagged:    true,
				Confidence: constants.ConfidenceLow,
				Error:      err.Error(),
			}
			var xe *vision.ExtractionError
			if errors.As(err, &xe) {
				row.Error = xe.Message
				row.RawText = xe.RawText
				row.QuotaExceeded = xe.QuotaExceeded
			}
			a.logger.Warn("batch.row.failed", "filename", img.Filename, "error", err)
			a.metrics.observe(row)
			rows = append(rows, row)
			flagged++
			continue
		}

		rows = append(rows, Row{
			Filename:   res.Filename,
			Parts:      res.Parts,
			Labor:      res.Labor,
			Tax:        res.Tax,
			Flagged:    res.Flagged,
			Confidence: res.Confidence,
			RawText:    res.RawText,
		})
		a.metrics.observe(rows[len(rows)-1])
		if res.Flagged {
			flagged++
			continue
		}

		parts += res.Parts
		labor += res.Labor
		// numeric-type guard: a non-flagged row always carries numeric zero
		// tax, but a string value must never reach the numeric total
		if res.Tax.IsNumeric() {
			tax += res.Tax.Amount()
		}
	}

	summary := Summary{
		TotalParts:     Round2(parts),
		TotalLabor:     Round2(labor),
		TotalTax:       Round2(tax),
		TotalInvoices:  len(rows),
		FlaggedCount:   flagged,
		ProcessedCount: len(rows) - flagged,
	}
	a.logger.Info("batch.processed",
		"total_invoices", summary.TotalInvoices,
		"flagged", summary.FlaggedCount,
		"processed", summary.ProcessedCount,
		"total_parts", summary.TotalParts,
		"total_labor", summary.TotalLabor,
		"total_tax", summary.TotalTax,
	)
	return rows, summary
}

// Round2 rounds half-up to 2 decimal places, matching currency display.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
