package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/repository"
)

// Service is a tiny façade over the batch repository that produces XLSX bytes.
type Service struct {
	batches repository.BatchRepository
	logger  *slog.Logger
}

func NewService(batches repository.BatchRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{batches: batches, logger: logger}
}

// ExportBatchXLSX returns an XLSX workbook (as bytes) for one batch: a row per
// invoice plus a totals row mirroring the stored batch summary.
func (s *Service) ExportBatchXLSX(ctx context.Context, userID string, batchID uuid.UUID) ([]byte, error) {
	start := time.Now()

	b, invoices, err := s.batches.GetBatch(ctx, userID, batchID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Filename",
		"Parts",
		"Labor",
		"Tax",
		"Flagged",
		"Confidence",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for _, inv := range invoices {
		write(1, inv.Filename)
		write(2, inv.Parts)
		write(3, inv.Labor)
		write(4, taxCell(inv))
		write(5, inv.Flagged)
		write(6, inv.Confidence)
		if inv.ErrorMessage != nil {
			write(7, truncate(*inv.ErrorMessage, 140))
		}
		row++
	}

	// Totals from the stored summary, not recomputed: flagged rows are out.
	row++
	write(1, "Totals (non-flagged)")
	write(2, b.TotalParts)
	write(3, b.TotalLabor)
	write(4, b.TotalTax)
	write(5, fmt.Sprintf("%d flagged / %d total", b.FlaggedCount, b.TotalInvoices))

	_ = f.SetColWidth(sheet, "A", "A", 32) // filename
	_ = f.SetColWidth(sheet, "B", "D", 12) // amounts
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "G", 48) // error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batchID.String(),
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// taxCell renders numeric tax as a number and textual tax verbatim, so the
// spreadsheet keeps the same shape distinction as the API.
func taxCell(inv *entity.Invoice) any {
	t := inv.Tax()
	if t.IsNumeric() {
		return t.Amount()
	}
	return t.Text()
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
