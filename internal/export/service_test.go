package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/repository"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

type fakeBatchRepo struct {
	batch    *entity.Batch
	invoices []*entity.Invoice
}

func (f *fakeBatchRepo) CreateBatch(ctx context.Context, req *repository.CreateBatchRequest) (*entity.Batch, []*entity.Invoice, error) {
	panic("not used")
}

func (f *fakeBatchRepo) ListBatches(ctx context.Context, userID string) ([]*entity.Batch, error) {
	panic("not used")
}

func (f *fakeBatchRepo) GetBatch(ctx context.Context, userID string, id uuid.UUID) (*entity.Batch, []*entity.Invoice, error) {
	return f.batch, f.invoices, nil
}

func (f *fakeBatchRepo) DeleteBatch(ctx context.Context, userID string, id uuid.UUID) error {
	panic("not used")
}

func TestExportBatchXLSX(t *testing.T) {
	batchID := uuid.New()
	numeric := &entity.Invoice{Filename: "ok.jpg", Parts: 120.50, Labor: 80, Confidence: "high"}
	numeric.SetTax(vision.NumericTax(0))
	textual := &entity.Invoice{Filename: "review.jpg", Parts: 60, Flagged: true, Confidence: "medium"}
	textual.SetTax(vision.TextualTax("N/A"))

	repo := &fakeBatchRepo{
		batch: &entity.Batch{
			ID:             batchID,
			UserID:         "user-1",
			Name:           "march",
			TotalParts:     120.50,
			TotalLabor:     80,
			TotalInvoices:  2,
			FlaggedCount:   1,
			ProcessedCount: 1,
		},
		invoices: []*entity.Invoice{numeric, textual},
	}

	svc := NewService(repo, nil)
	data, err := svc.ExportBatchXLSX(context.Background(), "user-1", batchID)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	rows, err := wb.GetRows("Invoices")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 4)

	assert.Equal(t, "Filename", rows[0][0])
	assert.Equal(t, "ok.jpg", rows[1][0])
	assert.Equal(t, "0", rows[1][3], "numeric zero tax stays numeric")
	assert.Equal(t, "review.jpg", rows[2][0])
	assert.Equal(t, "N/A", rows[2][3], "textual tax exported verbatim")

	totals := rows[len(rows)-1]
	assert.Equal(t, "Totals (non-flagged)", totals[0])
	assert.Equal(t, "120.5", totals[1])
	assert.Equal(t, "80", totals[2])
}
