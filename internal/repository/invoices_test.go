package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateInvoiceRecomputesFlaggedFromTaxShape(t *testing.T) {
	client := openTestDB(t)
	batches := NewBatchRepository(client, slog.Default())
	invoices := NewInvoiceRepository(client, slog.Default())

	id := seedBatch(t, batches, "user-1")
	_, rows, err := batches.GetBatch(context.Background(), "user-1", id)
	require.NoError(t, err)
	flaggedRow := rows[1] // textual "N/A" tax

	// correcting the tax to numeric zero clears the flag
	updated, err := invoices.UpdateInvoice(context.Background(), "user-1", flaggedRow.ID, &UpdateInvoiceRequest{
		Tax: ptr(vision.NumericTax(0)),
	})
	require.NoError(t, err)
	assert.False(t, updated.Flagged)
	require.NotNil(t, updated.TaxAmount)
	assert.Nil(t, updated.TaxNote)

	// a nonzero numeric tax re-raises it
	updated, err = invoices.UpdateInvoice(context.Background(), "user-1", flaggedRow.ID, &UpdateInvoiceRequest{
		Tax: ptr(vision.NumericTax(4.25)),
	})
	require.NoError(t, err)
	assert.True(t, updated.Flagged)

	// and so does free text
	updated, err = invoices.UpdateInvoice(context.Background(), "user-1", flaggedRow.ID, &UpdateInvoiceRequest{
		Tax: ptr(vision.TextualTax("Included")),
	})
	require.NoError(t, err)
	assert.True(t, updated.Flagged)
	require.NotNil(t, updated.TaxNote)
	assert.Equal(t, "Included", *updated.TaxNote)
	assert.Nil(t, updated.TaxAmount)
}

func TestUpdateInvoicePartialEditKeepsTaxAndFlag(t *testing.T) {
	client := openTestDB(t)
	batches := NewBatchRepository(client, slog.Default())
	invoices := NewInvoiceRepository(client, slog.Default())

	id := seedBatch(t, batches, "user-1")
	_, rows, err := batches.GetBatch(context.Background(), "user-1", id)
	require.NoError(t, err)
	flaggedRow := rows[1]

	updated, err := invoices.UpdateInvoice(context.Background(), "user-1", flaggedRow.ID, &UpdateInvoiceRequest{
		Parts: ptr(99.99),
	})
	require.NoError(t, err)
	assert.Equal(t, 99.99, updated.Parts)
	assert.True(t, updated.Flagged, "flag derives from the untouched textual tax")
	require.NotNil(t, updated.TaxNote)
}

func TestUpdateInvoiceScopedToOwner(t *testing.T) {
	client := openTestDB(t)
	batches := NewBatchRepository(client, slog.Default())
	invoices := NewInvoiceRepository(client, slog.Default())

	id := seedBatch(t, batches, "user-1")
	_, rows, err := batches.GetBatch(context.Background(), "user-1", id)
	require.NoError(t, err)

	_, err = invoices.UpdateInvoice(context.Background(), "user-2", rows[0].ID, &UpdateInvoiceRequest{
		Labor: ptr(1.0),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = invoices.GetInvoice(context.Background(), "user-2", rows[0].ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestStoredTaxRoundTrip(t *testing.T) {
	inv := &entity.Invoice{}
	inv.SetTax(vision.TextualTax("Exempt"))
	assert.False(t, inv.Tax().IsNumeric())
	assert.Equal(t, "Exempt", inv.Tax().Text())

	inv.SetTax(vision.NumericTax(3.50))
	assert.True(t, inv.Tax().IsNumeric())
	assert.Equal(t, 3.50, inv.Tax().Amount())
	assert.Nil(t, inv.TaxNote)
}
