package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/constants"
	"github.com/kelechimadu/invoice-tally/gen/ent"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

func openTestDB(t *testing.T) *ent.Client {
	t.Helper()
	// one shared-cache memory DB per test so state never leaks across tests
	client, err := OpenSQLite(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedBatch(t *testing.T, repo BatchRepository, userID string) uuid.UUID {
	t.Helper()
	b, _, err := repo.CreateBatch(context.Background(), &CreateBatchRequest{
		UserID: userID,
		Name:   "march uploads",
		Rows: []batch.Row{
			{Filename: "a.jpg", Parts: 120.50, Labor: 80, Tax: vision.NumericTax(0), Confidence: constants.ConfidenceHigh},
			{Filename: "b.jpg", Parts: 60, Tax: vision.TextualTax("N/A"), Flagged: true, Confidence: constants.ConfidenceMedium},
		},
		Summary: batch.Summary{
			TotalParts:     120.50,
			TotalLabor:     80,
			TotalInvoices:  2,
			FlaggedCount:   1,
			ProcessedCount: 1,
		},
	})
	require.NoError(t, err)
	return b.ID
}

func TestCreateBatchPersistsRowsAndTotals(t *testing.T) {
	client := openTestDB(t)
	repo := NewBatchRepository(client, slog.Default())

	id := seedBatch(t, repo, "user-1")

	b, invoices, err := repo.GetBatch(context.Background(), "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "march uploads", b.Name)
	assert.Equal(t, 120.50, b.TotalParts)
	assert.Equal(t, 2, b.TotalInvoices)
	assert.Equal(t, 1, b.FlaggedCount)
	require.Len(t, invoices, 2)

	assert.False(t, invoices[0].Flagged)
	require.NotNil(t, invoices[0].TaxAmount)
	assert.Equal(t, 0.0, *invoices[0].TaxAmount)
	assert.Nil(t, invoices[0].TaxNote)

	assert.True(t, invoices[1].Flagged)
	require.NotNil(t, invoices[1].TaxNote)
	assert.Equal(t, "N/A", *invoices[1].TaxNote)
	assert.Nil(t, invoices[1].TaxAmount)
}

func TestGetBatchIsScopedToOwner(t *testing.T) {
	client := openTestDB(t)
	repo := NewBatchRepository(client, slog.Default())

	id := seedBatch(t, repo, "user-1")

	_, _, err := repo.GetBatch(context.Background(), "user-2", id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestListBatchesOnlyReturnsOwnRows(t *testing.T) {
	client := openTestDB(t)
	repo := NewBatchRepository(client, slog.Default())

	seedBatch(t, repo, "user-1")
	seedBatch(t, repo, "user-2")

	batches, err := repo.ListBatches(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, batches, 1)
	assert.Equal(t, "user-1", batches[0].UserID)
}

func TestDeleteBatchRemovesInvoices(t *testing.T) {
	client := openTestDB(t)
	repo := NewBatchRepository(client, slog.Default())

	id := seedBatch(t, repo, "user-1")

	// foreign user cannot delete
	err := repo.DeleteBatch(context.Background(), "user-2", id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	require.NoError(t, repo.DeleteBatch(context.Background(), "user-1", id))

	_, _, err = repo.GetBatch(context.Background(), "user-1", id)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	n, err := client.Invoice.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
