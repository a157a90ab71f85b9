package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelechimadu/invoice-tally/gen/ent"
	entbatch "github.com/kelechimadu/invoice-tally/gen/ent/batch"
	entinvoice "github.com/kelechimadu/invoice-tally/gen/ent/invoice"
	"github.com/kelechimadu/invoice-tally/internal/batch"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/utils"
)

// CreateBatchRequest wraps everything persisted for one processed batch.
type CreateBatchRequest struct {
	UserID  string
	Name    string
	Rows    []batch.Row
	Summary batch.Summary
	// StorageKeys maps filename to the uploaded object key, when storage is on.
	StorageKeys map[string]string
}

type BatchRepository interface {
	CreateBatch(ctx context.Context, req *CreateBatchRequest) (*entity.Batch, []*entity.Invoice, error)
	ListBatches(ctx context.Context, userID string) ([]*entity.Batch, error)
	GetBatch(ctx context.Context, userID string, id uuid.UUID) (*entity.Batch, []*entity.Invoice, error)
	DeleteBatch(ctx context.Context, userID string, id uuid.UUID) error
}

type batchRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(client *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepository{
		client: client,
		logger: logger,
	}
}

// CreateBatch writes the batch row and all invoice rows in one transaction.
func (r *batchRepository) CreateBatch(ctx context.Context, req *CreateBatchRequest) (*entity.Batch, []*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, nil, common.NewAppError("DB_ERROR", "failed to begin transaction", err)
	}

	s := req.Summary
	b, err := tx.Batch.Create().
		SetUserID(req.UserID).
		SetName(req.Name).
		SetTotalParts(s.TotalParts).
		SetTotalLabor(s.TotalLabor).
		SetTotalTax(s.TotalTax).
		SetTotalInvoices(s.TotalInvoices).
		SetFlaggedCount(s.FlaggedCount).
		SetProcessedCount(s.ProcessedCount).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to create batch", "user_id", req.UserID, "error", err)
		return nil, nil, common.NewAppError("DB_ERROR", "failed to create batch", err)
	}

	invoices := make([]*entity.Invoice, 0, len(req.Rows))
	for _, row := range req.Rows {
		builder := tx.Invoice.Create().
			SetBatchID(b.ID).
			SetUserID(req.UserID).
			SetFilename(row.Filename).
			SetParts(row.Parts).
			SetLabor(row.Labor).
			SetFlagged(row.Flagged).
			SetConfidence(entinvoice.Confidence(row.Confidence)).
			SetRawText(row.RawText)
		if row.Tax.IsNumeric() {
			builder = builder.SetTaxAmount(row.Tax.Amount())
		} else {
			builder = builder.SetTaxNote(row.Tax.Text())
		}
		if row.Error != "" {
			builder = builder.SetErrorMessage(row.Error)
		}
		if key, ok := req.StorageKeys[row.Filename]; ok {
			builder = builder.SetStorageKey(key)
		}
		inv, err := builder.Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			r.logger.Error("failed to create invoice", "batch_id", b.ID, "filename", row.Filename, "error", err)
			return nil, nil, common.NewAppError("DB_ERROR", "failed to create invoice", err)
		}
		invoices = append(invoices, utils.ToInvoice(inv))
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, common.NewAppError("DB_ERROR", "failed to commit batch", err)
	}
	return utils.ToBatch(b), invoices, nil
}

func (r *batchRepository) ListBatches(ctx context.Context, userID string) ([]*entity.Batch, error) {
	recs, err := r.client.Batch.Query().
		Where(entbatch.UserID(userID)).
		Order(ent.Desc(entbatch.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list batches", "user_id", userID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to list batches", err)
	}

	result := make([]*entity.Batch, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToBatch(rec)
	}
	return result, nil
}

func (r *batchRepository) GetBatch(ctx context.Context, userID string, id uuid.UUID) (*entity.Batch, []*entity.Invoice, error) {
	b, err := r.client.Batch.Query().
		Where(entbatch.ID(id), entbatch.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, common.NewAppError("NOT_FOUND", "batch not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get batch", "batch_id", id, "error", err)
		return nil, nil, common.NewAppError("DB_ERROR", "failed to get batch", err)
	}

	recs, err := r.client.Invoice.Query().
		Where(entinvoice.BatchID(id)).
		Order(ent.Asc(entinvoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "batch_id", id, "error", err)
		return nil, nil, common.NewAppError("DB_ERROR", "failed to list invoices", err)
	}

	invoices := make([]*entity.Invoice, len(recs))
	for i, rec := range recs {
		invoices[i] = utils.ToInvoice(rec)
	}
	return utils.ToBatch(b), invoices, nil
}

// DeleteBatch removes the batch and its invoices. Ownership is checked first
// so a foreign batch ID reads as not found rather than forbidden.
func (r *batchRepository) DeleteBatch(ctx context.Context, userID string, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return common.NewAppError("DB_ERROR", "failed to begin transaction", err)
	}

	n, err := tx.Batch.Query().
		Where(entbatch.ID(id), entbatch.UserID(userID)).
		Count(ctx)
	if err != nil {
		_ = tx.Rollback()
		return common.NewAppError("DB_ERROR", "failed to check batch", err)
	}
	if n == 0 {
		_ = tx.Rollback()
		return common.NewAppError("NOT_FOUND", "batch not found", common.ErrNotFound)
	}

	if _, err := tx.Invoice.Delete().Where(entinvoice.BatchID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete invoices", "batch_id", id, "error", err)
		return common.NewAppError("DB_ERROR", "failed to delete invoices", err)
	}
	if _, err := tx.Batch.Delete().Where(entbatch.ID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		r.logger.Error("failed to delete batch", "batch_id", id, "error", err)
		return common.NewAppError("DB_ERROR", "failed to delete batch", err)
	}

	if err := tx.Commit(); err != nil {
		return common.NewAppError("DB_ERROR", "failed to commit delete", err)
	}
	r.logger.Info("batch.deleted", "batch_id", id, "user_id", userID)
	return nil
}
