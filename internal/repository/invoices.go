package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelechimadu/invoice-tally/gen/ent"
	entinvoice "github.com/kelechimadu/invoice-tally/gen/ent/invoice"
	"github.com/kelechimadu/invoice-tally/internal/common"
	"github.com/kelechimadu/invoice-tally/internal/entity"
	"github.com/kelechimadu/invoice-tally/internal/utils"
	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// UpdateInvoiceRequest carries the hand-edit fields; nil means leave as-is.
type UpdateInvoiceRequest struct {
	Parts *float64
	Labor *float64
	Tax   *vision.TaxValue
}

type InvoiceRepository interface {
	GetInvoice(ctx context.Context, userID string, id uuid.UUID) (*entity.Invoice, error)
	UpdateInvoice(ctx context.Context, userID string, id uuid.UUID, req *UpdateInvoiceRequest) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetInvoice(ctx context.Context, userID string, id uuid.UUID) (*entity.Invoice, error) {
	rec, err := r.client.Invoice.Query().
		Where(entinvoice.ID(id), entinvoice.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "invoice not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to get invoice", err)
	}
	return utils.ToInvoice(rec), nil
}

// UpdateInvoice applies a hand-edit. The flagged bit is always recomputed from
// the resulting tax shape; callers cannot set it directly. Batch totals are a
// snapshot from processing time and are deliberately left untouched.
func (r *invoiceRepository) UpdateInvoice(ctx context.Context, userID string, id uuid.UUID, req *UpdateInvoiceRequest) (*entity.Invoice, error) {
	cur, err := r.client.Invoice.Query().
		Where(entinvoice.ID(id), entinvoice.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("NOT_FOUND", "invoice not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get invoice", "invoice_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to get invoice", err)
	}

	tax := storedTax(cur)
	if req.Tax != nil {
		tax = *req.Tax
	}

	builder := r.client.Invoice.UpdateOneID(cur.ID).
		SetFlagged(tax.RequiresReview())
	if req.Parts != nil {
		builder = builder.SetParts(*req.Parts)
	}
	if req.Labor != nil {
		builder = builder.SetLabor(*req.Labor)
	}
	if req.Tax != nil {
		if tax.IsNumeric() {
			builder = builder.SetTaxAmount(tax.Amount()).ClearTaxNote()
		} else {
			builder = builder.SetTaxNote(tax.Text()).ClearTaxAmount()
		}
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice", "invoice_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "failed to update invoice", err)
	}
	r.logger.Info("invoice.updated", "invoice_id", id, "flagged", rec.Flagged)
	return utils.ToInvoice(rec), nil
}

func storedTax(rec *ent.Invoice) vision.TaxValue {
	if rec.TaxNote != nil {
		return vision.TextualTax(*rec.TaxNote)
	}
	if rec.TaxAmount != nil {
		return vision.NumericTax(*rec.TaxAmount)
	}
	return vision.NumericTax(0)
}
