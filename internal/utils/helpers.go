package utils

import (
	"github.com/kelechimadu/invoice-tally/gen/ent"
	"github.com/kelechimadu/invoice-tally/internal/entity"
)

func ToBatch(b *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:             b.ID,
		UserID:         b.UserID,
		Name:           b.Name,
		TotalParts:     b.TotalParts,
		TotalLabor:     b.TotalLabor,
		TotalTax:       b.TotalTax,
		TotalInvoices:  b.TotalInvoices,
		FlaggedCount:   b.FlaggedCount,
		ProcessedCount: b.ProcessedCount,
		CreatedAt:      b.CreatedAt,
	}
}

func ToInvoice(i *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:           i.ID,
		BatchID:      i.BatchID,
		UserID:       i.UserID,
		Filename:     i.Filename,
		Parts:        i.Parts,
		Labor:        i.Labor,
		TaxAmount:    i.TaxAmount,
		TaxNote:      i.TaxNote,
		Flagged:      i.Flagged,
		Confidence:   string(i.Confidence),
		ErrorMessage: i.ErrorMessage,
		RawText:      i.RawText,
		StorageKey:   i.StorageKey,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}
