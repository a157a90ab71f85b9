package entity

import (
	"time"

	"github.com/google/uuid"
)

// Batch represents one upload batch for data transfer between layers. Totals
// are a stored copy of the summary computed at processing time; they are not
// recomputed when individual invoices are hand-edited afterwards.
type Batch struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	TotalParts     float64   `json:"total_parts"`
	TotalLabor     float64   `json:"total_labor"`
	TotalTax       float64   `json:"total_tax"`
	TotalInvoices  int       `json:"total_invoices"`
	FlaggedCount   int       `json:"flagged_count"`
	ProcessedCount int       `json:"processed_count"`
	CreatedAt      time.Time `json:"created_at"`
}
