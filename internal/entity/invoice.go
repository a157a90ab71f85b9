package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/kelechimadu/invoice-tally/internal/vision"
)

// Invoice represents one extracted invoice row. Tax is stored split across
// tax_amount and tax_note so the numeric-or-text shape survives persistence.
type Invoice struct {
	ID           uuid.UUID `json:"id"`
	BatchID      uuid.UUID `json:"batch_id"`
	UserID       string    `json:"user_id"`
	Filename     string    `json:"filename"`
	Parts        float64   `json:"parts"`
	Labor        float64   `json:"labor"`
	TaxAmount    *float64  `json:"tax_amount,omitempty"`
	TaxNote      *string   `json:"tax_note,omitempty"`
	Flagged      bool      `json:"flagged"`
	Confidence   string    `json:"confidence"`
	ErrorMessage *string   `json:"error,omitempty"`
	RawText      string    `json:"raw_text,omitempty"`
	StorageKey   *string   `json:"storage_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Tax reassembles the tagged union from the stored columns.
func (i *Invoice) Tax() vision.TaxValue {
	if i.TaxNote != nil {
		return vision.TextualTax(*i.TaxNote)
	}
	if i.TaxAmount != nil {
		return vision.NumericTax(*i.TaxAmount)
	}
	return vision.NumericTax(0)
}

// SetTax stores the union back into its column pair.
func (i *Invoice) SetTax(t vision.TaxValue) {
	if t.IsNumeric() {
		v := t.Amount()
		i.TaxAmount = &v
		i.TaxNote = nil
		return
	}
	s := t.Text()
	i.TaxNote = &s
	i.TaxAmount = nil
}
