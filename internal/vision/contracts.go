package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kelechimadu/invoice-tally/constants"
)

// TaxValue is the extracted tax, which is not always numeric. Invoices carry
// either an amount or free text like "N/A" or "Included", and the two shapes
// must stay distinguishable end to end because flagging is derived from them.
type TaxValue struct {
	amount  float64
	text    string
	numeric bool
}

// NumericTax builds a numeric tax value.
func NumericTax(v float64) TaxValue { return TaxValue{amount: v, numeric: true} }

// TextualTax builds a free-text tax value.
func TextualTax(s string) TaxValue { return TaxValue{text: s} }

// IsNumeric reports whether the tax carries an amount rather than text.
func (t TaxValue) IsNumeric() bool { return t.numeric }

// Amount returns the numeric amount; zero for textual values.
func (t TaxValue) Amount() float64 {
	if !t.numeric {
		return 0
	}
	return t.amount
}

// Text returns the free-text value; empty for numeric values.
func (t TaxValue) Text() string {
	if t.numeric {
		return ""
	}
	return t.text
}

// RequiresReview is the tax-shape rule: any textual tax, or any numeric tax
// other than exactly zero, marks the invoice for human review.
func (t TaxValue) RequiresReview() bool {
	if !t.numeric {
		return true
	}
	return t.amount != 0
}

func (t TaxValue) String() string {
	if t.numeric {
		return strconv.FormatFloat(t.amount, 'f', 2, 64)
	}
	return t.text
}

// MarshalJSON emits a JSON number for numeric tax and a JSON string otherwise.
func (t TaxValue) MarshalJSON() ([]byte, error) {
	if t.numeric {
		return json.Marshal(t.amount)
	}
	return json.Marshal(t.text)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (t *TaxValue) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*t = NumericTax(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("tax must be a number or a string: %w", err)
	}
	*t = TextualTax(s)
	return nil
}

// Result is the normalized outcome of one extraction call.
type Result struct {
	Parts      float64              `json:"parts"`
	Labor      float64              `json:"labor"`
	Tax        TaxValue             `json:"tax"`
	Flagged    bool                 `json:"flagged"`
	Confidence constants.Confidence `json:"confidence"`
	Filename   string               `json:"filename"`
	RawText    string               `json:"raw_text,omitempty"`
}

// ErrorKind classifies terminal extraction failures.
type ErrorKind string

const (
	ErrKindUpstream ErrorKind = "upstream" // auth, malformed request, network
	ErrKindQuota    ErrorKind = "quota"    // rate limit budget exhausted
	ErrKindParse    ErrorKind = "parse"    // model reply was not usable JSON
)

// ExtractionError is the structured failure returned to callers. The raw model
// text is retained for diagnosis when available.
type ExtractionError struct {
	Kind          ErrorKind
	Message       string
	RawText       string
	QuotaExceeded bool
	Cause         error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// Extractor is the interface the batch aggregator depends on.
type Extractor interface {
	Extract(ctx context.Context, image []byte, filename string) (Result, error)
}
