package vision

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kelechimadu/invoice-tally/constants"
)

// Normalize turns the raw model reply into a Result. The reply is treated as
// untrusted: fences are stripped, the JSON is decoded into a loose map, and
// every field is coerced explicitly. The model's own "flagged" boolean is
// discarded and recomputed from the tax shape, which is the authoritative rule.
func Normalize(raw string) (Result, error) {
	candidate := StripCodeFence(raw)

	var m map[string]any
	if err := json.Unmarshal([]byte(candidate), &m); err != nil {
		return Result{}, fmt.Errorf("decode model reply: %w", err)
	}

	res := Result{
		Parts:   coerceAmount(m["parts"]),
		Labor:   coerceAmount(m["labor"]),
		Tax:     coerceTax(m["tax"]),
		RawText: raw,
	}
	res.Flagged = res.Tax.RequiresReview()

	conf, _ := m["confidence"].(string)
	res.Confidence = constants.CanonicalizeConfidence(conf)

	return res, nil
}

// coerceAmount coerces a loosely-typed money field to a float64. Numbers pass
// through; strings get a decimal parse after currency noise is stripped.
// Anything unparsable becomes 0.00.
func coerceAmount(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := parseDecimal(t); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// coerceTax preserves the tax field's shape: numbers stay numeric, strings
// stay textual (never coerced, even when they look like numbers), and an
// absent field defaults to numeric 0.00.
func coerceTax(v any) TaxValue {
	switch t := v.(type) {
	case nil:
		return NumericTax(0)
	case float64:
		return NumericTax(t)
	case string:
		return TextualTax(t)
	default:
		return TextualTax(fmt.Sprint(t))
	}
}

var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "")

func parseDecimal(s string) (float64, error) {
	s = currencyReplacer.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(s, 64)
}
