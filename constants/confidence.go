package constants

import "strings"

// Confidence is the model's coarse self-reported reliability signal.
type Confidence string

// Stable values (store these exact strings in DB).
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceLevels holds the allowed values for the confidence field on invoices.
var ConfidenceLevels = []string{string(ConfidenceHigh), string(ConfidenceMedium), string(ConfidenceLow)}

// CanonicalizeConfidence maps a raw model label onto the enum. Anything
// unrecognized (including the empty string) becomes medium.
func CanonicalizeConfidence(raw string) Confidence {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return ConfidenceHigh
	case "low":
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}
