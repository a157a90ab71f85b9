package vision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/constants"
)

func TestNormalizeMissingFieldDefaults(t *testing.T) {
	res, err := Normalize(`{}`)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Parts)
	assert.Equal(t, 0.0, res.Labor)
	assert.True(t, res.Tax.IsNumeric())
	assert.Equal(t, 0.0, res.Tax.Amount())
	assert.False(t, res.Flagged)
	assert.Equal(t, constants.ConfidenceMedium, res.Confidence)
}

func TestNormalizeCoercesStringAmounts(t *testing.T) {
	res, err := Normalize(`{"parts":"$1,234.50","labor":"80","tax":0,"confidence":"high"}`)
	require.NoError(t, err)

	assert.Equal(t, 1234.50, res.Parts)
	assert.Equal(t, 80.0, res.Labor)
	assert.Equal(t, constants.ConfidenceHigh, res.Confidence)
}

func TestNormalizeUnparsableAmountBecomesZero(t *testing.T) {
	res, err := Normalize(`{"parts":"see attached","labor":true}`)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.Parts)
	assert.Equal(t, 0.0, res.Labor)
}

func TestNormalizeTaxShapeDrivesFlagged(t *testing.T) {
	cases := []struct {
		name    string
		reply   string
		flagged bool
		numeric bool
	}{
		{"zero numeric tax", `{"parts":100,"tax":0,"flagged":true}`, false, true},
		{"nonzero numeric tax", `{"parts":100,"tax":5.25,"flagged":false}`, true, true},
		{"textual tax", `{"parts":100,"tax":"N/A","flagged":false}`, true, false},
		{"textual tax that looks numeric", `{"parts":100,"tax":"5.00"}`, true, false},
		{"absent tax", `{"parts":100}`, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Normalize(tc.reply)
			require.NoError(t, err)
			// the model's own flagged value must never leak through
			assert.Equal(t, tc.flagged, res.Flagged)
			assert.Equal(t, tc.numeric, res.Tax.IsNumeric())
		})
	}
}

func TestNormalizeConfidenceCanonicalization(t *testing.T) {
	res, err := Normalize(`{"parts":1,"confidence":"HIGH"}`)
	require.NoError(t, err)
	assert.Equal(t, constants.ConfidenceHigh, res.Confidence)

	res, err = Normalize(`{"parts":1,"confidence":"certain"}`)
	require.NoError(t, err)
	assert.Equal(t, constants.ConfidenceMedium, res.Confidence)
}

func TestNormalizeRejectsNonJSON(t *testing.T) {
	_, err := Normalize("Sorry, I cannot read this invoice.")
	require.Error(t, err)
}

func TestTaxValueJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(NumericTax(7.5))
	require.NoError(t, err)
	assert.Equal(t, "7.5", string(b))

	b, err = json.Marshal(TextualTax("Included"))
	require.NoError(t, err)
	assert.Equal(t, `"Included"`, string(b))

	var tv TaxValue
	require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &tv))
	assert.False(t, tv.IsNumeric())
	assert.Equal(t, "N/A", tv.Text())

	require.NoError(t, json.Unmarshal([]byte(`12.34`), &tv))
	assert.True(t, tv.IsNumeric())
	assert.Equal(t, 12.34, tv.Amount())

	require.Error(t, json.Unmarshal([]byte(`[1]`), &tv))
}
