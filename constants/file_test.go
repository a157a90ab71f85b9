package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedExt(t *testing.T) {
	assert.True(t, IsAllowedExt("invoice.jpg"))
	assert.True(t, IsAllowedExt("INVOICE.JPEG"))
	assert.True(t, IsAllowedExt("scan.tiff"))
	assert.False(t, IsAllowedExt("notes.txt"))
	assert.False(t, IsAllowedExt("archive.pdf"))
	assert.False(t, IsAllowedExt("noextension"))
}

func TestCanonicalizeConfidence(t *testing.T) {
	assert.Equal(t, ConfidenceHigh, CanonicalizeConfidence(" High "))
	assert.Equal(t, ConfidenceLow, CanonicalizeConfidence("LOW"))
	assert.Equal(t, ConfidenceMedium, CanonicalizeConfidence("certain"))
	assert.Equal(t, ConfidenceMedium, CanonicalizeConfidence(""))
}
