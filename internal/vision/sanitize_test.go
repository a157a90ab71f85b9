package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	const want = `{"parts":100,"labor":0,"tax":0,"flagged":false,"confidence":"high"}`

	cases := []struct {
		name string
		in   string
	}{
		{"bare", want},
		{"json fence", "```json\n" + want + "\n```"},
		{"plain fence", "```\n" + want + "\n```"},
		{"upper tag", "```JSON\n" + want + "\n```"},
		{"padded", "  ```json\n" + want + "\n```  \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, want, StripCodeFence(tc.in))
		})
	}
}

func TestFencedAndBareRepliesParseIdentically(t *testing.T) {
	const reply = `{"parts":50,"labor":20,"tax":"N/A","flagged":true,"confidence":"medium"}`

	bare, err := Normalize(reply)
	require.NoError(t, err)
	fenced, err := Normalize("```json\n" + reply + "\n```")
	require.NoError(t, err)

	// raw text differs by construction; everything else must match
	fenced.RawText = bare.RawText
	assert.Equal(t, bare, fenced)
}
