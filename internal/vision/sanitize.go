package vision

import "strings"

// StripCodeFence removes a leading/trailing markdown code fence, optionally
// tagged "json". The model frequently wraps its reply this way despite being
// told not to, so the candidate string must be cleaned before decoding.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		rest := strings.TrimLeft(s, " \t")
		for _, tag := range []string{"json", "JSON"} {
			if strings.HasPrefix(rest, tag) {
				s = strings.TrimPrefix(rest, tag)
				break
			}
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
