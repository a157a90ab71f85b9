package vision

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReply struct {
	status int
	body   string
}

// scriptedUpstream plays back canned chat/completions responses in order.
type scriptedUpstream struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
}

func (s *scriptedUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := s.calls
		if i >= len(s.replies) {
			i = len(s.replies) - 1
		}
		s.calls++
		w.WriteHeader(s.replies[i].status)
		_, _ = w.Write([]byte(s.replies[i].body))
	}
}

func (s *scriptedUpstream) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func chatBody(t *testing.T, content string) string {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	require.NoError(t, err)
	return string(b)
}

const rateLimitBody = `{"error":{"message":"Rate limit reached for requests","type":"requests","code":"rate_limit_exceeded"}}`

func newTestClient(t *testing.T, upstream *scriptedUpstream) (*Client, *[]time.Duration) {
	t.Helper()
	srv := httptest.NewServer(upstream.handler())
	t.Cleanup(srv.Close)

	c := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-vision",
	}, nil)

	var sleeps []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) {
		sleeps = append(sleeps, d)
	}
	return c, &sleeps
}

func TestExtractBackoffProgressionThenQuotaFailure(t *testing.T) {
	up := &scriptedUpstream{replies: []scriptedReply{
		{http.StatusTooManyRequests, rateLimitBody},
		{http.StatusTooManyRequests, rateLimitBody},
		{http.StatusTooManyRequests, rateLimitBody},
	}}
	c, sleeps := newTestClient(t, up)

	_, err := c.Extract(context.Background(), []byte("img"), "a.jpg")
	require.Error(t, err)

	var xe *ExtractionError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, ErrKindQuota, xe.Kind)
	assert.True(t, xe.QuotaExceeded)

	assert.Equal(t, 3, up.callCount())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *sleeps)
}

func TestExtractSuccessOnSecondAttempt(t *testing.T) {
	up := &scriptedUpstream{replies: []scriptedReply{
		{http.StatusTooManyRequests, rateLimitBody},
		{http.StatusOK, ""},
	}}
	up.replies[1].body = chatBody(t, `{"parts":100,"labor":0,"tax":0,"flagged":false,"confidence":"high"}`)
	c, sleeps := newTestClient(t, up)

	res, err := c.Extract(context.Background(), []byte("img"), "b.jpg")
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.Parts)
	assert.Equal(t, "b.jpg", res.Filename)
	assert.Equal(t, 2, up.callCount())
	assert.Equal(t, []time.Duration{time.Second}, *sleeps)
}

func TestExtractNonRetryableErrorFailsImmediately(t *testing.T) {
	up := &scriptedUpstream{replies: []scriptedReply{
		{http.StatusBadRequest, `{"error":{"message":"invalid image payload"}}`},
	}}
	c, sleeps := newTestClient(t, up)

	_, err := c.Extract(context.Background(), []byte("img"), "c.jpg")
	require.Error(t, err)

	var xe *ExtractionError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, ErrKindUpstream, xe.Kind)
	assert.False(t, xe.QuotaExceeded)
	assert.Contains(t, xe.Message, "invalid image payload")

	assert.Equal(t, 1, up.callCount())
	assert.Empty(t, *sleeps)
}

func TestExtractParseFailureIsTerminalAndConsumesNoRetry(t *testing.T) {
	up := &scriptedUpstream{replies: []scriptedReply{
		{http.StatusOK, ""},
	}}
	up.replies[0].body = chatBody(t, "Sorry, I cannot read this invoice.")
	c, sleeps := newTestClient(t, up)

	_, err := c.Extract(context.Background(), []byte("img"), "d.jpg")
	require.Error(t, err)

	var xe *ExtractionError
	require.True(t, errors.As(err, &xe))
	assert.Equal(t, ErrKindParse, xe.Kind)
	assert.Equal(t, "Sorry, I cannot read this invoice.", xe.RawText)

	assert.Equal(t, 1, up.callCount())
	assert.Empty(t, *sleeps)
}

func TestExtractStripsFencedReply(t *testing.T) {
	reply := "```json\n{\"parts\":42.5,\"labor\":10,\"tax\":\"Included\",\"flagged\":false,\"confidence\":\"low\"}\n```"
	up := &scriptedUpstream{replies: []scriptedReply{{http.StatusOK, ""}}}
	up.replies[0].body = chatBody(t, reply)
	c, _ := newTestClient(t, up)

	res, err := c.Extract(context.Background(), []byte("img"), "e.jpg")
	require.NoError(t, err)

	assert.Equal(t, 42.5, res.Parts)
	assert.False(t, res.Tax.IsNumeric())
	assert.Equal(t, "Included", res.Tax.Text())
	assert.True(t, res.Flagged)
}

func TestExtractOverridesModelFlaggedJudgment(t *testing.T) {
	up := &scriptedUpstream{replies: []scriptedReply{{http.StatusOK, ""}}}
	up.replies[0].body = chatBody(t, `{"parts":100,"labor":50,"tax":8.25,"flagged":false,"confidence":"high"}`)
	c, _ := newTestClient(t, up)

	res, err := c.Extract(context.Background(), []byte("img"), "f.jpg")
	require.NoError(t, err)
	assert.True(t, res.Flagged)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(errors.New("vision status 429: too many requests")))
	assert.True(t, IsRateLimited(errors.New("insufficient quota for this billing period")))
	assert.True(t, IsRateLimited(errors.New("Rate limit reached")))
	assert.False(t, IsRateLimited(errors.New("vision status 401: bad api key")))
	assert.False(t, IsRateLimited(nil))
}
