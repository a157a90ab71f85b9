package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Config for the vision model client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g. "gpt-4o-mini"
	Temperature float32       // near-deterministic by default
	MaxTokens   int           // generation cap, the reply is a small JSON object
	Timeout     time.Duration // http client timeout
	MaxAttempts int           // attempt budget per image, default 3
	BackoffBase time.Duration // first retry delay, doubled each attempt, default 1s
}

// Client issues one chat/completions request per invoice image and normalizes
// the reply. It implements Extractor.
type Client struct {
	cfg   Config
	http  *http.Client
	log   *slog.Logger
	sleep func(ctx context.Context, d time.Duration)
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 300
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		log:   logger,
		sleep: sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Extract sends one image to the vision model and returns the normalized
// result. Rate-limit errors are retried with exponential backoff up to the
// attempt budget; any other upstream error, and any unparsable reply, is
// terminal on the spot.
func (c *Client) Extract(ctx context.Context, image []byte, filename string) (Result, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("vision.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"filename", filename,
		"image_bytes", len(image),
	)

	dataURL := encodeDataURL(image)

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		raw, err := c.complete(ctx, dataURL)
		if err == nil {
			res, xerr := c.finishReply(rid, filename, raw)
			if xerr != nil {
				return Result{}, xerr
			}
			c.log.Info("vision.extract.ok",
				"req_id", rid,
				"filename", filename,
				"attempt", attempt,
				"parts", res.Parts,
				"labor", res.Labor,
				"tax", res.Tax.String(),
				"flagged", res.Flagged,
				"confidence", res.Confidence,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return res, nil
		}

		if !IsRateLimited(err) {
			c.log.Error("vision.extract.upstream_error",
				"req_id", rid, "filename", filename, "attempt", attempt, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return Result{}, &ExtractionError{
				Kind:    ErrKindUpstream,
				Message: err.Error(),
				Cause:   err,
			}
		}

		lastErr = err
		if attempt < c.cfg.MaxAttempts {
			delay := c.cfg.BackoffBase << (attempt - 1)
			c.log.Warn("vision.extract.rate_limited",
				"req_id", rid, "filename", filename, "attempt", attempt,
				"backoff_ms", delay.Milliseconds(),
			)
			c.sleep(ctx, delay)
		}
	}

	c.log.Error("vision.extract.quota_exhausted",
		"req_id", rid, "filename", filename,
		"attempts", c.cfg.MaxAttempts, "error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{}, &ExtractionError{
		Kind:          ErrKindQuota,
		Message:       "vision model quota or rate limit exceeded; try again later",
		QuotaExceeded: true,
		Cause:         lastErr,
	}
}

// finishReply validates and normalizes a successfully fetched reply. A parse
// failure here is terminal and does not consume a retry attempt: the model
// answered, it just answered badly, which lands in the same bucket as any
// other permanent failure.
func (c *Client) finishReply(rid, filename, raw string) (Result, *ExtractionError) {
	if err := ValidateJSONAgainstSchema(BuildReplyJSONSchema(), []byte(StripCodeFence(raw))); err != nil {
		c.log.Warn("vision.extract.schema_mismatch", "req_id", rid, "filename", filename, "error", err)
	}

	res, err := Normalize(raw)
	if err != nil {
		c.log.Error("vision.extract.parse_error",
			"req_id", rid, "filename", filename, "error", err, "raw", raw,
		)
		return Result{}, &ExtractionError{
			Kind:    ErrKindParse,
			Message: "model reply was not valid JSON",
			RawText: raw,
			Cause:   err,
		}
	}
	res.Filename = filename
	return res, nil
}

// rateLimitMarkers are matched against the upstream error text. The upstream
// client surfaces rate-limit, quota, and billing problems as generic errors,
// so classification is by string inspection.
var rateLimitMarkers = []string{"429", "quota", "rate limit", "rate_limit", "billing"}

// IsRateLimited reports whether an upstream error looks like a transient
// rate-limit or quota condition worth retrying.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, m := range rateLimitMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

// complete performs one chat/completions round trip and returns the model's
// text content.
func (c *Client) complete(ctx context.Context, dataURL string) (string, error) {
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"max_tokens":  c.cfg.MaxTokens,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": BuildExtractionPrompt()},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("vision response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("vision status %d: %s", resp.StatusCode, string(raw))
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode vision response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in vision response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// encodeDataURL re-encodes the image as a base64 data URI. The media type is
// assumed JPEG; hosted vision endpoints sniff the real container bytes.
func encodeDataURL(image []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
}
