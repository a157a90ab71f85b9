package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/kelechimadu/invoice-tally/internal/common"
)

// Identity is the authenticated caller as reported by the hosted auth provider.
type Identity struct {
	UserID string
	Email  string
}

// Verifier resolves a bearer token to an identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

// Config for the hosted auth provider client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// HTTPVerifier verifies tokens against the provider's user endpoint. Tokens
// are opaque here; the provider owns issuance and expiry.
type HTTPVerifier struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewHTTPVerifier(cfg Config, logger *slog.Logger) *HTTPVerifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPVerifier{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

func (v *HTTPVerifier) Verify(ctx context.Context, token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, common.NewAppError("UNAUTHORIZED", "missing bearer token", common.ErrUnauthorized)
	}

	url := strings.TrimRight(v.cfg.BaseURL, "/") + "/auth/v1/user"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Identity{}, common.NewAppError("AUTH_ERROR", "failed to build auth request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.cfg.APIKey)

	resp, err := v.http.Do(req)
	if err != nil {
		v.logger.Error("auth.verify.failed", "error", err)
		return Identity{}, common.NewAppError("AUTH_ERROR", "auth provider unreachable", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return Identity{}, common.NewAppError("UNAUTHORIZED", "invalid or expired token", common.ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		v.logger.Error("auth.verify.unexpected_status", "status", resp.StatusCode)
		return Identity{}, common.NewAppError("AUTH_ERROR", fmt.Sprintf("auth provider returned %d", resp.StatusCode), nil)
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Identity{}, common.NewAppError("AUTH_ERROR", "failed to decode auth response", err)
	}
	if body.ID == "" {
		return Identity{}, common.NewAppError("UNAUTHORIZED", "auth response missing user id", common.ErrUnauthorized)
	}

	return Identity{UserID: body.ID, Email: body.Email}, nil
}
