package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelechimadu/invoice-tally/internal/common"
)

func TestVerifyReturnsIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-42","email":"mech@example.com"}`))
	}))
	defer srv.Close()

	v := NewHTTPVerifier(Config{BaseURL: srv.URL, APIKey: "anon-key"}, nil)
	id, err := v.Verify(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "user-42", id.UserID)
	assert.Equal(t, "mech@example.com", id.Email)
}

func TestVerifyRejectsBadToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	v := NewHTTPVerifier(Config{BaseURL: srv.URL, APIKey: "anon-key"}, nil)
	_, err := v.Verify(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	v := NewHTTPVerifier(Config{BaseURL: "http://localhost:0", APIKey: "k"}, nil)
	_, err := v.Verify(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}

func TestVerifyRejectsMissingUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"nobody@example.com"}`))
	}))
	defer srv.Close()

	v := NewHTTPVerifier(Config{BaseURL: srv.URL, APIKey: "k"}, nil)
	_, err := v.Verify(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnauthorized))
}
