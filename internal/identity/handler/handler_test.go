package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubhub/internal/identity"
)

func newRouter(t *testing.T) (chi.Router, *identity.LocalProvider, *identity.TokenService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	provider := identity.NewLocalProvider()
	hash, err := identity.HashPassword("hunter2!")
	require.NoError(t, err)
	provider.Register(identity.Account{
		ID:            "u1",
		Email:         "bart@example.com",
		PasswordHash:  hash,
		EmailVerified: true,
	})

	tokens := identity.NewTokenService("test-signing-key", "clubhub-test")
	h := New(provider, tokens, logger, nil)
	r := chi.NewRouter()
	h.Register(r)
	return r, provider, tokens
}

func login(r chi.Router, email, password string) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(map[string]string{"email": email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Firefox/130.0")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleLogin(t *testing.T) {
	r, _, tokens := newRouter(t)

	w := login(r, "bart@example.com", "hunter2!")

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp["token_type"])

	claims, err := tokens.ValidateToken(resp["access_token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	r, _, _ := newRouter(t)

	w := login(r, "bart@example.com", "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestHandleLogin_MissingFields(t *testing.T) {
	r, _, _ := newRouter(t)

	w := login(r, "bart@example.com", "")

	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

func TestHandleLogout(t *testing.T) {
	r, provider, _ := newRouter(t)
	_ = login(r, "bart@example.com", "hunter2!")
	require.NotNil(t, provider.Current())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, provider.Current())
}
