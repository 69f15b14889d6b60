package http

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelpoint-api/internal/config"
	jwtinfra "github.com/travelpoint-api/internal/infrastructure/jwt"
	"github.com/travelpoint-api/internal/infrastructure/memstore"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")
	require.NoError(t, os.WriteFile(privPath,
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}), 0600))
	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(pubPath, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes}), 0600))

	p, err := jwtinfra.NewProvider(privPath, pubPath, time.Minute)
	require.NoError(t, err)

	store := memstore.New(time.Minute)
	cfg := &config.Config{AllowedOrigins: []string{"*"}, RequestTimeoutSeconds: 5, OTPSingleUse: true}
	return NewRouter(cfg, &Deps{OTPs: store, Pending: store, JWTProvider: p})
}

func TestRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		status int
	}{
		{"/", http.StatusOK},
		{"/health-check/ping", http.StatusOK},
		{"/health-check/other", http.StatusBadRequest},
		{"/posts/abc", http.StatusBadRequest},
		{"/nowhere", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, rr.Code)
		})
	}
}

func TestRouter_MutatingRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/secure-endpoint"},
		{http.MethodPost, "/profile/update"},
		{http.MethodPost, "/posts/create"},
		{http.MethodPut, "/posts/like/1"},
		{http.MethodPost, "/follow"},
		{http.MethodPost, "/unfollow"},
		{http.MethodPost, "/guide/create"},
		{http.MethodDelete, "/guides/1"},
		{http.MethodPut, "/equipment/1"},
		{http.MethodPost, "/vehicle/create"},
		{http.MethodDelete, "/authorities/1"},
		{http.MethodPost, "/book"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}
