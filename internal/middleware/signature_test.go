package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"kellum/api/internal/config"
	"kellum/api/internal/models"
	"kellum/api/internal/security"
)

const testSignatureSecret = "test-secret"

func newSignedRouter(t *testing.T) (*gin.Engine, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.AppConfig{}
	cfg.Security.SignatureSecret = testSignatureSecret

	gin.SetMode(gin.TestMode)
	router := gin.New()
	attachUser := func(c *gin.Context) {
		c.Set(currentUserKey, models.AuthenticatedUser{Username: "alice", SessionID: "s1"})
	}
	router.POST("/signed", attachUser, Signature(cfg, client), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, client
}

func signedRequest(body []byte, date, nonce string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/signed", bytes.NewReader(body))
	bodyHash := security.ComputeBodyHash(body)
	sig := security.ComputeSignature(testSignatureSecret, "s1", http.MethodPost, "/signed", "", bodyHash, date, nonce)
	req.Header.Set(security.HeaderDate, date)
	req.Header.Set(security.HeaderNonce, nonce)
	req.Header.Set(security.HeaderSignature, sig)
	return req
}

func TestSignatureValidRequestPasses(t *testing.T) {
	router, _ := newSignedRouter(t)

	date := time.Now().UTC().Format(time.RFC3339)
	req := signedRequest([]byte(`{"a":1}`), date, "nonce-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSignatureMissingHeadersRejected(t *testing.T) {
	router, _ := newSignedRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/signed", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignatureReplayedNonceRejected(t *testing.T) {
	router, _ := newSignedRouter(t)

	date := time.Now().UTC().Format(time.RFC3339)
	body := []byte(`{"a":1}`)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, signedRequest(body, date, "nonce-replay"))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, signedRequest(body, date, "nonce-replay"))
	require.Equal(t, http.StatusUnauthorized, second.Code)
}

func TestSignatureStaleDateRejected(t *testing.T) {
	router, _ := newSignedRouter(t)

	date := time.Now().UTC().Add(-10 * time.Minute).Format(time.RFC3339)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, signedRequest([]byte(`{}`), date, "nonce-stale"))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignatureTamperedBodyRejected(t *testing.T) {
	router, _ := newSignedRouter(t)

	date := time.Now().UTC().Format(time.RFC3339)
	req := signedRequest([]byte(`{"a":1}`), date, "nonce-tamper")
	req.Body = newReadCloser([]byte(`{"a":2}`))
	req.ContentLength = int64(len(`{"a":2}`))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
