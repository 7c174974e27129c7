package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignatureRoundTrip(t *testing.T) {
	body := []byte(`{"title":"Doom"}`)
	bodyHash := ComputeBodyHash(body)
	sig := ComputeSignature("secret", "s1", "POST", "/api/v1/games", "", bodyHash, "2025-06-01T12:00:00Z", "n1")

	require.True(t, ValidateSignature("secret", "s1", sig, "POST", "/api/v1/games", "", body, "2025-06-01T12:00:00Z", "n1"))
}

func TestSignatureRejectsTampering(t *testing.T) {
	body := []byte(`{"title":"Doom"}`)
	bodyHash := ComputeBodyHash(body)
	sig := ComputeSignature("secret", "s1", "POST", "/api/v1/games", "", bodyHash, "2025-06-01T12:00:00Z", "n1")

	require.False(t, ValidateSignature("secret", "s1", sig, "POST", "/api/v1/games", "", []byte(`{"title":"Quake"}`), "2025-06-01T12:00:00Z", "n1"))
	require.False(t, ValidateSignature("secret", "s2", sig, "POST", "/api/v1/games", "", body, "2025-06-01T12:00:00Z", "n1"))
	require.False(t, ValidateSignature("other", "s1", sig, "POST", "/api/v1/games", "", body, "2025-06-01T12:00:00Z", "n1"))
	require.False(t, ValidateSignature("secret", "s1", sig, "PUT", "/api/v1/games", "", body, "2025-06-01T12:00:00Z", "n1"))
}

func TestNewSessionTokenIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token := NewSessionToken()
		require.NotEmpty(t, token)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}
}
