package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kellum/api/internal/config"
	"kellum/api/internal/security"
	"kellum/api/internal/service"
)

func newReadCloser(b []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(b))
}

// Signature is a defense-in-depth integrity check on top of Auth: the
// client signs method, path, body hash, date and nonce with a shared
// secret, keyed to its session. Nonces are burned in redis so a
// captured request cannot be replayed. Every failure mode reads the
// same to the caller.
func Signature(cfg *config.AppConfig, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		date, nonce, signature, err := security.ExtractSignatureHeaders(c)
		if err != nil {
			rejectSuspicious(c)
			return
		}

		requestTime, err := time.Parse(time.RFC3339, date)
		if err != nil {
			rejectSuspicious(c)
			return
		}

		if time.Since(requestTime) > 5*time.Minute || time.Until(requestTime) > 2*time.Minute {
			rejectSuspicious(c)
			return
		}

		rawBody, err := c.GetRawData()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		c.Request.Body = newReadCloser(rawBody)

		user, ok := CurrentUser(c)
		if !ok {
			rejectSuspicious(c)
			return
		}

		path, query := security.CanonicalPath(c.Request)
		valid := security.ValidateSignature(
			cfg.Security.SignatureSecret,
			user.SessionID,
			signature,
			c.Request.Method,
			path,
			query,
			rawBody,
			date,
			nonce,
		)
		if !valid {
			rejectSuspicious(c)
			return
		}

		nonceKey := fmt.Sprintf("sig:%s:%s", user.SessionID, nonce)
		if ok := redisClient.SetNX(c, nonceKey, "1", 5*time.Minute); !ok.Val() {
			rejectSuspicious(c)
			return
		}

		c.Next()
	}
}

func rejectSuspicious(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrSuspiciousRequest.Error()})
}
