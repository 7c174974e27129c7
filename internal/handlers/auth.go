package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kellum/api/internal/middleware"
	"kellum/api/internal/service"
)

type credentialsRequest struct {
	Username       string `json:"username" binding:"required"`
	CredentialHash string `json:"credentialHash" binding:"required"`
}

// statusForAuthError maps the auth error taxonomy onto HTTP status
// codes: registration faults are 412, a missing credential is 403,
// everything else about a bad credential or token is 401.
func statusForAuthError(err error) int {
	switch {
	case errors.Is(err, service.ErrFailedToRegister):
		return http.StatusPreconditionFailed
	case errors.Is(err, service.ErrGenerallyForbidden):
		return http.StatusForbidden
	default:
		return http.StatusUnauthorized
	}
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.CredentialHash)
	if err != nil {
		c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h HandlerSet) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.CredentialHash)
	if err != nil {
		c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h HandlerSet) Logout(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrGenerallyForbidden.Error()})
		return
	}

	if err := h.auth.Logout(c.Request.Context(), user.SessionID); err != nil {
		c.JSON(statusForAuthError(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": service.ErrGenerallyForbidden.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
