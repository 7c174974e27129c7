package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"kellum/api/internal/models"
	"kellum/api/internal/service"
)

type fakeValidator struct {
	sessions map[string]models.AuthenticatedUser
	err      error
}

func (f fakeValidator) Validate(ctx context.Context, sessionID string) (models.AuthenticatedUser, error) {
	if f.err != nil {
		return models.AuthenticatedUser{}, f.err
	}
	user, ok := f.sessions[sessionID]
	if !ok {
		return models.AuthenticatedUser{}, service.ErrInvalidSessionToken
	}
	return user, nil
}

func newGatedRouter(validator SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/protected", Auth(validator), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return router
}

func TestAuthMissingTokenIsForbidden(t *testing.T) {
	router := newGatedRouter(fakeValidator{})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), service.ErrGenerallyForbidden.Error())
}

func TestAuthUnknownTokenIsUnauthorized(t *testing.T) {
	router := newGatedRouter(fakeValidator{sessions: map[string]models.AuthenticatedUser{}})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(SessionTokenHeader, "not-a-session")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), service.ErrInvalidSessionToken.Error())
}

func TestAuthValidTokenAttachesUser(t *testing.T) {
	validator := fakeValidator{sessions: map[string]models.AuthenticatedUser{
		"s1": {Username: "alice", SessionID: "s1"},
	}}
	router := newGatedRouter(validator)

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(SessionTokenHeader, "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "alice")
	require.Contains(t, rec.Body.String(), "s1")
}

func TestAuthStoreFaultIsNotReportedAsInvalidToken(t *testing.T) {
	router := newGatedRouter(fakeValidator{err: service.ErrFailedToRegister})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set(SessionTokenHeader, "s1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusPreconditionFailed, rec.Code)
}
