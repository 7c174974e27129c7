package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"kellum/api/internal/clock"
	"kellum/api/internal/ids"
	"kellum/api/internal/models"
	"kellum/api/internal/repository"
	"kellum/api/internal/security"
)

// UserStore is the identity persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByCredentials(ctx context.Context, username, credentialHash string) (models.User, error)
}

// SessionStore is the session persistence the auth service needs. The
// live-lookup must evaluate the expiry predicate atomically with the
// fetch; callers never compare timestamps themselves.
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	GetLiveByID(ctx context.Context, id string) (models.Session, models.User, error)
	DeleteByID(ctx context.Context, id string) error
}

// AuthService verifies credentials, issues sessions and validates
// session tokens. It holds no state of its own and is safe for
// concurrent use; the stores provide all atomicity.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	clock    clock.Clock
	log      zerolog.Logger
}

func NewAuthService(users UserStore, sessions SessionStore, clk clock.Clock, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		clock:    clk,
		log:      log,
	}
}

// Verify checks a username/credential-hash pair byte-exact against the
// identity store and returns the owning user id. A wrong username and a
// wrong hash produce the same error.
func (s *AuthService) Verify(ctx context.Context, username, credentialHash string) (string, error) {
	user, err := s.users.FindByCredentials(ctx, username, credentialHash)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn().Err(err).Msg("credential lookup failed")
		}
		return "", ErrFailedToAuthenticate
	}
	return user.ID, nil
}

// Register creates a new identity and logs it in immediately. Duplicate
// usernames and storage faults are indistinguishable to the caller.
func (s *AuthService) Register(ctx context.Context, username, credentialHash string) (models.AuthenticatedUser, error) {
	user := models.User{
		ID:             ids.New(),
		Username:       username,
		CredentialHash: credentialHash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !errors.Is(err, repository.ErrUsernameTaken) {
			s.log.Warn().Err(err).Msg("create user failed")
		}
		return models.AuthenticatedUser{}, ErrFailedToRegister
	}

	return s.Issue(ctx, user.ID, user.Username)
}

// Login verifies credentials and issues a fresh session. Concurrent
// logins for one identity each get their own independent session.
func (s *AuthService) Login(ctx context.Context, username, credentialHash string) (models.AuthenticatedUser, error) {
	user, err := s.users.FindByCredentials(ctx, username, credentialHash)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.log.Warn().Err(err).Msg("credential lookup failed")
		}
		return models.AuthenticatedUser{}, ErrFailedToAuthenticate
	}
	return s.Issue(ctx, user.ID, user.Username)
}

// Issue mints an opaque session token expiring a fixed duration from
// now and persists it before any success view is returned.
func (s *AuthService) Issue(ctx context.Context, userID, username string) (models.AuthenticatedUser, error) {
	now := s.clock.Now()
	session := models.Session{
		ID:        security.NewSessionToken(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: s.clock.ExpiryFrom(now),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.log.Warn().Err(err).Msg("create session failed")
		return models.AuthenticatedUser{}, ErrFailedToAuthenticate
	}

	return models.AuthenticatedUser{
		Username:  username,
		SessionID: session.ID,
	}, nil
}

// Validate resolves a session token to its owner. Absent and expired
// sessions are the same failure; the expiry comparison happens in the
// store, in the same statement as the lookup. Validate never extends a
// session's lifetime.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (models.AuthenticatedUser, error) {
	session, user, err := s.sessions.GetLiveByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return models.AuthenticatedUser{}, ErrInvalidSessionToken
		}
		s.log.Warn().Err(err).Msg("session lookup failed")
		return models.AuthenticatedUser{}, ErrFailedToRegister
	}

	return models.AuthenticatedUser{
		Username:  user.Username,
		SessionID: session.ID,
	}, nil
}

// Logout revokes a session. Revoking an unknown or already-expired
// token fails the same way validation would.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.DeleteByID(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrInvalidSessionToken
		}
		s.log.Warn().Err(err).Msg("delete session failed")
		return ErrFailedToRegister
	}
	return nil
}
