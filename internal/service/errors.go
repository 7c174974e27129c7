package service

import "errors"

// Auth failures carry short fixed messages on purpose: the caller must
// not learn which part of a credential or token was wrong.
var (
	ErrFailedToRegister     = errors.New("failed to register user")
	ErrFailedToAuthenticate = errors.New("failed to authenticate user")
	ErrInvalidSessionToken  = errors.New("invalid session token")
	ErrGenerallyForbidden   = errors.New("user is not allowed to do this")
	ErrSuspiciousRequest    = errors.New("request failed integrity check")
)
