package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid normalises every token validation
	// failure (bad signature, malformed token, expired, wrong issuer)
	// so that callers never inspect low-level JWT errors.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrTokenCreationFailed wraps failures of JWT generation.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUnauthorized is returned by principal resolution when the token
	// is invalid, carries the wrong role, or references an account that
	// no longer exists.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAdminSignupDisabled is returned by the admin bootstrap
	// operation when the allow-admin-signup switch is off.
	ErrAdminSignupDisabled = errors.New("admin signup is disabled")
)
