package service

import "errors"

var (
	ErrInvalidStateRequest = errors.New("invalid state request")

	ErrAuthNotConfigured       = errors.New("cognito authentication is not configured")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrUnknownSigningKey       = errors.New("token signing key is unknown")
	ErrFetchingJWKS            = errors.New("error fetching cognito jwks")
)
