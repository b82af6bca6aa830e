package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Cognito token_use claim values.
const (
	TokenUseID     = "id"
	TokenUseAccess = "access"
)

// CognitoClaims is the claim set issued by an AWS Cognito user pool.
//
// ID tokens carry the app client in "aud" and the user name in
// "cognito:username"; access tokens carry it in "client_id" and "username".
type CognitoClaims struct {
	jwt.RegisteredClaims

	TokenUse        string   `json:"token_use"`
	Username        string   `json:"username,omitempty"`
	CognitoUsername string   `json:"cognito:username,omitempty"`
	ClientID        string   `json:"client_id,omitempty"`
	Email           string   `json:"email,omitempty"`
	Groups          []string `json:"cognito:groups,omitempty"`
}

// Identity returns the authenticated caller described by the claims.
func (c *CognitoClaims) Identity() Identity {
	username := c.Username
	if username == "" {
		username = c.CognitoUsername
	}

	return Identity{
		Subject:  c.Subject,
		Username: username,
		Email:    c.Email,
		Groups:   c.Groups,
		TokenUse: c.TokenUse,
	}
}

// Identity is the caller stored in the request context once a bearer token
// has been verified.
type Identity struct {
	Subject  string   `json:"sub"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Groups   []string `json:"groups,omitempty"`
	TokenUse string   `json:"token_use"`
}

// JWKS is a JSON Web Key Set as published by Cognito at
// /.well-known/jwks.json.
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK is a single RSA public key of a [JWKS].
type JWK struct {
	KeyID     string `json:"kid"`
	KeyType   string `json:"kty"`
	Algorithm string `json:"alg"`
	Use       string `json:"use"`
	// N is the base64url-encoded modulus.
	N string `json:"n"`
	// E is the base64url-encoded public exponent.
	E string `json:"e"`
}
