package utils

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/MKhiriev/renglo-api/models"
)

var (
	// ErrInvalidAuthorizationHeader is returned for anything but
	// "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrUnsupportedJWK is returned for keys that are not RSA.
	ErrUnsupportedJWK = errors.New("unsupported jwk")
)

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}

// RSAPublicKeyFromJWK decodes the modulus and exponent of an RSA JWK.
func RSAPublicKeyFromJWK(key models.JWK) (*rsa.PublicKey, error) {
	if key.KeyType != "RSA" {
		return nil, fmt.Errorf("%w: kty %q", ErrUnsupportedJWK, key.KeyType)
	}

	n, err := base64.RawURLEncoding.DecodeString(key.N)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus: %w", ErrUnsupportedJWK, err)
	}
	e, err := base64.RawURLEncoding.DecodeString(key.E)
	if err != nil {
		return nil, fmt.Errorf("%w: exponent: %w", ErrUnsupportedJWK, err)
	}

	exponent := new(big.Int).SetBytes(e)
	if len(n) == 0 || !exponent.IsInt64() || exponent.Int64() < 3 || exponent.Int64() > 1<<31-1 {
		return nil, fmt.Errorf("%w: malformed rsa parameters", ErrUnsupportedJWK)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(exponent.Int64()),
	}, nil
}
