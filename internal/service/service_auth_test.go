package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/models"
)

const (
	testKeyID    = "test-kid"
	testClientID = "app-client"
)

// jwksFixture serves a JWKS holding a single RSA key and counts fetches.
type jwksFixture struct {
	key     *rsa.PrivateKey
	server  *httptest.Server
	fetches atomic.Int32
	issuer  string
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	f := &jwksFixture{key: key}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.fetches.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = jsonEncode(w, models.JWKS{Keys: []models.JWK{{
			KeyID:     testKeyID,
			KeyType:   "RSA",
			Algorithm: "RS256",
			Use:       "sig",
			N:         base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:         base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	t.Cleanup(f.server.Close)

	f.issuer = f.server.URL + "/us-east-1_test"
	return f
}

func (f *jwksFixture) service(checkExpiration bool) *authService {
	return newAuthService(f.issuer, f.server.URL+"/jwks.json", testClientID, checkExpiration, nil, logger.Nop())
}

func (f *jwksFixture) sign(t *testing.T, claims models.CognitoClaims, kid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	signed, err := token.SignedString(f.key)
	require.NoError(t, err)
	return signed
}

func (f *jwksFixture) idClaims(expiresIn time.Duration) models.CognitoClaims {
	now := time.Now()
	return models.CognitoClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    f.issuer,
			Subject:   "user-sub",
			Audience:  jwt.ClaimStrings{testClientID},
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		TokenUse:        models.TokenUseID,
		CognitoUsername: "alice",
	}
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_ValidIDToken(t *testing.T) {
	f := newJWKSFixture(t)
	svc := f.service(true)

	id, err := svc.ParseToken(context.Background(), f.sign(t, f.idClaims(time.Hour), testKeyID))

	require.NoError(t, err)
	assert.Equal(t, "user-sub", id.Subject)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, models.TokenUseID, id.TokenUse)
}

func TestAuthService_ParseToken_ValidAccessToken(t *testing.T) {
	f := newJWKSFixture(t)
	claims := f.idClaims(time.Hour)
	claims.Audience = nil
	claims.TokenUse = models.TokenUseAccess
	claims.ClientID = testClientID
	claims.Username = "bob"

	id, err := f.service(true).ParseToken(context.Background(), f.sign(t, claims, testKeyID))

	require.NoError(t, err)
	assert.Equal(t, "bob", id.Username)
}

func TestAuthService_ParseToken_CachesSigningKeys(t *testing.T) {
	f := newJWKSFixture(t)
	svc := f.service(true)
	token := f.sign(t, f.idClaims(time.Hour), testKeyID)

	for range 3 {
		_, err := svc.ParseToken(context.Background(), token)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), f.fetches.Load())
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	f := newJWKSFixture(t)
	token := f.sign(t, f.idClaims(-time.Hour), testKeyID)

	_, err := f.service(true).ParseToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenIsExpired)

	// expiry not enforced
	id, err := f.service(false).ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-sub", id.Subject)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	f := newJWKSFixture(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	wrongIssuer := f.idClaims(time.Hour)
	wrongIssuer.Issuer = "https://evil.example.com"

	wrongAudience := f.idClaims(time.Hour)
	wrongAudience.Audience = jwt.ClaimStrings{"other-client"}

	wrongClientID := f.idClaims(time.Hour)
	wrongClientID.TokenUse = models.TokenUseAccess
	wrongClientID.ClientID = "other-client"

	refreshUse := f.idClaims(time.Hour)
	refreshUse.TokenUse = "refresh"

	hsToken := jwt.NewWithClaims(jwt.SigningMethodHS256, f.idClaims(time.Hour))
	hsToken.Header["kid"] = testKeyID
	hsSigned, err := hsToken.SignedString([]byte("secret"))
	require.NoError(t, err)

	foreign := jwt.NewWithClaims(jwt.SigningMethodRS256, f.idClaims(time.Hour))
	foreign.Header["kid"] = testKeyID
	foreignSigned, err := foreign.SignedString(otherKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "wrong issuer", token: f.sign(t, wrongIssuer, testKeyID)},
		{name: "wrong audience", token: f.sign(t, wrongAudience, testKeyID)},
		{name: "wrong client id", token: f.sign(t, wrongClientID, testKeyID)},
		{name: "unsupported token use", token: f.sign(t, refreshUse, testKeyID)},
		{name: "unknown kid", token: f.sign(t, f.idClaims(time.Hour), "rotated-away")},
		{name: "hmac algorithm", token: hsSigned},
		{name: "signed by another key", token: foreignSigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, check := range []bool{true, false} {
				_, err := f.service(check).ParseToken(context.Background(), tt.token)
				assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
			}
		})
	}
}

func TestAuthService_ParseToken_JWKSUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	f := newJWKSFixture(t)
	svc := newAuthService(f.issuer, srv.URL, testClientID, true, nil, logger.Nop())

	_, err := svc.ParseToken(context.Background(), f.sign(t, f.idClaims(time.Hour), testKeyID))

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	assert.ErrorIs(t, err, ErrFetchingJWKS)
}

func TestNewAuthService_NotConfigured(t *testing.T) {
	svc := NewAuthService(config.Settings{CognitoRegion: "us-east-1"}, nil, logger.Nop())

	_, err := svc.ParseToken(context.Background(), "anything")

	assert.ErrorIs(t, err, ErrAuthNotConfigured)
}

func TestNewAuthService_CognitoURLs(t *testing.T) {
	disabled := false
	svc := NewAuthService(config.Settings{
		CognitoRegion:               "eu-west-1",
		CognitoUserPoolID:           "eu-west-1_AbC",
		CognitoAppClientID:          "client",
		CognitoCheckTokenExpiration: &disabled,
	}, nil, logger.Nop()).(*authService)

	assert.Equal(t, "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_AbC", svc.issuer)
	assert.Equal(t, "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_AbC/.well-known/jwks.json", svc.jwksURL)
	assert.Equal(t, "client", svc.clientID)
	assert.False(t, svc.checkExpiration)
}

func jsonEncode(w http.ResponseWriter, v any) error {
	return json.NewEncoder(w).Encode(v)
}
