package service

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jellydator/ttlcache/v3"

	"github.com/MKhiriev/renglo-api/internal/config"
	"github.com/MKhiriev/renglo-api/internal/logger"
	"github.com/MKhiriev/renglo-api/internal/utils"
	"github.com/MKhiriev/renglo-api/models"
)

const (
	jwkCacheKeyPrefix = "cognito:jwk:"

	jwkTTL           = 6 * time.Hour
	jwkFailureTTL    = 30 * time.Second
	jwksFetchTimeout = 5 * time.Second
)

// jwkEntry is the cache value of a signing key lookup. Failed lookups are
// cached briefly as well so that unknown kids do not hammer Cognito.
type jwkEntry struct {
	key *rsa.PublicKey
	err error
}

// authService verifies RS256 tokens issued by a Cognito user pool against
// the pool's published JWKS.
type authService struct {
	// issuer is https://cognito-idp.<region>.amazonaws.com/<pool>; empty
	// when Cognito is not configured.
	issuer  string
	jwksURL string

	// clientID, when set, must match "aud" of ID tokens or "client_id" of
	// access tokens.
	clientID        string
	checkExpiration bool

	httpClient *utils.HTTPClient
	cache      *ttlcache.Cache[string, any]
	loader     ttlcache.Loader[string, any]

	logger *logger.Logger
}

// NewAuthService returns an [AuthService] for the user pool described by
// settings. Signing keys are kept in cache; a nil cache gets a private one.
//
// Without COGNITO_REGION and COGNITO_USERPOOL_ID every call fails with
// [ErrAuthNotConfigured].
func NewAuthService(settings config.Settings, cache *ttlcache.Cache[string, any], logger *logger.Logger) AuthService {
	var issuer, jwksURL string
	if settings.CognitoRegion != "" && settings.CognitoUserPoolID != "" {
		issuer = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", settings.CognitoRegion, settings.CognitoUserPoolID)
		jwksURL = issuer + "/.well-known/jwks.json"
	}

	return newAuthService(issuer, jwksURL, settings.CognitoAppClientID, settings.CheckTokenExpiration(), cache, logger)
}

func newAuthService(issuer, jwksURL, clientID string, checkExpiration bool, cache *ttlcache.Cache[string, any], logger *logger.Logger) *authService {
	if cache == nil {
		cache = ttlcache.New[string, any]()
	}

	a := &authService{
		issuer:          issuer,
		jwksURL:         jwksURL,
		clientID:        clientID,
		checkExpiration: checkExpiration,
		httpClient:      utils.NewHTTPClient(jwksFetchTimeout),
		cache:           cache,
		logger:          logger,
	}
	a.loader = ttlcache.NewSuppressedLoader[string, any](ttlcache.LoaderFunc[string, any](a.loadSigningKey), nil)

	if issuer == "" {
		logger.Warn().Msg("cognito is not configured, protected routes will answer 401")
	}

	return a
}

// ParseToken verifies the signature, algorithm, issuer and audience of
// tokenString. Expiry is only enforced when COGNITO_CHECK_TOKEN_EXPIRATION
// is not false.
//
// Returns:
//   - [ErrAuthNotConfigured] when no user pool is configured
//   - [ErrTokenIsExpired] for an expired but otherwise valid token
//   - [ErrTokenIsExpiredOrInvalid] for every other failure
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if a.issuer == "" {
		return models.Identity{}, ErrAuthNotConfigured
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})}
	if a.checkExpiration {
		opts = append(opts, jwt.WithExpirationRequired(), jwt.WithIssuer(a.issuer))
	} else {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	claims := &models.CognitoClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, a.signingKey, opts...); err != nil {
		log.Debug().Err(err).Msg("bearer token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, ErrTokenIsExpired
		}
		return models.Identity{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	// repeated here because WithoutClaimsValidation skips the issuer check
	if claims.Issuer != a.issuer {
		log.Debug().Str("iss", claims.Issuer).Msg("bearer token from foreign issuer")
		return models.Identity{}, fmt.Errorf("%w: unexpected issuer", ErrTokenIsExpiredOrInvalid)
	}

	if err := a.checkAudience(claims); err != nil {
		log.Debug().Err(err).Msg("bearer token for another client")
		return models.Identity{}, err
	}

	return claims.Identity(), nil
}

func (a *authService) checkAudience(claims *models.CognitoClaims) error {
	switch claims.TokenUse {
	case models.TokenUseID:
		if a.clientID != "" && !slices.Contains(claims.Audience, a.clientID) {
			return fmt.Errorf("%w: audience mismatch", ErrTokenIsExpiredOrInvalid)
		}
	case models.TokenUseAccess:
		if a.clientID != "" && claims.ClientID != a.clientID {
			return fmt.Errorf("%w: client_id mismatch", ErrTokenIsExpiredOrInvalid)
		}
	default:
		return fmt.Errorf("%w: token_use %q", ErrTokenIsExpiredOrInvalid, claims.TokenUse)
	}

	return nil
}

// signingKey is the jwt.Keyfunc resolving the token's kid through the cache.
func (a *authService) signingKey(token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownSigningKey)
	}

	item := a.cache.Get(jwkCacheKeyPrefix+kid,
		ttlcache.WithLoader[string, any](a.loader),
		ttlcache.WithDisableTouchOnHit[string, any](),
	)
	if item == nil {
		return nil, ErrUnknownSigningKey
	}

	entry, ok := item.Value().(jwkEntry)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected cache value %T", ErrUnknownSigningKey, item.Value())
	}
	if entry.err != nil {
		return nil, entry.err
	}

	return entry.key, nil
}

// loadSigningKey downloads the JWKS, caches every RSA key it contains and
// returns the item for cacheKey.
func (a *authService) loadSigningKey(c *ttlcache.Cache[string, any], cacheKey string) *ttlcache.Item[string, any] {
	kid := strings.TrimPrefix(cacheKey, jwkCacheKeyPrefix)

	var jwks models.JWKS
	resp, err := a.httpClient.R().SetResult(&jwks).Get(a.jwksURL)
	switch {
	case err != nil:
		a.logger.Err(err).Str("url", a.jwksURL).Msg("error fetching jwks")
		return c.Set(cacheKey, jwkEntry{err: fmt.Errorf("%w: %w", ErrFetchingJWKS, err)}, jwkFailureTTL)
	case resp.IsError():
		a.logger.Error().Int("status", resp.StatusCode()).Str("url", a.jwksURL).Msg("jwks endpoint answered with error")
		return c.Set(cacheKey, jwkEntry{err: fmt.Errorf("%w: status %d", ErrFetchingJWKS, resp.StatusCode())}, jwkFailureTTL)
	}

	var found *ttlcache.Item[string, any]
	for _, jwk := range jwks.Keys {
		pub, err := utils.RSAPublicKeyFromJWK(jwk)
		if err != nil {
			a.logger.Warn().Err(err).Str("kid", jwk.KeyID).Msg("skipping jwk")
			continue
		}

		item := c.Set(jwkCacheKeyPrefix+jwk.KeyID, jwkEntry{key: pub}, jwkTTL)
		if jwk.KeyID == kid {
			found = item
		}
	}
	a.logger.Debug().Int("keys", len(jwks.Keys)).Msg("jwks refreshed")

	if found == nil {
		return c.Set(cacheKey, jwkEntry{err: fmt.Errorf("%w: kid %q", ErrUnknownSigningKey, kid)}, jwkFailureTTL)
	}

	return found
}
