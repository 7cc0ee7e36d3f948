package middleware

import (
	"fmt"
	"net/http"
	"time"

	"elocalpass/internal/common"
	"elocalpass/internal/services"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const contextKeyToken = "user"

// JWTConfig selects how session tokens are verified. Tokens signed with the
// shared HMAC secret are always accepted, since /api/auth/login issues them;
// when JWKSURL is set, asymmetric tokens are checked against the published keys.
type JWTConfig struct {
	Secret  string
	JWKSURL string
	Logger  *zap.Logger
}

var asymmetricMethods = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512", "ES256", "ES384", "ES512", "EdDSA"}

// JWTMiddleware validates the bearer token and stores the caller identity on the request context.
func JWTMiddleware(cfg JWTConfig) (echo.MiddlewareFunc, error) {
	secret := []byte(cfg.Secret)
	methods := []string{jwt.SigningMethodHS256.Alg()}

	var jwks *keyfunc.JWKS
	if cfg.JWKSURL != "" {
		var err error
		jwks, err = keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				cfg.Logger.Warn("jwks refresh failed", zap.Error(err))
			},
		})
		if err != nil {
			return nil, fmt.Errorf("load jwks: %w", err)
		}
		methods = append(methods, asymmetricMethods...)
	}

	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
			return secret, nil
		}
		if jwks == nil {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return jwks.Keyfunc(token)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(methods),
		jwt.WithIssuer(services.TokenIssuer),
		jwt.WithAudience(services.TokenAudience),
		jwt.WithExpirationRequired(),
	)

	verify := echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKeyToken,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return parser.ParseWithClaims(auth, new(services.SessionClaims), keyFunc)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(identity(next))
	}, nil
}

// identity copies the verified claims into the request context.
func identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get(contextKeyToken).(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		claims, ok := token.Claims.(*services.SessionClaims)
		if !ok || !claims.Role.Valid() {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid claims")
		}
		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid user_id format")
		}

		ctx := common.WithIdentity(c.Request().Context(), userID, claims.Role, claims.Email)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
