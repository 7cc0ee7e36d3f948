package middleware

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elocalpass/internal/common"
	"elocalpass/internal/models"
	"elocalpass/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func sessionClaims(sub string, role models.Role) services.SessionClaims {
	return services.SessionClaims{
		Email: "someone@elocalpass.com",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    services.TokenIssuer,
			Audience:  jwt.ClaimStrings{services.TokenAudience},
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func signClaims(t *testing.T, claims services.SessionClaims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func signToken(t *testing.T, sub string, role models.Role, secret string) string {
	t.Helper()
	return signClaims(t, sessionClaims(sub, role), secret)
}

func newProtectedServer(t *testing.T, roles ...models.Role) *echo.Echo {
	t.Helper()
	return newProtectedServerWith(t, JWTConfig{Secret: testSecret, Logger: zap.NewNop()}, roles...)
}

func newProtectedServerWith(t *testing.T, cfg JWTConfig, roles ...models.Role) *echo.Echo {
	t.Helper()
	auth, err := JWTMiddleware(cfg)
	require.NoError(t, err)

	e := echo.New()
	g := e.Group("/api/admin", auth, RequireRole(roles...))
	g.GET("/whoami", func(c echo.Context) error {
		userID, _ := common.GetUserIDFromContext(c.Request().Context())
		role, _ := common.GetRoleFromContext(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]string{"id": userID.String(), "role": string(role)})
	})
	return e
}

func doGet(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTMiddleware_AdmitsMatchingRole(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)
	id := uuid.New()

	rec := doGet(e, "/api/admin/whoami", signToken(t, id.String(), models.RoleAdmin, testSecret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), id.String())
	assert.Contains(t, rec.Body.String(), `"role":"ADMIN"`)
}

func TestJWTMiddleware_RejectsMissingAndForeignTokens(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signToken(t, uuid.NewString(), models.RoleAdmin, "other")).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signToken(t, "not-a-uuid", models.RoleAdmin, testSecret)).Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signToken(t, uuid.NewString(), models.Role("ROOT"), testSecret)).Code)
}

func TestJWTMiddleware_ChecksIssuerAndAudience(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)

	wrongIssuer := sessionClaims(uuid.NewString(), models.RoleAdmin)
	wrongIssuer.Issuer = "someone-else"
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signClaims(t, wrongIssuer, testSecret)).Code)

	wrongAudience := sessionClaims(uuid.NewString(), models.RoleAdmin)
	wrongAudience.Audience = jwt.ClaimStrings{"another-api"}
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signClaims(t, wrongAudience, testSecret)).Code)

	noExpiry := sessionClaims(uuid.NewString(), models.RoleAdmin)
	noExpiry.ExpiresAt = nil
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signClaims(t, noExpiry, testSecret)).Code)
}

func TestJWTMiddleware_AcceptsIssuedTokens(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)
	user := &models.User{ID: uuid.New(), Email: "admin@elocalpass.com", Role: models.RoleAdmin}

	issued, err := services.NewAuthService(nil, testSecret, time.Hour, zap.NewNop()).IssueToken(user)
	require.NoError(t, err)

	rec := doGet(e, "/api/admin/whoami", issued.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), user.ID.String())
}

func jwksServer(t *testing.T, kid string, key *rsa.PublicKey) *httptest.Server {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": kid,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestJWTMiddleware_JWKSModeAcceptsBothKeySources(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	srv := jwksServer(t, "idp-1", &key.PublicKey)

	e := newProtectedServerWith(t, JWTConfig{Secret: testSecret, JWKSURL: srv.URL, Logger: zap.NewNop()}, models.RoleAdmin)

	// Login tokens keep working next to the identity provider.
	assert.Equal(t, http.StatusOK, doGet(e, "/api/admin/whoami", signToken(t, uuid.NewString(), models.RoleAdmin, testSecret)).Code)

	external := jwt.NewWithClaims(jwt.SigningMethodRS256, sessionClaims(uuid.NewString(), models.RoleAdmin))
	external.Header["kid"] = "idp-1"
	signed, err := external.SignedString(key)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(e, "/api/admin/whoami", signed).Code)

	other, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	forged := jwt.NewWithClaims(jwt.SigningMethodRS256, sessionClaims(uuid.NewString(), models.RoleAdmin))
	forged.Header["kid"] = "idp-1"
	signed, err = forged.SignedString(other)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signed).Code)
}

func TestJWTMiddleware_RejectsAsymmetricTokensWithoutJWKS(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, sessionClaims(uuid.NewString(), models.RoleAdmin)).SignedString(key)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, doGet(e, "/api/admin/whoami", signed).Code)
}

func TestRequireRole_ForbidsOtherRoles(t *testing.T) {
	e := newProtectedServer(t, models.RoleAdmin)

	rec := doGet(e, "/api/admin/whoami", signToken(t, uuid.NewString(), models.RoleSeller, testSecret))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

func (m *MockRateLimiter) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newLimitedServer(limiter *MockRateLimiter) *echo.Echo {
	e := echo.New()
	e.GET("/api/customer/access", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(limiter, "customer-access", 2, time.Minute, zap.NewNop()))
	return e
}

func TestRateLimit(t *testing.T) {
	limiter := &MockRateLimiter{}
	e := newLimitedServer(limiter)

	limiter.On("IsRateLimited", mock.Anything, "customer-access:192.0.2.1", 2, time.Minute).Return(false, nil).Once()
	limiter.On("IsRateLimited", mock.Anything, "customer-access:192.0.2.1", 2, time.Minute).Return(true, nil).Once()

	assert.Equal(t, http.StatusOK, doGet(e, "/api/customer/access", "").Code)
	rec := doGet(e, "/api/customer/access", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	limiter.AssertExpectations(t)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &MockRateLimiter{}
	e := newLimitedServer(limiter)

	limiter.On("IsRateLimited", mock.Anything, mock.Anything, 2, time.Minute).Return(false, errors.New("redis: connection refused"))

	assert.Equal(t, http.StatusOK, doGet(e, "/api/customer/access", "").Code)
}

func TestRateLimit_DisabledWithoutLimiter(t *testing.T) {
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, RateLimit(nil, "x", 1, time.Minute, zap.NewNop()))

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doGet(e, "/x", "").Code)
	}
}
