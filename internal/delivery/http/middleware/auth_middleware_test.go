package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nearbite/config"
	"nearbite/internal/domain/constants"
	mockSvc "nearbite/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func validToken(userID uuid.UUID, roles ...any) *jwt.Token {
	return &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":   userID.String(),
			"roles": roles,
		},
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("valid-token", "test-secret").Return(validToken(userID, constants.RoleOwner), nil)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, _ := newAuthTestContext(t, "Bearer valid-token")

	var gotUserID uuid.UUID
	var gotOK bool
	next := func(c echo.Context) error {
		gotUserID, gotOK = GetUserID(c)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	cfg := &config.Config{}
	tokenSvc := mockSvc.NewMockTokenService(t)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("next handler should not be called")

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	cfg := &config.Config{}
	tokenSvc := mockSvc.NewMockTokenService(t)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("expired-token", "test-secret").Return(nil, errors.New("token is expired"))

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "Bearer expired-token")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	t.Run("user with role passes", func(t *testing.T) {
		userID := uuid.New()
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("owner-token", "test-secret").Return(validToken(userID, constants.RoleOwner), nil)

		m := NewAuthMiddleware(tokenSvc, cfg)
		c, rec := newAuthTestContext(t, "Bearer owner-token")

		handler := m.Authenticate(func(c echo.Context) error {
			return m.RequireRole(constants.RoleOwner)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user without role is forbidden", func(t *testing.T) {
		userID := uuid.New()
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("customer-token", "test-secret").Return(validToken(userID), nil)

		m := NewAuthMiddleware(tokenSvc, cfg)
		c, rec := newAuthTestContext(t, "Bearer customer-token")

		handler := m.Authenticate(func(c echo.Context) error {
			return m.RequireRole(constants.RoleOwner)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
