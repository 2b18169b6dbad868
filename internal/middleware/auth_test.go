package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/EventPass/internal/domain"
	"github.com/stpnv0/EventPass/internal/middleware/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testSecret = "test-secret-at-least-16"

func signToken(t *testing.T, method jwt.SigningMethod, key any, c claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, c).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(uid string) claims {
	return claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "eventpass",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func setupAuthRouter(t *testing.T, optional bool) (*mocks.MockSessionResolver, http.Handler) {
	t.Helper()
	resolver := mocks.NewMockSessionResolver(t)
	auth := NewAuthenticator(testSecret, "eventpass", resolver)

	mw := auth.VerifyJWT()
	if optional {
		mw = auth.OptionalJWT()
	}

	r := ginext.New("test")
	r.GET("/me", mw, func(c *ginext.Context) {
		s, ok := GetSession(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": s.UserID, "role": s.Role, "authenticated": ok})
	})
	return resolver, r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyJWT_Success(t *testing.T) {
	resolver, r := setupAuthRouter(t, false)

	resolver.EXPECT().ResolveSession(mock.Anything, "u1").
		Return(domain.Session{UserID: "u1", Role: domain.RolePaymentVerifier}, nil)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1"))
	w := doGet(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"paymentVerifier"`)
}

func TestVerifyJWT_SubjectFallback(t *testing.T) {
	resolver, r := setupAuthRouter(t, false)

	resolver.EXPECT().ResolveSession(mock.Anything, "u2").
		Return(domain.Session{UserID: "u2", Role: domain.RoleNone}, nil)

	c := validClaims("")
	c.Subject = "u2"
	w := doGet(r, "bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), c))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u2"`)
}

func TestVerifyJWT_Rejects(t *testing.T) {
	expired := validClaims("u1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims("u1")
	wrongIssuer.Issuer = "someone-else"

	noExpiry := validClaims("u1")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{"missing header", func(*testing.T) string { return "" }},
		{"not bearer", func(*testing.T) string { return "Basic dXNlcjpwYXNz" }},
		{"garbage", func(*testing.T) string { return "Bearer not-a-jwt" }},
		{"wrong secret", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("another-secret-value"), validClaims("u1"))
		}},
		{"wrong alg", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("u1"))
		}},
		{"expired", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)
		}},
		{"no expiry", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)
		}},
		{"wrong issuer", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIssuer)
		}},
		{"no uid", func(t *testing.T) string {
			return "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(""))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := setupAuthRouter(t, false)
			w := doGet(r, tt.header(t))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestVerifyJWT_UnknownUser(t *testing.T) {
	resolver, r := setupAuthRouter(t, false)

	resolver.EXPECT().ResolveSession(mock.Anything, "ghost").
		Return(domain.Session{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, domain.ErrUserNotFound))

	w := doGet(r, "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("ghost")))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyJWT_ResolverFailure(t *testing.T) {
	resolver, r := setupAuthRouter(t, false)

	resolver.EXPECT().ResolveSession(mock.Anything, "u1").
		Return(domain.Session{}, errors.New("db down"))

	w := doGet(r, "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("u1")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOptionalJWT(t *testing.T) {
	t.Run("anonymous passes", func(t *testing.T) {
		_, r := setupAuthRouter(t, true)
		w := doGet(r, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":false`)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		_, r := setupAuthRouter(t, true)
		w := doGet(r, "Bearer broken")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token resolves session", func(t *testing.T) {
		resolver, r := setupAuthRouter(t, true)
		resolver.EXPECT().ResolveSession(mock.Anything, "a1").
			Return(domain.Session{UserID: "a1", Role: domain.RoleAdmin}, nil)

		w := doGet(r, "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("a1")))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"authenticated":true`)
	})
}
