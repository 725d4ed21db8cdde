package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptrack-core/internal/config"
)

const testIssuer = "https://auth.example.com"

// newAuthFixture serves a JWKS with one RSA key and returns middleware
// trusting it, plus a signer for minting tokens.
func newAuthFixture(t *testing.T) (*AuthMiddleware, func(claims jwt.MapClaims) string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwks := fmt.Sprintf(`{"keys":[{"kty":"RSA","kid":"test-key","use":"sig","n":"%s","e":"%s"}]}`,
		base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
		base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, jwks)
	}))
	t.Cleanup(server.Close)

	am, err := NewAuthMiddleware(&config.AuthConfig{JWKSURL: server.URL, Issuer: testIssuer})
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
		token.Header["kid"] = "test-key"
		signed, err := token.SignedString(key)
		require.NoError(t, err)
		return signed
	}

	return am, sign
}

func authRouter(am *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		authUser, ok := GetAuthUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, authUser)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	am, sign := newAuthFixture(t)
	router := authRouter(am)

	do := func(authorization string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token", func(t *testing.T) {
		token := sign(jwt.MapClaims{
			"iss":      testIssuer,
			"sub":      "ext_123",
			"username": "dev",
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		w := do("Bearer " + token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "ext_123")
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("not bearer", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Basic abc").Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := sign(jwt.MapClaims{
			"iss": "https://evil.example.com",
			"sub": "ext_123",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := sign(jwt.MapClaims{
			"iss": testIssuer,
			"sub": "ext_123",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("no subject", func(t *testing.T) {
		token := sign(jwt.MapClaims{
			"iss": testIssuer,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}
