package middleware

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"deptrack-core/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthUserKey is the gin context key holding the authenticated principal
const AuthUserKey = "auth_user"

// AuthUser is the identity asserted by a verified token
type AuthUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSet represents a set of JSON Web Keys
type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// AuthMiddleware verifies RS256 bearer tokens against the identity
// provider's JWKS endpoint
type AuthMiddleware struct {
	jwksURL    string
	issuer     string
	publicKeys map[string]*rsa.PublicKey
}

// NewAuthMiddleware creates an authentication middleware. It fetches the
// JWKS once at startup; key rotation requires a restart.
func NewAuthMiddleware(cfg *config.AuthConfig) (*AuthMiddleware, error) {
	am := &AuthMiddleware{
		jwksURL:    cfg.JWKSURL,
		issuer:     cfg.Issuer,
		publicKeys: make(map[string]*rsa.PublicKey),
	}

	if err := am.loadPublicKeys(); err != nil {
		return nil, fmt.Errorf("failed to load public keys: %w", err)
	}

	return am, nil
}

// RequireAuth is a Gin middleware that requires a valid bearer token
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header is required",
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Authorization header must start with 'Bearer '",
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		authUser, err := am.verifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(AuthUserKey, authUser)
		c.Next()
	}
}

// GetAuthUser returns the authenticated principal stored by RequireAuth
func GetAuthUser(c *gin.Context) (*AuthUser, bool) {
	value, exists := c.Get(AuthUserKey)
	if !exists {
		return nil, false
	}
	authUser, ok := value.(*AuthUser)
	return authUser, ok
}

func (am *AuthMiddleware) verifyToken(token string) (*AuthUser, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing key ID in token header")
		}

		publicKey, exists := am.publicKeys[kid]
		if !exists {
			return nil, fmt.Errorf("unknown key ID: %s", kid)
		}

		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !parsedToken.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	issuer, ok := claims["iss"].(string)
	if !ok || issuer != am.issuer {
		return nil, fmt.Errorf("invalid issuer")
	}

	authUser := &AuthUser{}
	if sub, ok := claims["sub"].(string); ok {
		authUser.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		authUser.Email = email
	}
	if username, ok := claims["username"].(string); ok {
		authUser.Username = username
	}

	if authUser.ID == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return authUser, nil
}

// loadPublicKeys loads public keys from the JWKS endpoint
func (am *AuthMiddleware) loadPublicKeys() error {
	resp, err := http.Get(am.jwksURL)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	var jwks JWKSet
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	for _, jwk := range jwks.Keys {
		if jwk.Kty != "RSA" {
			continue
		}

		nBytes, err := base64.RawURLEncoding.DecodeString(jwk.N)
		if err != nil {
			continue
		}

		eBytes, err := base64.RawURLEncoding.DecodeString(jwk.E)
		if err != nil {
			continue
		}

		publicKey := &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: int(new(big.Int).SetBytes(eBytes).Int64()),
		}

		am.publicKeys[jwk.Kid] = publicKey
	}

	if len(am.publicKeys) == 0 {
		return fmt.Errorf("JWKS at %s contained no usable RSA keys", am.jwksURL)
	}

	return nil
}
