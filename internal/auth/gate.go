// Package auth resolves bearer tokens to principal identities and issues
// login tokens. The gate is constructed from configuration and injected;
// there is no package-level secret.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"bloglist/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = time.Hour * 24 * 7

// Gate validates bearer tokens and derives the authenticated principal.
type Gate struct {
	secret []byte
	issuer string
}

// NewGate creates a Gate signing and verifying with the given HMAC secret.
func NewGate(secret string) *Gate {
	return &Gate{
		secret: []byte(secret),
		issuer: "bloglist-api",
	}
}

// ResolvePrincipal verifies a bearer token and returns the user ID carried
// in its subject claim. Every failure mode (absent token, bad signature,
// expired token, malformed subject) yields the same Unauthorized error.
// The gate does not check that the user still exists; callers needing the
// user record look it up themselves.
func (g *Gate) ResolvePrincipal(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}

	// Subject claim per RFC 7519, carried as a decimal string.
	subClaim, ok := claims["sub"]
	if !ok {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}
	subStr, ok := subClaim.(string)
	if !ok {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}
	userID, err := strconv.ParseUint(subStr, 10, 32)
	if err != nil || userID == 0 {
		return 0, models.NewUnauthorizedError("token missing or invalid")
	}

	return uint(userID), nil
}

// IssueToken creates a signed JWT for the given user.
func (g *Gate) IssueToken(userID uint, username string) (string, error) {
	if len(g.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      g.issuer,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      g.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (g *Gate) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
