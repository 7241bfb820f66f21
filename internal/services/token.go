package services

import (
	"fmt"
	"time"

	"gudang/internal/models"

	"github.com/dgrijalva/jwt-go"
)

// Token type markers embedded in the claims so a refresh token cannot be
// mistaken for an access token by downstream consumers.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the identity carried by every issued token.
type Claims struct {
	Email  string
	UserID uint
	Role   models.Role
}

// TokenManager mints and validates signed, time-bounded session tokens.
// Tokens are self-contained; no server-side revocation list exists.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a TokenManager signing with HS256.
func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// SetClock replaces the time source used for issuing and expiry checks.
func (m *TokenManager) SetClock(now func() time.Time) {
	m.now = now
}

// IssueAccessToken mints a short-lived access token for the claims.
func (m *TokenManager) IssueAccessToken(c Claims) (string, error) {
	return m.issue(c, tokenTypeAccess, m.accessTTL)
}

// IssueRefreshToken mints a longer-lived refresh token for the claims. The
// token is returned to the client at login; no redemption endpoint consumes
// it here.
func (m *TokenManager) IssueRefreshToken(c Claims) (string, error) {
	return m.issue(c, tokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) issue(c Claims, tokenType string, ttl time.Duration) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        c.Email,
		"user_id":    c.UserID,
		"role":       string(c.Role),
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode parses and validates an access token, returning its claims. It
// fails with ErrInvalidToken on a bad signature, malformed payload, a
// non-access token type, or expiry in the past. Expiry is checked against
// the injected clock so tests can freeze time.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok || m.now().Unix() > int64(exp) {
		return nil, models.ErrInvalidToken
	}

	// Refresh tokens never authenticate a request.
	if typ, ok := claims["token_type"].(string); !ok || typ != tokenTypeAccess {
		return nil, models.ErrInvalidToken
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, models.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, models.ErrInvalidToken
	}
	role, ok := claims["role"].(string)
	if !ok || !models.Role(role).Valid() {
		return nil, models.ErrInvalidToken
	}

	return &Claims{
		Email:  email,
		UserID: uint(userID),
		Role:   models.Role(role),
	}, nil
}
