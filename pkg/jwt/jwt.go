package jwt

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claims")
)

const (
	// TypeAccess marks a short-lived API credential.
	TypeAccess = "access"
	// TypeRefresh marks the longer-lived credential used only to mint new
	// access tokens.
	TypeRefresh = "refresh"
)

// Claims represents the JWT claims for an authenticated user
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenManager handles JWT token generation and validation.
// Access and refresh tokens are signed with separate secrets.
type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewTokenManager creates a new TokenManager
func NewTokenManager(accessSecret, refreshSecret, issuer string, accessTTLHours, refreshTTLHours int) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     time.Duration(accessTTLHours) * time.Hour,
		refreshTTL:    time.Duration(refreshTTLHours) * time.Hour,
	}
}

// IssueAccessToken creates a signed access token carrying identity and role
func (tm *TokenManager) IssueAccessToken(userID, email, role string) (string, error) {
	return tm.sign(tm.accessSecret, tm.accessTTL, Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   TypeAccess,
	})
}

// IssueRefreshToken creates a signed refresh token carrying only the subject
func (tm *TokenManager) IssueRefreshToken(userID string) (string, error) {
	return tm.sign(tm.refreshSecret, tm.refreshTTL, Claims{
		UserID: userID,
		Type:   TypeRefresh,
	})
}

func (tm *TokenManager) sign(secret []byte, ttl time.Duration, claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tm.issuer,
		Subject:   claims.UserID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyAccessToken validates an access token and returns the claims
func (tm *TokenManager) VerifyAccessToken(tokenString string) (*Claims, error) {
	return tm.verify(tokenString, tm.accessSecret, TypeAccess)
}

// VerifyRefreshToken validates a refresh token and returns the claims
func (tm *TokenManager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return tm.verify(tokenString, tm.refreshSecret, TypeRefresh)
}

func (tm *TokenManager) verify(tokenString string, secret []byte, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaim
	}

	// Refuse a refresh token presented as an access token and vice versa
	if claims.Type != wantType {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// AccessTTL returns the access token expiration duration
func (tm *TokenManager) AccessTTL() time.Duration {
	return tm.accessTTL
}

// RefreshTTL returns the refresh token expiration duration
func (tm *TokenManager) RefreshTTL() time.Duration {
	return tm.refreshTTL
}

// TimingSafeCompare performs a timing-safe comparison of two strings
// This prevents timing attacks when comparing tokens
func TimingSafeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
