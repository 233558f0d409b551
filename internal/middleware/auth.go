package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// IdentityContextKey is the key used to store the caller identity in context
const IdentityContextKey = "identity"

var (
	ErrIdentityNotFound = errors.New("identity not found in context")
	ErrInvalidIdentity  = errors.New("invalid identity type")
)

// Authenticate validates the bearer access token and attaches the caller's
// identity to the request context. Missing, malformed, invalid and expired
// tokens all abort with 401.
func Authenticate(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("Authentication required"))
			return
		}

		claims, err := tokenManager.VerifyAccessToken(token)
		if err != nil {
			_ = c.Error(err) //nolint:errcheck
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("Token expired"))
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("Invalid token"))
			}
			return
		}

		c.Set(IdentityContextKey, &models.Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   models.Role(claims.Role),
		})
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present and
// never aborts. Anonymous and invalid-token requests proceed without one.
func OptionalAuth(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tokenManager.VerifyAccessToken(token); err == nil {
				c.Set(IdentityContextKey, &models.Identity{
					UserID: claims.UserID,
					Email:  claims.Email,
					Role:   models.Role(claims.Role),
				})
			}
		}
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the authenticated identity's role is
// in the allowlist. Runs after Authenticate; a missing identity is a 401.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(c *gin.Context) {
		identity, err := GetIdentity(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.Fail("Authentication required"))
			return
		}
		if !allowed[identity.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, models.Fail("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the caller identity from context
func GetIdentity(c *gin.Context) (*models.Identity, error) {
	val, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, ErrIdentityNotFound
	}
	identity, ok := val.(*models.Identity)
	if !ok {
		return nil, ErrInvalidIdentity
	}
	return identity, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
