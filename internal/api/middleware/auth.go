package middleware

import (
	"HeidiCore/internal/pkg/consts"
	"HeidiCore/internal/pkg/response"
	"HeidiCore/internal/pkg/security"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenStore checks the revoked-signature denylist.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
}

// AuthMiddleware validates the bearer token and injects the creator identity
// into the request context. An empty secret disables authentication entirely,
// which is the local development mode.
func AuthMiddleware(secret string, tokens TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		revoked, err := tokens.Get(c.Request.Context(), consts.RevokedTokenKey+signature)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if revoked != "" {
			response.Fail(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Fail(c, http.StatusUnauthorized, "Token expired")
			} else {
				response.Fail(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set("creator_id", claims.CreatorID)
		c.Set("email", claims.Email)

		newCtx := context.WithValue(c.Request.Context(), "creator_id", claims.CreatorID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
