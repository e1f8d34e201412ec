package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the SSO token payload shared with the other Heidi systems.
type UserClaims struct {
	Email     string `json:"email"`
	CreatorID string `json:"creatorId,omitempty"`
	jwt.RegisteredClaims
}
