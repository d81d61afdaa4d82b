package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/utils/auth"
)

const claimsLocalKey = "auth_claims"

// AuthMiddleware attaches verified phone identities to requests. Crop and
// disease mutations stay unauthenticated on purpose (the admin flag is
// stored but never enforced server-side); the middleware exists so that
// feedback can be attributed to a logged-in user.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

// Optional parses a Bearer token when one is present and stores its claims
// in the request context. Requests without a token, or with an invalid one,
// proceed anonymously.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Next()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Next()
		}

		claims, err := m.jwtManager.ValidateToken(parts[1])
		if err != nil {
			return c.Next()
		}

		c.Locals(claimsLocalKey, claims)
		return c.Next()
	}
}

// GetClaims returns the verified claims attached to the request, if any
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(claimsLocalKey).(*auth.Claims)
	return claims, ok
}
