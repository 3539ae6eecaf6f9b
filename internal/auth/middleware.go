package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/domain"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates bearer tokens and attaches the caller's
// principal to the request. The principal is built purely from verified
// claims; no store lookup happens on the hot path.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.Parse(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	staffID, err := claims.StaffID()
	if err != nil {
		return apperrors.NewUnauthorized("invalid subject claim")
	}

	roles := make([]domain.StaffRole, 0, len(claims.Roles))
	for _, r := range claims.Roles {
		roles = append(roles, domain.StaffRole(r))
	}

	c.Locals(principalKey, &domain.Principal{
		StaffID: staffID,
		Email:   claims.Email,
		Roles:   roles,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}
