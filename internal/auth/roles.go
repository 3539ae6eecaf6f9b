package auth

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// RequireAuthenticated ensures a principal is attached to the request.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		return c.Next()
	}
}

// RequireRole ensures the principal holds one of the allowed roles.
func RequireRole(allowed ...domain.StaffRole) fiber.Handler {
	allowedSet := make(map[domain.StaffRole]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		for _, role := range principal.Roles {
			if _, exists := allowedSet[role]; exists {
				return c.Next()
			}
		}
		return fiber.NewError(http.StatusForbidden, "insufficient role")
	}
}
