package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/service"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// AuthHandler exposes login and password endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// KioskLogin handles POST /auth/kiosk/login.
func (h *AuthHandler) KioskLogin(c *fiber.Ctx) error {
	var req dto.KioskLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res := h.auth.LoginKiosk(c.UserContext(), req.Alias, req.Pin)
	return renderResult(c, mapLogin(res), http.StatusOK)
}

// AdminLogin handles POST /auth/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res := h.auth.LoginAdmin(c.UserContext(), req.Email, req.Password)
	return renderResult(c, mapLogin(res), http.StatusOK)
}

// ChangePassword handles POST /auth/password/change for the authenticated
// caller.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res := h.auth.ChangePassword(c.UserContext(), principal.StaffID, req.CurrentPassword, req.NewPassword)
	return renderResult(c, res, http.StatusOK)
}

func mapLogin(res result.Result[service.LoginOutcome]) result.Result[dto.LoginResponse] {
	if !res.IsSuccess() {
		return result.Refail[dto.LoginResponse](res.Failure())
	}
	outcome := res.Value()
	return result.OK(dto.LoginResponse{
		Token:     outcome.Token,
		ExpiresAt: outcome.ExpiresAt,
		SubjectID: outcome.SubjectID,
	})
}
