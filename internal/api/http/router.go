package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/http/handlers"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Attendance     *handlers.AttendanceHandler
	Staff          *handlers.StaffHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/kiosk/login", cfg.Auth.KioskLogin)
	authGroup.Post("/admin/login", cfg.Auth.AdminLogin)

	protectedAuth := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	protectedAuth.Post("/password/change", cfg.Auth.ChangePassword)

	attendance := app.Group("/attendance", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	attendance.Post("/toggle", cfg.Attendance.Toggle)
	attendance.Get("/last", cfg.Attendance.Last)
	attendance.Get("/staff/:id/last", auth.RequireRole(domain.StaffRoleAdmin), cfg.Attendance.LastFor)

	staff := app.Group("/staff", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.StaffRoleAdmin))
	staff.Post("", cfg.Staff.Create)
	staff.Get("", cfg.Staff.List)
	staff.Get("/:id", cfg.Staff.Get)
	staff.Patch("/:id/active", cfg.Staff.SetActive)
}
