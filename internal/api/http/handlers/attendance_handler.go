package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/service"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// AttendanceHandler exposes the toggle and session query endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs handler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendanceService}
}

// Toggle handles POST /attendance/toggle. The staff id comes from the
// verified token, never from the request body. A true value means "now
// checked in", false means "now checked out".
func (h *AttendanceHandler) Toggle(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	res := h.attendance.ToggleCheckIn(c.UserContext(), principal.StaffID)
	return renderResult(c, res, http.StatusOK)
}

// Last handles GET /attendance/last for the authenticated caller.
func (h *AttendanceHandler) Last(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	res := h.attendance.GetLastSession(c.UserContext(), principal.StaffID)
	return renderResult(c, mapSession(res), http.StatusOK)
}

// LastFor handles GET /attendance/staff/:id/last for administrators.
func (h *AttendanceHandler) LastFor(c *fiber.Ctx) error {
	staffID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid staff id")
	}

	res := h.attendance.GetLastSession(c.UserContext(), staffID)
	return renderResult(c, mapSession(res), http.StatusOK)
}

func mapSession(res result.Result[*domain.AttendanceSession]) result.Result[*dto.SessionResponse] {
	if !res.IsSuccess() {
		return result.Refail[*dto.SessionResponse](res.Failure())
	}
	return result.OK(dto.NewSessionResponse(res.Value()))
}
