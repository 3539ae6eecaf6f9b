package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/internal/api/dto"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/service"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// StaffHandler exposes administrative staff management endpoints.
type StaffHandler struct {
	staff *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staffService}
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	roles := make([]domain.StaffRole, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, domain.StaffRole(r))
	}

	res := h.staff.CreateStaff(c.UserContext(), service.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Alias:    req.Alias,
		PIN:      req.Pin,
		Password: req.Password,
		Roles:    roles,
	})
	return renderResult(c, mapStaff(res), http.StatusCreated)
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid staff id")
	}

	res := h.staff.GetStaff(c.UserContext(), id)
	return renderResult(c, mapStaff(res), http.StatusOK)
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	filter := repository.StaffFilter{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	}
	if role := c.Query("role"); role != "" {
		r := domain.StaffRole(role)
		filter.Role = &r
	}
	if active := c.Query("active"); active != "" {
		parsed, err := strconv.ParseBool(active)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid active filter")
		}
		filter.Active = &parsed
	}

	res := h.staff.ListStaff(c.UserContext(), filter)
	if !res.IsSuccess() {
		return renderResult(c, result.Refail[[]dto.StaffResponse](res.Failure()), http.StatusOK)
	}

	staff := res.Value()
	out := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		out = append(out, *dto.NewStaffResponse(&staff[i]))
	}
	return renderResult(c, result.OK(out), http.StatusOK)
}

// SetActive handles PATCH /staff/:id/active.
func (h *StaffHandler) SetActive(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid staff id")
	}

	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	res := h.staff.SetActive(c.UserContext(), id, req.Active)
	return renderResult(c, res, http.StatusOK)
}

func mapStaff(res result.Result[*domain.StaffMember]) result.Result[*dto.StaffResponse] {
	if !res.IsSuccess() {
		return result.Refail[*dto.StaffResponse](res.Failure())
	}
	return result.OK(dto.NewStaffResponse(res.Value()))
}
