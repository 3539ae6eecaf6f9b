package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// CreateStaffRequest payload for registering a staff member. Kiosk
// accounts set alias+pin; console accounts set password.
type CreateStaffRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Alias    *string  `json:"alias"`
	Pin      *string  `json:"pin"`
	Password *string  `json:"password"`
	Roles    []string `json:"roles"`
}

// SetActiveRequest payload for enabling or disabling an account.
type SetActiveRequest struct {
	Active bool `json:"active"`
}

// StaffResponse is the wire shape of a staff member. Credential hashes are
// never exposed.
type StaffResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Alias     *string   `json:"alias"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStaffResponse maps a domain staff member.
func NewStaffResponse(staff *domain.StaffMember) *StaffResponse {
	if staff == nil {
		return nil
	}
	return &StaffResponse{
		ID:        staff.ID,
		Name:      staff.Name,
		Email:     staff.Email,
		Alias:     staff.Alias,
		Roles:     staff.RoleStrings(),
		Active:    staff.Active,
		CreatedAt: staff.CreatedAt,
	}
}
