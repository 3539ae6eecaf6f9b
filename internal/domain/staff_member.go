package domain

import "time"

// StaffRole enumerates roles a staff member can hold.
type StaffRole string

const (
	StaffRoleEmployee StaffRole = "EMPLOYEE"
	StaffRoleAdmin    StaffRole = "ADMIN"
)

// StaffMember models a staff identity together with its credential material.
// Kiosk staff carry an Alias and a PinHash; console administrators carry a
// PasswordHash. Hash fields are bcrypt digests and must never leave the
// service.
type StaffMember struct {
	ID           int64
	Name         string
	Email        string
	Alias        *string
	PinHash      *string
	PasswordHash *string
	Roles        []StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the staff member holds the given role.
func (s *StaffMember) HasRole(role StaffRole) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RoleStrings returns the role set as plain strings for token claims.
func (s *StaffMember) RoleStrings() []string {
	out := make([]string, 0, len(s.Roles))
	for _, r := range s.Roles {
		out = append(out, string(r))
	}
	return out
}
