package dto

import (
	"time"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// SessionResponse is the wire shape of an attendance session.
type SessionResponse struct {
	ID         int64      `json:"id"`
	StaffID    int64      `json:"staff_id"`
	CheckInAt  time.Time  `json:"check_in_at"`
	CheckOutAt *time.Time `json:"check_out_at"`
}

// NewSessionResponse maps a domain session; nil stays nil for "never
// checked in".
func NewSessionResponse(session *domain.AttendanceSession) *SessionResponse {
	if session == nil {
		return nil
	}
	return &SessionResponse{
		ID:         session.ID,
		StaffID:    session.StaffID,
		CheckInAt:  session.CheckInAt,
		CheckOutAt: session.CheckOutAt,
	}
}
